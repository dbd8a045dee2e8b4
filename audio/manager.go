package audio

import "github.com/teneleven/advance/fixed"

// MaxCommands is the capacity of the command queue. It bounds the number of
// audio operations that can be issued between two calls to Update(). Issuing
// more than this in a single frame is a fatal error
const MaxCommands = 16

// Manager mediates all access to the audio hardware. Operations update the
// manager's shadow state immediately and defer the corresponding hardware
// mutation to the next call to Update().
//
// A Manager must only ever be used from a single goroutine.
type Manager struct {
	drv Driver

	commands []command

	// shadow state for streamed music
	musicItemID   int
	musicPosition int
	musicVolume   fixed.Fixed
	musicPlaying  bool
	musicPaused   bool

	// shadow state for DMG music. a non-nil dmgMusicData means DMG music is
	// active. dmgMusicPaused implies dmgMusicData is not nil
	dmgMusicData        []byte
	dmgMusicPosition    DmgPosition
	dmgMusicLeftVolume  fixed.Fixed
	dmgMusicRightVolume fixed.Fixed
	dmgMusicPaused      bool
}

// NewManager is the preferred method of initialisation for the Manager type
func NewManager(drv Driver) *Manager {
	return &Manager{
		drv:      drv,
		commands: make([]command, 0, MaxCommands),
	}
}

// Init initialises the hardware driver. It must be called once before any
// other function
func (m *Manager) Init() {
	m.drv.Init()
}

// Enable audio output
func (m *Manager) Enable() {
	m.drv.Enable()
}

// Disable audio output
func (m *Manager) Disable() {
	m.drv.Disable()
}

func (m *Manager) enqueue(c command) {
	if len(m.commands) >= MaxCommands {
		panic("no more audio commands available")
	}
	m.commands = append(m.commands, c)
}

// MusicPlaying returns whether music is playing. Paused music still counts
// as playing
func (m *Manager) MusicPlaying() bool {
	return m.musicPlaying
}

// PlayingMusicItem returns the item of the music that is currently playing.
// The second return value is false if no music is playing
func (m *Manager) PlayingMusicItem() (MusicItem, bool) {
	if !m.musicPlaying {
		return MusicItem{}, false
	}
	return MusicItem{id: m.musicItemID}, true
}

// PlayMusic starts playback of the given music item, replacing any music
// that is already playing. The position is reset to zero
func (m *Manager) PlayMusic(item MusicItem, volume fixed.Fixed, loop bool) {
	m.enqueue(musicPlayCommand(item.id, hwMusicVolume(volume), loop))
	m.musicItemID = item.id
	m.musicPosition = 0
	m.musicVolume = volume
	m.musicPlaying = true
	m.musicPaused = false
}

// StopMusic stops the music that is currently playing
func (m *Manager) StopMusic() {
	if !m.musicPlaying {
		panic("there's no music playing")
	}

	m.enqueue(musicStopCommand())
	m.musicPlaying = false
	m.musicPaused = false
}

// MusicPaused returns whether the music that is playing is paused
func (m *Manager) MusicPaused() bool {
	return m.musicPaused
}

// PauseMusic pauses the music that is currently playing
func (m *Manager) PauseMusic() {
	if !m.musicPlaying {
		panic("there's no music playing")
	}
	if m.musicPaused {
		panic("music is already paused")
	}

	m.enqueue(musicPauseCommand())
	m.musicPaused = true
}

// ResumeMusic resumes music that has been paused with PauseMusic()
func (m *Manager) ResumeMusic() {
	if !m.musicPaused {
		panic("music is not paused")
	}

	m.enqueue(musicResumeCommand())
	m.musicPaused = false
}

// MusicPosition returns the playback position of the music that is currently
// playing. The value is only as recent as the last call to Update()
func (m *Manager) MusicPosition() int {
	if !m.musicPlaying {
		panic("there's no music playing")
	}
	return m.musicPosition
}

// SetMusicPosition changes the playback position of the music that is
// currently playing
func (m *Manager) SetMusicPosition(position int) {
	if !m.musicPlaying {
		panic("there's no music playing")
	}

	m.enqueue(musicSetPositionCommand(position))
	m.musicPosition = position
}

// MusicVolume returns the volume of the music that is currently playing, as
// it was given to PlayMusic() or SetMusicVolume()
func (m *Manager) MusicVolume() fixed.Fixed {
	if !m.musicPlaying {
		panic("there's no music playing")
	}
	return m.musicVolume
}

// SetMusicVolume changes the volume of the music that is currently playing
func (m *Manager) SetMusicVolume(volume fixed.Fixed) {
	if !m.musicPlaying {
		panic("there's no music playing")
	}

	m.enqueue(musicSetVolumeCommand(hwMusicVolume(volume)))
	m.musicVolume = volume
}

// DmgMusicPlaying returns whether DMG music is playing. Paused DMG music
// still counts as playing
func (m *Manager) DmgMusicPlaying() bool {
	return m.dmgMusicData != nil
}

// PlayingDmgMusicItem returns the item of the DMG music that is currently
// playing. The second return value is false if no DMG music is playing
func (m *Manager) PlayingDmgMusicItem() (DmgMusicItem, bool) {
	if m.dmgMusicData == nil {
		return DmgMusicItem{}, false
	}
	return DmgMusicItem{data: m.dmgMusicData}, true
}

// PlayDmgMusic starts playback of the given DMG music item, replacing any
// DMG music that is already playing. The position is reset to the start of
// the module and both channel volumes to full scale
func (m *Manager) PlayDmgMusic(item DmgMusicItem, speed int, loop bool) {
	m.enqueue(dmgMusicPlayCommand(item.data, speed, loop))
	m.dmgMusicPosition = DmgPosition{}
	m.dmgMusicLeftVolume = fixed.FromInt(1)
	m.dmgMusicRightVolume = fixed.FromInt(1)
	m.dmgMusicData = item.data
	m.dmgMusicPaused = false
}

// StopDmgMusic stops the DMG music that is currently playing
func (m *Manager) StopDmgMusic() {
	if m.dmgMusicData == nil {
		panic("there's no DMG music playing")
	}

	m.enqueue(dmgMusicStopCommand())
	m.dmgMusicData = nil
	m.dmgMusicPaused = false
}

// DmgMusicPaused returns whether the DMG music that is playing is paused
func (m *Manager) DmgMusicPaused() bool {
	return m.dmgMusicPaused
}

// PauseDmgMusic pauses the DMG music that is currently playing
func (m *Manager) PauseDmgMusic() {
	if m.dmgMusicData == nil {
		panic("there's no DMG music playing")
	}
	if m.dmgMusicPaused {
		panic("DMG music is already paused")
	}

	m.enqueue(dmgMusicPauseCommand())
	m.dmgMusicPaused = true
}

// ResumeDmgMusic resumes DMG music that has been paused with PauseDmgMusic()
func (m *Manager) ResumeDmgMusic() {
	if !m.dmgMusicPaused {
		panic("DMG music is not paused")
	}

	m.enqueue(dmgMusicResumeCommand())
	m.dmgMusicPaused = false
}

// DmgMusicPosition returns the pattern and row position of the DMG music
// that is currently playing. The value is only as recent as the last call to
// Update()
func (m *Manager) DmgMusicPosition() DmgPosition {
	if m.dmgMusicData == nil {
		panic("there's no DMG music playing")
	}
	return m.dmgMusicPosition
}

// SetDmgMusicPosition changes the pattern and row position of the DMG music
// that is currently playing
func (m *Manager) SetDmgMusicPosition(position DmgPosition) {
	if m.dmgMusicData == nil {
		panic("there's no DMG music playing")
	}

	m.enqueue(dmgMusicSetPositionCommand(position))
	m.dmgMusicPosition = position
}

// DmgMusicLeftVolume returns the volume of the left channel of the DMG music
// that is currently playing
func (m *Manager) DmgMusicLeftVolume() fixed.Fixed {
	if m.dmgMusicData == nil {
		panic("there's no DMG music playing")
	}
	return m.dmgMusicLeftVolume
}

// DmgMusicRightVolume returns the volume of the right channel of the DMG
// music that is currently playing
func (m *Manager) DmgMusicRightVolume() fixed.Fixed {
	if m.dmgMusicData == nil {
		panic("there's no DMG music playing")
	}
	return m.dmgMusicRightVolume
}

// SetDmgMusicLeftVolume changes the volume of the left channel of the DMG
// music that is currently playing
func (m *Manager) SetDmgMusicLeftVolume(leftVolume fixed.Fixed) {
	m.SetDmgMusicVolume(leftVolume, m.dmgMusicRightVolume)
}

// SetDmgMusicRightVolume changes the volume of the right channel of the DMG
// music that is currently playing
func (m *Manager) SetDmgMusicRightVolume(rightVolume fixed.Fixed) {
	m.SetDmgMusicVolume(m.dmgMusicLeftVolume, rightVolume)
}

// SetDmgMusicVolume changes the volume of both channels of the DMG music
// that is currently playing
func (m *Manager) SetDmgMusicVolume(leftVolume fixed.Fixed, rightVolume fixed.Fixed) {
	if m.dmgMusicData == nil {
		panic("there's no DMG music playing")
	}

	m.enqueue(dmgMusicSetVolumeCommand(hwDmgMusicVolume(leftVolume), hwDmgMusicVolume(rightVolume)))
	m.dmgMusicLeftVolume = leftVolume
	m.dmgMusicRightVolume = rightVolume
}

// PlaySound plays the given sound effect with default volume, speed and
// panning. priority resolves contention for hardware channels; sounds with
// higher priorities are guaranteed to play over sounds with lower ones.
//
// Sounds are fire-and-forget. There is no shadow state for individual sound
// instances and no way to query a sound once issued
func (m *Manager) PlaySound(priority int, item SoundItem) {
	m.enqueue(soundPlayCommand(priority, item.id))
}

// PlaySoundEx plays the given sound effect with explicit volume, speed and
// panning. panning must be in the range -1 to 1
func (m *Manager) PlaySoundEx(priority int, item SoundItem, volume fixed.Fixed, speed fixed.Fixed, panning fixed.Fixed) {
	m.enqueue(soundPlayExCommand(priority, item.id,
		hwSoundVolume(volume), hwSoundSpeed(speed), hwSoundPanning(panning)))
}

// StopAllSounds stops all sound effects that are currently playing. Music
// and DMG music are unaffected
func (m *Manager) StopAllSounds() {
	m.enqueue(soundStopAllCommand())
}

// UpdateOnVBlank returns whether hardware mixing is synchronised with the
// vertical blank
func (m *Manager) UpdateOnVBlank() bool {
	return m.drv.UpdateOnVBlank()
}

// SetUpdateOnVBlank controls whether hardware mixing is synchronised with
// the vertical blank
func (m *Manager) SetUpdateOnVBlank(updateOnVBlank bool) {
	m.drv.SetUpdateOnVBlank(updateOnVBlank)
}

// DisableVBlankHandler detaches the driver from the vertical blank interrupt
func (m *Manager) DisableVBlankHandler() {
	m.drv.DisableVBlankHandler()
}

// Update must be called once per frame. It flushes the command queue to the
// hardware in the order the commands were enqueued and then refreshes the
// positional shadow state from the hardware's reported values
func (m *Manager) Update() {
	m.drv.Update()

	for _, c := range m.commands {
		c.execute(m.drv)
	}
	m.commands = m.commands[:0]

	if m.musicPlaying && m.drv.MusicPlaying() {
		m.musicPosition = m.drv.MusicPosition()
	}

	if m.dmgMusicData != nil {
		pattern, row := m.drv.DmgMusicPosition()

		// a negative pattern means the tracker is between patterns. keep
		// the previous position in that case
		if pattern >= 0 {
			m.dmgMusicPosition = DmgPosition{Pattern: pattern, Row: row}
		}
	}
}

// Commit finalises the hardware writes for the current frame. It should be
// called after Update(), towards the end of the frame
func (m *Manager) Commit() {
	m.drv.Commit()
}

// Stop discards any commands that have not been flushed yet and silences the
// engine: music is stopped if it is playing and a stop-all-sounds command is
// issued. DMG music is left playing.
//
// This is the only operation that both discards pending commands and issues
// new ones
func (m *Manager) Stop() {
	m.commands = m.commands[:0]

	if m.musicPlaying {
		m.StopMusic()
	}

	m.StopAllSounds()
}
