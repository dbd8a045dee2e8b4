package hardware

import (
	"fmt"
	"io"
	"sync"

	"github.com/teneleven/advance/hardware/dmg"
	"github.com/teneleven/advance/hardware/mixer"
	"github.com/teneleven/advance/hardware/mixer/mix"
	"github.com/teneleven/advance/logger"
)

// output sample rate of the audio hardware
const SampleRate = 32768

// number of display refreshes per second. the audio hardware is updated once
// per refresh
const RefreshRate = 60

// number of output frames rendered by a single update
const samplesPerUpdate = SampleRate / RefreshRate

// a registered music stream. src produces interleaved 16bit little-endian
// stereo at the stated rate
type musicAsset struct {
	src  io.ReadSeeker
	rate int
}

// a registered sound effect. mono samples at the stated rate
type soundAsset struct {
	data []int16
	rate int
}

// Recorder receives every committed frame of audio. the frames slice is
// reused between calls so implementations must not retain it.
type Recorder interface {
	Write(frames []int16) error
}

// Levels is a snapshot of audio activity, intended for visualisation.
type Levels struct {
	// peak amplitude of the most recently committed update, per channel
	Peak [2]int16

	MusicPlaying bool
	DmgPlaying   bool
	ActiveSounds int
}

// Audio is the audio hardware. it implements the audio.Driver interface,
// mixing music, DMG music and sound effects into a single stream of output
// frames.
//
// the driver methods must all be called from the same goroutine. the Levels()
// function and the Buffer field are safe to use from other goroutines.
type Audio struct {
	Buffer *Buffer

	musicLib map[int]musicAsset
	soundLib map[int]soundAsset

	enabled        bool
	updateOnVBlank bool
	vblankHandler  bool

	music  *mixer.Music
	sounds *mixer.Sounds
	synth  *dmg.Synth

	// intermediate mixing buffer and the reduced frame waiting for commit
	staging []int32
	frame   []int16
	pending []uint8

	// the levels and recorder fields are accessed from other goroutines.
	// access is protected by crit
	crit     sync.Mutex
	levels   Levels
	recorder Recorder
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	aud := &Audio{
		Buffer:   &Buffer{},
		musicLib: make(map[int]musicAsset),
		soundLib: make(map[int]soundAsset),
		music:    mixer.NewMusic(SampleRate),
		sounds:   mixer.NewSounds(SampleRate),
		synth:    dmg.NewSynth(SampleRate),
		staging:  make([]int32, samplesPerUpdate*2),
		frame:    make([]int16, samplesPerUpdate*2),
		pending:  make([]uint8, samplesPerUpdate*4),
	}
	aud.Init()
	return aud
}

// RegisterMusic adds a music stream to the library under the given id.
func (aud *Audio) RegisterMusic(id int, src io.ReadSeeker, rate int) {
	aud.musicLib[id] = musicAsset{src: src, rate: rate}
}

// RegisterSound adds a sound effect to the library under the given id.
func (aud *Audio) RegisterSound(id int, data []int16, rate int) {
	aud.soundLib[id] = soundAsset{data: data, rate: rate}
}

// SetRecorder attaches a Recorder to the output stream. a nil recorder ends
// any recording in progress.
func (aud *Audio) SetRecorder(rec Recorder) {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	aud.recorder = rec
}

// Levels returns a snapshot of recent audio activity.
func (aud *Audio) Levels() Levels {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	return aud.levels
}

// Init resets the audio hardware to its power-on state. implements the
// audio.Driver interface.
func (aud *Audio) Init() {
	aud.music.Stop()
	aud.sounds.StopAll()
	aud.synth.Stop()
	aud.synth.SetVolume(dmg.MaxVolume, dmg.MaxVolume)
	aud.enabled = true
	aud.updateOnVBlank = false
	aud.vblankHandler = true
}

// Enable implements the audio.Driver interface.
func (aud *Audio) Enable() {
	aud.enabled = true
}

// Disable implements the audio.Driver interface.
func (aud *Audio) Disable() {
	aud.enabled = false
}

// PlayMusic implements the audio.Driver interface. the id must have been
// registered with RegisterMusic.
func (aud *Audio) PlayMusic(id int, volume int, loop bool) {
	asset, ok := aud.musicLib[id]
	if !ok {
		panic(fmt.Sprintf("unknown music id: %d", id))
	}
	aud.music.Play(asset.src, asset.rate, volume, loop)
}

// StopMusic implements the audio.Driver interface.
func (aud *Audio) StopMusic() {
	aud.music.Stop()
}

// PauseMusic implements the audio.Driver interface.
func (aud *Audio) PauseMusic() {
	aud.music.Pause()
}

// ResumeMusic implements the audio.Driver interface.
func (aud *Audio) ResumeMusic() {
	aud.music.Resume()
}

// SetMusicPosition implements the audio.Driver interface.
func (aud *Audio) SetMusicPosition(position int) {
	if err := aud.music.SetPosition(position); err != nil {
		logger.Logf(logger.Allow, "audio", "%v", err)
	}
}

// SetMusicVolume implements the audio.Driver interface.
func (aud *Audio) SetMusicVolume(volume int) {
	aud.music.SetVolume(volume)
}

// MusicPlaying implements the audio.Driver interface.
func (aud *Audio) MusicPlaying() bool {
	return aud.music.Playing()
}

// MusicPosition implements the audio.Driver interface.
func (aud *Audio) MusicPosition() int {
	return aud.music.Position()
}

// PlayDmgMusic implements the audio.Driver interface. data must be a valid
// DMG module.
func (aud *Audio) PlayDmgMusic(data []byte, speed int, loop bool) {
	aud.synth.Play(data, speed, loop)
}

// StopDmgMusic implements the audio.Driver interface.
func (aud *Audio) StopDmgMusic() {
	aud.synth.Stop()
}

// PauseDmgMusic implements the audio.Driver interface.
func (aud *Audio) PauseDmgMusic() {
	aud.synth.Pause()
}

// ResumeDmgMusic implements the audio.Driver interface.
func (aud *Audio) ResumeDmgMusic() {
	aud.synth.Resume()
}

// SetDmgMusicPosition implements the audio.Driver interface.
func (aud *Audio) SetDmgMusicPosition(pattern int, row int) {
	aud.synth.SetPosition(pattern, row)
}

// SetDmgMusicVolume implements the audio.Driver interface.
func (aud *Audio) SetDmgMusicVolume(leftVolume int, rightVolume int) {
	aud.synth.SetVolume(leftVolume, rightVolume)
}

// DmgMusicPosition implements the audio.Driver interface.
func (aud *Audio) DmgMusicPosition() (int, int) {
	return aud.synth.Position()
}

// PlaySound implements the audio.Driver interface. the id must have been
// registered with RegisterSound.
func (aud *Audio) PlaySound(priority int, id int) {
	aud.PlaySoundEx(priority, id,
		mixer.DefaultSoundVolume, mixer.DefaultSoundSpeed, mixer.DefaultSoundPanning)
}

// PlaySoundEx implements the audio.Driver interface. the id must have been
// registered with RegisterSound.
func (aud *Audio) PlaySoundEx(priority int, id int, volume int, speed int, panning int) {
	asset, ok := aud.soundLib[id]
	if !ok {
		panic(fmt.Sprintf("unknown sound id: %d", id))
	}
	if !aud.sounds.Play(priority, asset.data, asset.rate, volume, speed, panning) {
		logger.Logf(logger.Allow, "audio", "sound %d dropped: all channels busy", id)
	}
}

// StopAllSounds implements the audio.Driver interface.
func (aud *Audio) StopAllSounds() {
	aud.sounds.StopAll()
}

// UpdateOnVBlank implements the audio.Driver interface.
func (aud *Audio) UpdateOnVBlank() bool {
	return aud.updateOnVBlank
}

// SetUpdateOnVBlank implements the audio.Driver interface.
func (aud *Audio) SetUpdateOnVBlank(updateOnVBlank bool) {
	aud.updateOnVBlank = updateOnVBlank
}

// DisableVBlankHandler implements the audio.Driver interface. once disabled
// the handler cannot be re-enabled without an Init.
func (aud *Audio) DisableVBlankHandler() {
	aud.vblankHandler = false
}

// Update implements the audio.Driver interface. one update renders one
// refresh's worth of output frames into an internal buffer. the frames are
// not audible until Commit.
func (aud *Audio) Update() {
	clear(aud.staging)

	if aud.enabled {
		aud.music.Render(aud.staging)
		aud.synth.StepFrame()
		aud.synth.RenderFrame(aud.staging)
		aud.sounds.Render(aud.staging)
	}

	for i, s := range aud.staging {
		aud.frame[i] = mix.Clip(s)
	}
}

// Commit implements the audio.Driver interface. the most recently rendered
// update is published to the playback buffer and to the recorder if one is
// attached.
func (aud *Audio) Commit() {
	for i, v := range aud.frame {
		aud.pending[i*2] = uint8(v)
		aud.pending[i*2+1] = uint8(uint16(v) >> 8)
	}
	aud.Buffer.append(aud.pending)

	var peak [2]int16
	for i, v := range aud.frame {
		amp := int(v)
		if amp < 0 {
			amp = -amp
		}
		if amp > int(peak[i&1]) {
			peak[i&1] = int16(min(amp, 32767))
		}
	}

	aud.crit.Lock()
	defer aud.crit.Unlock()

	if aud.recorder != nil {
		if err := aud.recorder.Write(aud.frame); err != nil {
			logger.Logf(logger.Allow, "audio", "recording: %v", err)
		}
	}

	aud.levels = Levels{
		Peak:         peak,
		MusicPlaying: aud.music.Playing(),
		DmgPlaying:   aud.synth.Playing(),
		ActiveSounds: aud.sounds.Active(),
	}
}
