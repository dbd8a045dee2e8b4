package audio

// Driver is the interface to the audio hardware. The Manager issues at most
// one driver call per queued command, all of them from the Update() function.
//
// Drivers do not return errors. Every playback primitive is fire-and-forget
// from the manager's point of view and a driver that cannot service a call
// is expected to deal with the problem itself (logging, dropping the sound,
// etc). The query functions exist so that the manager can resynchronise its
// shadow state after a frame of hardware activity.
type Driver interface {
	// lifecycle. Init is called once before any other function. Enable and
	// Disable control whether the driver produces any output at all
	Init()
	Enable()
	Disable()

	// music playback. volume is in the 10 fraction bit hardware scale
	PlayMusic(id int, volume int, loop bool)
	StopMusic()
	PauseMusic()
	ResumeMusic()
	SetMusicPosition(position int)
	SetMusicVolume(volume int)

	// music queries. MusicPlaying returns true only if the hardware is
	// actually producing music playback, as opposed to the manager merely
	// believing that it is
	MusicPlaying() bool
	MusicPosition() int

	// DMG style tracker music. data is the raw module as registered with
	// the driver. volumes are in the 3 fraction bit hardware scale, one per
	// output channel
	PlayDmgMusic(data []byte, speed int, loop bool)
	StopDmgMusic()
	PauseDmgMusic()
	ResumeDmgMusic()
	SetDmgMusicPosition(pattern int, row int)
	SetDmgMusicVolume(leftVolume int, rightVolume int)

	// a reported pattern of less than zero means the tracker is between
	// patterns and has no meaningful position to report
	DmgMusicPosition() (pattern int, row int)

	// sound effects. volume and speed are in the 8 and 10 fraction bit
	// hardware scales respectively. panning is in the range 0 to 255 with
	// 128 meaning centre
	PlaySound(priority int, id int)
	PlaySoundEx(priority int, id int, volume int, speed int, panning int)
	StopAllSounds()

	// whether hardware mixing is synchronised to the vertical blank
	UpdateOnVBlank() bool
	SetUpdateOnVBlank(bool)
	DisableVBlankHandler()

	// frame synchronisation. Update prepares the next frame of audio and
	// Commit finalises it. see the Manager functions of the same name
	Update()
	Commit()
}
