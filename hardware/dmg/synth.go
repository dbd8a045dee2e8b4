package dmg

// MaxVolume is the full scale value for the left and right channel volumes,
// a 3 fraction bit representation of 1.0
const MaxVolume = 8

// Synth plays a Module through the four synthesis channels. One call to
// StepFrame() per display frame advances the sequencer; RenderFrame() then
// produces the frame's worth of samples.
type Synth struct {
	rate int

	mod  *Module
	loop bool

	// frames between row advances, after the playback speed multiplier has
	// been applied to the module's own speed
	framesPerRow int

	pattern int
	row     int
	frame   int

	// the sequencer has no meaningful position for the single frame in
	// which it crosses a pattern boundary
	betweenPatterns bool

	playing  bool
	paused   bool
	finished bool

	sq1 square
	sq2 square
	wav wave
	noi noise

	leftVolume  int
	rightVolume int
}

// NewSynth is the preferred method of initialisation for the Synth type.
// rate is the output sample frequency
func NewSynth(rate int) *Synth {
	sy := &Synth{rate: rate}
	sy.sq1.rate = rate
	sy.sq2.rate = rate
	sy.wav.rate = rate
	sy.noi.rate = rate

	// the two squares default to different duty cycles so that they are
	// distinguishable by ear
	sy.sq1.duty = 2
	sy.sq2.duty = 1

	sy.wav.reset()
	return sy
}

// Play starts playback of the module in data from the beginning. data that
// does not parse as a module is a programming error: validation belongs at
// load time, not at the synchronisation point
func (sy *Synth) Play(data []byte, speed int, loop bool) {
	mod, err := Parse(data)
	if err != nil {
		panic(err.Error())
	}

	if speed < 1 {
		speed = 1
	}

	sy.mod = mod
	sy.loop = loop
	sy.framesPerRow = max(1, mod.Speed/speed)
	sy.pattern = 0
	sy.row = 0
	sy.frame = 0
	sy.betweenPatterns = false
	sy.playing = true
	sy.paused = false
	sy.finished = false
	sy.leftVolume = MaxVolume
	sy.rightVolume = MaxVolume

	sy.silence()
	sy.applyRow()
}

// Stop playback and silence all channels
func (sy *Synth) Stop() {
	sy.playing = false
	sy.paused = false
	sy.mod = nil
	sy.silence()
}

// Pause playback, holding the current position
func (sy *Synth) Pause() {
	sy.paused = true
}

// Resume playback after a Pause()
func (sy *Synth) Resume() {
	sy.paused = false
}

// Playing returns whether a module is loaded and has not been stopped.
// paused playback still counts as playing
func (sy *Synth) Playing() bool {
	return sy.playing
}

// SetPosition jumps to the given pattern and row. positions beyond the end
// of the module are clamped
func (sy *Synth) SetPosition(pattern int, row int) {
	if sy.mod == nil {
		return
	}

	pattern = max(0, min(pattern, len(sy.mod.Patterns)-1))
	row = max(0, min(row, RowsPerPattern-1))

	sy.pattern = pattern
	sy.row = row
	sy.frame = 0
	sy.betweenPatterns = false
	sy.finished = false
	sy.applyRow()
}

// SetVolume sets the master volume of the two output channels. volumes are
// in the 3 fraction bit hardware scale: 0 to MaxVolume
func (sy *Synth) SetVolume(leftVolume int, rightVolume int) {
	sy.leftVolume = max(0, min(leftVolume, MaxVolume))
	sy.rightVolume = max(0, min(rightVolume, MaxVolume))
}

// Position returns the current pattern and row. A negative pattern means the
// sequencer is between patterns and has no position to report
func (sy *Synth) Position() (int, int) {
	if sy.betweenPatterns {
		return -1, 0
	}
	return sy.pattern, sy.row
}

func (sy *Synth) silence() {
	sy.sq1.active = false
	sy.sq2.active = false
	sy.wav.active = false
	sy.noi.active = false
}

// apply the cells of the current row to the channels
func (sy *Synth) applyRow() {
	row := sy.mod.Patterns[sy.pattern][sy.row]

	apply := func(cell Cell, vol *int, note func(uint8)) {
		if cell.Volume != NoVolume {
			*vol = int(min(cell.Volume, 15))
		}
		note(cell.Note)
	}

	apply(row[0], &sy.sq1.volume, sy.sq1.note)
	apply(row[1], &sy.sq2.volume, sy.sq2.note)
	apply(row[2], &sy.wav.volume, sy.wav.note)
	apply(row[3], &sy.noi.volume, sy.noi.note)
}

// StepFrame advances the sequencer by one frame. It should be called once
// per display frame, before RenderFrame()
func (sy *Synth) StepFrame() {
	if !sy.playing || sy.paused || sy.finished {
		return
	}

	// the position becomes meaningful again on the frame after a pattern
	// transition
	if sy.betweenPatterns {
		sy.betweenPatterns = false
	}

	sy.frame++
	if sy.frame < sy.framesPerRow {
		return
	}
	sy.frame = 0

	sy.row++
	if sy.row < RowsPerPattern {
		sy.applyRow()
		return
	}
	sy.row = 0

	sy.pattern++
	if sy.pattern >= len(sy.mod.Patterns) {
		if !sy.loop {
			sy.pattern = len(sy.mod.Patterns) - 1
			sy.row = RowsPerPattern - 1
			sy.finished = true
			sy.silence()
			return
		}
		sy.pattern = 0
	}

	sy.betweenPatterns = true
	sy.applyRow()
}

// RenderFrame accumulates samples for the current frame into buf. buf is
// interleaved stereo; the number of sample pairs is len(buf)/2
func (sy *Synth) RenderFrame(buf []int32) {
	if !sy.playing || sy.paused || sy.finished {
		return
	}

	for i := 0; i < len(buf); i += 2 {
		s := sy.sq1.sample() + sy.sq2.sample() + sy.wav.sample() + sy.noi.sample()

		// channel output is in the range -60 to 60. scale towards the
		// 16bit range before the master volumes are applied
		s <<= 8

		buf[i] += s * int32(sy.leftVolume) / MaxVolume
		buf[i+1] += s * int32(sy.rightVolume) / MaxVolume
	}
}
