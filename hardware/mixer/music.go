package mixer

import (
	"fmt"
	"io"
)

// music volume is a 10bit value. 1024 is unattenuated playback
const MaxMusicVolume = 1024

// size of the intermediate read buffer. large enough that Render refills it
// at most once per frame of audio
const musicReadBufferLen = 16384

// Music streams a single stereo PCM source, resampling it to the mixer's
// output rate. the source is expected to be interleaved 16bit little-endian
// stereo, which is what the mp3 and wav decoders in the assets package
// produce.
type Music struct {
	rate int

	src     io.ReadSeeker
	srcRate int

	volume int
	loop   bool

	playing bool
	paused  bool
	ended   bool

	// resampling accumulator. step is the number of source frames per output
	// frame as a 10bit fixed point value
	step int
	frac int

	// most recently fetched source frame
	curL int32
	curR int32

	// number of source frames consumed since the start of the stream. used
	// for position reporting and adjusted by SetPosition
	srcFrames int64

	rdbuf []byte
	rdLen int
	rdOff int
}

// NewMusic is the preferred method of initialisation for the Music type. rate
// is the output sample rate.
func NewMusic(rate int) *Music {
	return &Music{
		rate:  rate,
		rdbuf: make([]byte, musicReadBufferLen),
	}
}

// Play starts streaming from src, replacing any stream already playing. the
// source is rewound so the same source can be played repeatedly.
func (mu *Music) Play(src io.ReadSeeker, srcRate int, volume int, loop bool) {
	_, _ = src.Seek(0, io.SeekStart)
	mu.src = src
	mu.srcRate = srcRate
	mu.volume = volume
	mu.loop = loop
	mu.playing = true
	mu.paused = false
	mu.ended = false
	mu.step = (srcRate << 10) / mu.rate
	mu.frac = 0
	mu.curL = 0
	mu.curR = 0
	mu.srcFrames = 0
	mu.rdLen = 0
	mu.rdOff = 0
}

// Stop ends the stream. the source is forgotten.
func (mu *Music) Stop() {
	mu.src = nil
	mu.playing = false
	mu.paused = false
	mu.ended = false
}

// Pause suspends the stream without losing position.
func (mu *Music) Pause() {
	mu.paused = true
}

// Resume continues a paused stream.
func (mu *Music) Resume() {
	mu.paused = false
}

// SetVolume changes the playback volume. volume is a 10bit value.
func (mu *Music) SetVolume(volume int) {
	mu.volume = volume
}

// Playing returns true if the stream is actively producing samples. a paused
// or ended stream is not considered to be playing.
func (mu *Music) Playing() bool {
	return mu.playing && !mu.paused && !mu.ended
}

// Position returns the current playback position in whole seconds of source
// audio.
func (mu *Music) Position() int {
	if mu.src == nil || mu.srcRate == 0 {
		return 0
	}
	return int(mu.srcFrames / int64(mu.srcRate))
}

// SetPosition seeks the stream to the given position, expressed in whole
// seconds of source audio.
func (mu *Music) SetPosition(position int) error {
	if mu.src == nil {
		return fmt.Errorf("music: no stream to seek")
	}
	if position < 0 {
		position = 0
	}

	frames := int64(position) * int64(mu.srcRate)
	_, err := mu.src.Seek(frames*4, io.SeekStart)
	if err != nil {
		return fmt.Errorf("music: %w", err)
	}

	mu.srcFrames = frames
	mu.frac = 0
	mu.rdLen = 0
	mu.rdOff = 0
	mu.ended = false

	return nil
}

// refill the read buffer, preserving any partial frame left over from the
// previous read. on end-of-stream either rewinds (for looping streams) or
// marks the stream as ended.
func (mu *Music) refill() {
	rem := mu.rdLen - mu.rdOff
	copy(mu.rdbuf, mu.rdbuf[mu.rdOff:mu.rdLen])
	mu.rdOff = 0
	mu.rdLen = rem

	// two attempts allows one rewind for looping streams
	for range 2 {
		n, err := mu.src.Read(mu.rdbuf[mu.rdLen:])
		mu.rdLen += n
		if mu.rdLen >= 4 {
			return
		}
		if err != nil {
			if !mu.loop {
				mu.ended = true
				return
			}
			if _, err := mu.src.Seek(0, io.SeekStart); err != nil {
				mu.ended = true
				return
			}
			mu.srcFrames = 0
			mu.rdOff = 0
			mu.rdLen = 0
		}
	}

	mu.ended = true
}

// fetch the next source frame into curL/curR.
func (mu *Music) nextFrame() {
	if mu.rdLen-mu.rdOff < 4 {
		mu.refill()
		if mu.ended || mu.rdLen-mu.rdOff < 4 {
			mu.curL = 0
			mu.curR = 0
			return
		}
	}

	b := mu.rdbuf[mu.rdOff:]
	mu.curL = int32(int16(uint16(b[0]) | uint16(b[1])<<8))
	mu.curR = int32(int16(uint16(b[2]) | uint16(b[3])<<8))
	mu.rdOff += 4
	mu.srcFrames++
}

// Render accumulates the stream into buf. buf is interleaved stereo, two
// entries per output frame. silence is added if the stream is stopped, paused
// or ended.
func (mu *Music) Render(buf []int32) {
	if !mu.Playing() {
		return
	}

	vol := int32(mu.volume)

	for i := 0; i < len(buf); i += 2 {
		mu.frac += mu.step
		for mu.frac >= 1024 {
			mu.frac -= 1024
			mu.nextFrame()
			if mu.ended {
				return
			}
		}
		buf[i] += mu.curL * vol >> 10
		buf[i+1] += mu.curR * vol >> 10
	}
}
