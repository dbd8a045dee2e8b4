package hardware

import "sync"

// upper bound on buffered audio. one second of stereo 16bit samples. if the
// playback device stalls or is absent, the oldest data is discarded rather
// than letting the buffer grow without limit
const maxBufferLen = SampleRate * 4

// Buffer carries committed audio frames from the driver to a playback device.
// it is an io.Reader implementation so that it can be handed directly to an
// audio player.
//
// Read() is called from the audio engine's goroutine and append() from the
// emulation goroutine. access to the data field is protected by a mutex.
type Buffer struct {
	crit  sync.Mutex
	data  []uint8
	nudge func()
}

// SetNudge attaches the function called whenever the playback device is
// running low on data. typically this will accelerate whatever loop is
// driving the audio updates.
func (b *Buffer) SetNudge(nudge func()) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.nudge = nudge
}

// Nudge asks the producer of the buffer for more data.
func (b *Buffer) Nudge() {
	b.crit.Lock()
	nudge := b.nudge
	b.crit.Unlock()
	if nudge != nil {
		nudge()
	}
}

func (b *Buffer) append(p []uint8) {
	b.crit.Lock()
	defer b.crit.Unlock()

	b.data = append(b.data, p...)
	if len(b.data) > maxBufferLen {
		b.data = b.data[len(b.data)-maxBufferLen:]
	}
}

// Pending returns the number of bytes waiting to be read.
func (b *Buffer) Pending() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return len(b.data)
}

func (b *Buffer) Read(buf []uint8) (int, error) {
	b.crit.Lock()
	defer b.crit.Unlock()

	n := min(len(b.data), len(buf))

	// number of bytes must be a multiple of four because of the sample format
	// (2 channel, 16bit little-endian). returning a partial frame causes the
	// remaining bytes to be misinterpreted by the player
	n &^= 0x03

	copy(buf, b.data[:n])
	b.data = b.data[n:]

	return n, nil
}
