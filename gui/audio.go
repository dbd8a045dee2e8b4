package gui

import (
	"sync"

	"github.com/teneleven/advance/ui"
)

type audioPlayer struct {
	p player
	r ui.AudioReader

	// the state field is accessed by the Read() function via the audio
	// engine, and by the GUI which is in another goroutine. access to the
	// state field therefore, is protected by a mutex
	crit  sync.Mutex
	state ui.State
}

// the part of the oto player the audioPlayer needs. through an interface so
// that tests can run without an audio device
type player interface {
	BufferedSize() int
	Close() error
}

func (a *audioPlayer) setState(state ui.State) {
	a.crit.Lock()
	defer a.crit.Unlock()
	a.state = state
}

func (a *audioPlayer) Read(buf []uint8) (int, error) {
	a.crit.Lock()
	defer a.crit.Unlock()
	if a.state != ui.StateRunning {
		return 0, nil
	}

	// ask for more data if the player is close to running dry. this pulls
	// the engine loop forward rather than letting the audio stutter
	const prefetch = 2048

	sz := a.p.BufferedSize()
	if sz < prefetch {
		a.r.Nudge()
	}

	n, err := a.r.Read(buf)
	if err != nil {
		return 0, err
	}
	return n, nil
}
