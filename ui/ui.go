// Package ui is the plumbing between the jukebox, which runs the audio
// engine, and the GUI. the two run in different goroutines and communicate
// only through the channels in the UI type.
package ui

import (
	"io"

	"github.com/teneleven/advance/hardware"
)

// State of the jukebox engine as reported to the GUI.
type State int

const (
	StateInitialising State = iota
	StateRunning
	StatePaused
	StateEnding
)

// AudioReader is an io.Reader that can also be nudged. a nudge tells the
// producer that the playback device is running low on data.
type AudioReader interface {
	io.Reader
	Nudge()
}

// AudioSetup is sent to the GUI when the audio stream is ready for playback.
type AudioSetup struct {
	Read AudioReader
	Freq int
}

type UI struct {
	State      chan State
	AudioSetup chan AudioSetup
	Levels     chan hardware.Levels
	UserInput  chan Input
	Commands   chan []string
}

// NewUI is the preferred method of initialisation for the UI type. the
// channels are buffered so that neither side ever blocks on the other.
func NewUI() *UI {
	return &UI{
		State:     make(chan State, 1),
		Levels:    make(chan hardware.Levels, 1),
		UserInput: make(chan Input, 1),
		Commands:  make(chan []string, 1),
	}
}

// WithAudio adds the audio setup channel. without it the GUI will not create
// a playback device and the jukebox runs silently.
func (u *UI) WithAudio() *UI {
	u.AudioSetup = make(chan AudioSetup, 1)
	return u
}
