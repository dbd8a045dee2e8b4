package ui

type Action int

type Input struct {
	Action  Action
	Release bool
}

const (
	Nothing Action = iota
	TogglePause
	Silence
	Quit
)
