package jukebox

import "github.com/charmbracelet/lipgloss"

type styles struct {
	status  lipgloss.Style
	music   lipgloss.Style
	dmg     lipgloss.Style
	sound   lipgloss.Style
	err     lipgloss.Style
	jukebox lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White

func newStyles() styles {
	return styles{
		status:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		music:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		dmg:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		sound:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(5)),
		err:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		jukebox: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
	}
}
