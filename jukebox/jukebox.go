// Package jukebox is the interactive face of the audio engine. audio files
// named on the command line are loaded into the asset library and can then be
// played, paused, seeked, etc. with typed commands.
//
// the jukebox runs the engine loop in a separate goroutine. commands from the
// terminal and input from the GUI are both serialised through the bubbletea
// update function, so the audio manager only ever sees one caller at a time.
package jukebox

import (
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/teneleven/advance/assets"
	"github.com/teneleven/advance/audio"
	"github.com/teneleven/advance/fixed"
	"github.com/teneleven/advance/logger"
	"github.com/teneleven/advance/ui"
	"github.com/teneleven/advance/version"
)

type item struct {
	name  string
	music *audio.MusicItem
	sound *audio.SoundItem
	dmg   *audio.DmgMusicItem
}

type jukebox struct {
	eng *engine
	u   *ui.UI

	viewport viewport.Model
	input    textinput.Model
	output   []string
	styles   styles

	items []item
}

// input from the GUI arrives as a bubbletea message
type guiInputMsg ui.Input

func (m *jukebox) waitForGuiInput() tea.Cmd {
	return func() tea.Msg {
		return guiInputMsg(<-m.u.UserInput)
	}
}

func (m *jukebox) Init() tea.Cmd {
	m.input = textinput.New()
	m.input.Placeholder = ""
	m.input.Focus()
	m.input.CharLimit = 256
	m.input.Width = 50

	m.styles = newStyles()

	m.print(m.styles.jukebox, "%s", version.Title())
	for i, it := range m.items {
		m.print(m.styles.status, "%2d: %s", i, it.name)
	}
	m.print(m.styles.status, "type HELP for the command list")

	return m.waitForGuiInput()
}

func (m *jukebox) print(style lipgloss.Style, format string, args ...any) {
	m.output = append(m.output, style.Render(fmt.Sprintf(format, args...)))
}

func (m *jukebox) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 1

	case guiInputMsg:
		if quit := m.guiInput(ui.Input(msg)); quit {
			return m, tea.Quit
		}
		cmds = append(cmds, m.waitForGuiInput())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			s := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")

			if quit := m.command(strings.Fields(strings.ToUpper(s))); quit {
				return m, tea.Quit
			}
		}
	}

	// always update viewport and scroll to bottom. this isn't optimal and means
	// we can't scroll the viewport up but this is the best I can do for now
	m.viewport.SetContent(strings.Join(m.output, "\n"))
	m.viewport.GotoBottom()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m jukebox) View() string {
	return fmt.Sprintf("%s\n%s",
		m.viewport.View(),
		m.input.View(),
	)
}

func (m *jukebox) guiInput(inp ui.Input) bool {
	if inp.Release {
		return false
	}

	switch inp.Action {
	case ui.TogglePause:
		running := !m.eng.isRunning()
		m.eng.setRunning(running)
		if running {
			m.print(m.styles.jukebox, "engine resumed")
		} else {
			m.print(m.styles.jukebox, "engine paused")
		}
	case ui.Silence:
		m.eng.with(func(mgr *audio.Manager) {
			mgr.Stop()
		})
		m.print(m.styles.jukebox, "all audio stopped")
	case ui.Quit:
		return true
	}

	return false
}

// pick an item of the required kind by number
func (m *jukebox) pick(arg string, kind string) (item, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 || n >= len(m.items) {
		m.print(m.styles.err, "not an item number: %s", arg)
		return item{}, false
	}

	it := m.items[n]
	ok := (kind == "music" && it.music != nil) ||
		(kind == "sound" && it.sound != nil) ||
		(kind == "dmg" && it.dmg != nil)
	if !ok {
		m.print(m.styles.err, "%s is not a %s item", arg, kind)
		return item{}, false
	}

	return it, true
}

func (m *jukebox) parseLevel(arg string, fallback float64) (fixed.Fixed, bool) {
	if arg == "" {
		return fixed.FromFloat(fallback), true
	}
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil || f < 0 {
		m.print(m.styles.err, "not a level: %s", arg)
		return fixed.Fixed{}, false
	}
	return fixed.FromFloat(f), true
}

func arg(p []string, n int) string {
	if n < len(p) {
		return p[n]
	}
	return ""
}

func (m *jukebox) command(p []string) bool {
	if len(p) == 0 {
		m.status()
		return false
	}

	switch p[0] {
	case "HELP":
		for _, s := range []string{
			"LIST                          loaded items",
			"STATUS                        playback status (also: empty input)",
			"PLAY n [vol] [ONCE]           play music item n",
			"STOP / PAUSE / RESUME         control the music stream",
			"VOL v                         music volume (0.0 to 1.0)",
			"POS [s]                       report or set music position",
			"DMG n [speed] [ONCE]          play DMG music item n",
			"DMGSTOP / DMGPAUSE / DMGRESUME",
			"DMGPOS [pattern row]          report or set DMG position",
			"DMGVOL left [right]           DMG volume (0.0 to 1.0 per speaker)",
			"SOUND n [priority]            play sound item n",
			"SOUNDEX n vol speed pan       play sound with full control",
			"SILENCE                       stop everything",
			"RECORD file / RECORD OFF      record output to WAV",
			"LOG                           recent log entries",
			"QUIT",
		} {
			m.print(m.styles.status, "%s", s)
		}

	case "LIST":
		for i, it := range m.items {
			m.print(m.styles.status, "%2d: %s", i, it.name)
		}

	case "STATUS":
		m.status()

	case "PLAY":
		it, ok := m.pick(arg(p, 1), "music")
		if !ok {
			return false
		}
		volArg := arg(p, 2)
		loop := true
		if volArg == "ONCE" {
			volArg = ""
			loop = false
		} else if arg(p, 3) == "ONCE" {
			loop = false
		}
		volume, ok := m.parseLevel(volArg, 1.0)
		if !ok {
			return false
		}
		m.eng.with(func(mgr *audio.Manager) {
			mgr.PlayMusic(*it.music, volume, loop)
		})
		m.print(m.styles.music, "music: %s", it.name)

	case "STOP":
		m.withMusicPlaying(func(mgr *audio.Manager) {
			mgr.StopMusic()
			m.print(m.styles.music, "music stopped")
		})

	case "PAUSE":
		m.eng.with(func(mgr *audio.Manager) {
			switch {
			case !mgr.MusicPlaying():
				m.print(m.styles.err, "no music playing")
			case mgr.MusicPaused():
				m.print(m.styles.err, "music is already paused")
			default:
				mgr.PauseMusic()
				m.print(m.styles.music, "music paused")
			}
		})

	case "RESUME":
		m.eng.with(func(mgr *audio.Manager) {
			if !mgr.MusicPlaying() || !mgr.MusicPaused() {
				m.print(m.styles.err, "music is not paused")
				return
			}
			mgr.ResumeMusic()
			m.print(m.styles.music, "music resumed")
		})

	case "VOL":
		volume, ok := m.parseLevel(arg(p, 1), 1.0)
		if !ok {
			return false
		}
		m.withMusicPlaying(func(mgr *audio.Manager) {
			mgr.SetMusicVolume(volume)
		})

	case "POS":
		if len(p) < 2 {
			m.withMusicPlaying(func(mgr *audio.Manager) {
				m.print(m.styles.music, "music position: %ds", mgr.MusicPosition())
			})
			return false
		}
		position, err := strconv.Atoi(p[1])
		if err != nil || position < 0 {
			m.print(m.styles.err, "not a position: %s", p[1])
			return false
		}
		m.withMusicPlaying(func(mgr *audio.Manager) {
			mgr.SetMusicPosition(position)
		})

	case "DMG":
		it, ok := m.pick(arg(p, 1), "dmg")
		if !ok {
			return false
		}
		speed := 1
		if len(p) > 2 && p[2] != "ONCE" {
			speed, _ = strconv.Atoi(p[2])
			if speed < 1 {
				m.print(m.styles.err, "not a speed: %s", p[2])
				return false
			}
		}
		loop := p[len(p)-1] != "ONCE"
		m.eng.with(func(mgr *audio.Manager) {
			mgr.PlayDmgMusic(*it.dmg, speed, loop)
		})
		m.print(m.styles.dmg, "dmg music: %s", it.name)

	case "DMGSTOP":
		m.withDmgPlaying(func(mgr *audio.Manager) {
			mgr.StopDmgMusic()
			m.print(m.styles.dmg, "dmg music stopped")
		})

	case "DMGPAUSE":
		m.eng.with(func(mgr *audio.Manager) {
			switch {
			case !mgr.DmgMusicPlaying():
				m.print(m.styles.err, "no dmg music playing")
			case mgr.DmgMusicPaused():
				m.print(m.styles.err, "dmg music is already paused")
			default:
				mgr.PauseDmgMusic()
				m.print(m.styles.dmg, "dmg music paused")
			}
		})

	case "DMGRESUME":
		m.eng.with(func(mgr *audio.Manager) {
			if !mgr.DmgMusicPlaying() || !mgr.DmgMusicPaused() {
				m.print(m.styles.err, "dmg music is not paused")
				return
			}
			mgr.ResumeDmgMusic()
			m.print(m.styles.dmg, "dmg music resumed")
		})

	case "DMGPOS":
		if len(p) < 3 {
			m.withDmgPlaying(func(mgr *audio.Manager) {
				pos := mgr.DmgMusicPosition()
				m.print(m.styles.dmg, "dmg position: pattern %d row %d", pos.Pattern, pos.Row)
			})
			return false
		}
		pattern, err1 := strconv.Atoi(p[1])
		row, err2 := strconv.Atoi(p[2])
		if err1 != nil || err2 != nil || pattern < 0 || row < 0 {
			m.print(m.styles.err, "not a position: %s %s", p[1], p[2])
			return false
		}
		m.withDmgPlaying(func(mgr *audio.Manager) {
			mgr.SetDmgMusicPosition(audio.DmgPosition{Pattern: pattern, Row: row})
		})

	case "DMGVOL":
		left, ok := m.parseLevel(arg(p, 1), 1.0)
		if !ok {
			return false
		}
		right := left
		if len(p) > 2 {
			if right, ok = m.parseLevel(p[2], 1.0); !ok {
				return false
			}
		}
		m.withDmgPlaying(func(mgr *audio.Manager) {
			mgr.SetDmgMusicVolume(left, right)
		})

	case "SOUND":
		it, ok := m.pick(arg(p, 1), "sound")
		if !ok {
			return false
		}
		priority := 0
		if len(p) > 2 {
			var err error
			priority, err = strconv.Atoi(p[2])
			if err != nil {
				m.print(m.styles.err, "not a priority: %s", p[2])
				return false
			}
		}
		m.eng.with(func(mgr *audio.Manager) {
			mgr.PlaySound(priority, *it.sound)
		})
		m.print(m.styles.sound, "sound: %s", it.name)

	case "SOUNDEX":
		if len(p) < 5 {
			m.print(m.styles.err, "SOUNDEX needs item, volume, speed and panning")
			return false
		}
		it, ok := m.pick(p[1], "sound")
		if !ok {
			return false
		}
		volume, ok := m.parseLevel(p[2], 1.0)
		if !ok {
			return false
		}
		speed, ok := m.parseLevel(p[3], 1.0)
		if !ok {
			return false
		}
		pan, err := strconv.ParseFloat(p[4], 64)
		if err != nil || pan < -1 || pan > 1 {
			m.print(m.styles.err, "panning must be between -1.0 and 1.0")
			return false
		}
		m.eng.with(func(mgr *audio.Manager) {
			mgr.PlaySoundEx(0, *it.sound, volume, speed, fixed.FromFloat(pan))
		})
		m.print(m.styles.sound, "sound: %s", it.name)

	case "SILENCE":
		m.eng.with(func(mgr *audio.Manager) {
			mgr.Stop()
		})
		m.print(m.styles.jukebox, "all audio stopped")

	case "RECORD":
		if len(p) < 2 {
			m.print(m.styles.err, "RECORD needs a filename or OFF")
			return false
		}
		if p[1] == "OFF" {
			if err := m.eng.record(""); err != nil {
				m.print(m.styles.err, "%s", err.Error())
			} else {
				m.print(m.styles.jukebox, "recording ended")
			}
			return false
		}

		// the filename was uppercased along with the rest of the command
		fn := strings.ToLower(p[1])
		if err := m.eng.record(fn); err != nil {
			m.print(m.styles.err, "%s", err.Error())
		} else {
			m.print(m.styles.jukebox, "recording to %s", fn)
		}

	case "LOG":
		var b strings.Builder
		logger.Tail(&b, 20)
		for _, s := range strings.Split(strings.TrimSpace(b.String()), "\n") {
			if s != "" {
				m.print(m.styles.status, "%s", s)
			}
		}

	case "QUIT":
		return true

	default:
		m.print(m.styles.err, "unrecognised command: %s", p[0])
	}

	return false
}

// withMusicPlaying runs f only if music is playing
func (m *jukebox) withMusicPlaying(f func(mgr *audio.Manager)) {
	m.eng.with(func(mgr *audio.Manager) {
		if !mgr.MusicPlaying() {
			m.print(m.styles.err, "no music playing")
			return
		}
		f(mgr)
	})
}

// withDmgPlaying runs f only if DMG music is playing
func (m *jukebox) withDmgPlaying(f func(mgr *audio.Manager)) {
	m.eng.with(func(mgr *audio.Manager) {
		if !mgr.DmgMusicPlaying() {
			m.print(m.styles.err, "no dmg music playing")
			return
		}
		f(mgr)
	})
}

func (m *jukebox) status() {
	m.eng.with(func(mgr *audio.Manager) {
		if mgr.MusicPlaying() {
			state := "playing"
			if mgr.MusicPaused() {
				state = "paused"
			}
			if it, ok := mgr.PlayingMusicItem(); ok {
				m.print(m.styles.music, "music %d: %s at %ds (volume %.2f)",
					it.ID(), state, mgr.MusicPosition(), mgr.MusicVolume().Float())
			}
		} else {
			m.print(m.styles.music, "no music playing")
		}

		if mgr.DmgMusicPlaying() {
			state := "playing"
			if mgr.DmgMusicPaused() {
				state = "paused"
			}
			pos := mgr.DmgMusicPosition()
			m.print(m.styles.dmg, "dmg music %s at pattern %d row %d", state, pos.Pattern, pos.Row)
		} else {
			m.print(m.styles.dmg, "no dmg music playing")
		}

		if !m.eng.isRunning() {
			m.print(m.styles.jukebox, "engine paused")
		}
	})
}

// Launch the jukebox. the function does not return until the jukebox has
// ended, either because of a request on the endJukebox channel or because of
// a QUIT command.
func Launch(endJukebox chan bool, u *ui.UI, args []string) error {
	flgs := flag.NewFlagSet("jukebox", flag.ExitOnError)
	err := flgs.Parse(args)
	if err != nil {
		return err
	}
	args = flgs.Args()

	eng := newEngine(u)
	lib := assets.NewLibrary(eng.aud)

	m := &jukebox{
		eng: eng,
		u:   u,
	}

	for _, fn := range args {
		it := item{name: filepath.Base(fn)}

		switch strings.ToLower(filepath.Ext(fn)) {
		case ".mp3":
			music, err := lib.AddMusicFile(fn)
			if err != nil {
				return fmt.Errorf("jukebox: %w", err)
			}
			it.music = &music
		case ".wav":
			sound, err := lib.AddSoundFile(fn)
			if err != nil {
				return fmt.Errorf("jukebox: %w", err)
			}
			it.sound = &sound
		case ".agbd", ".dmg":
			dmg, err := lib.AddDmgFile(fn)
			if err != nil {
				return fmt.Errorf("jukebox: %w", err)
			}
			it.dmg = &dmg
		default:
			return fmt.Errorf("jukebox: unrecognised file type: %s", fn)
		}

		m.items = append(m.items, it)
	}

	p := tea.NewProgram(m)

	go func() {
		<-endJukebox
		p.Quit()
	}()

	eng.start()
	defer func() {
		if err := eng.end(); err != nil {
			logger.Log(logger.Allow, "jukebox", err.Error())
		}
	}()

	_, err = p.Run()
	return err
}
