// Package gui is the graphical face of the jukebox. it visualises the output
// of the audio hardware and hosts the playback device that the committed
// audio stream is read through.
package gui

import (
	"fmt"
	"image/color"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/ebiten/v2"
	input "github.com/quasilyte/ebitengine-input"
	"github.com/teneleven/advance/hardware"
	"github.com/teneleven/advance/logger"
	"github.com/teneleven/advance/ui"
	"github.com/teneleven/advance/version"
)

const (
	ActionTogglePause = input.Action(ui.TogglePause)
	ActionSilence     = input.Action(ui.Silence)
	ActionQuit        = input.Action(ui.Quit)
)

// logical canvas dimensions. the window can be resized but drawing is always
// against this layout
const (
	canvasWidth  = 320
	canvasHeight = 120
)

type gui struct {
	started bool

	endGui chan bool
	u      *ui.UI

	state  ui.State
	levels hardware.Levels

	// the audio player can be stopped and recreated as required
	audio audioPlayer

	inputHandler *input.Handler
	inputSystem  input.System

	// 1x1 image stretched to draw the level meters
	pixel *ebiten.Image

	geom windowGeometry
}

func (g *gui) initialise() {
	keymap := input.Keymap{
		ActionTogglePause: {input.KeyGamepadStart, input.KeySpace},
		ActionSilence:     {input.KeyGamepadB, input.KeyS},
		ActionQuit:        {input.KeyGamepadBack, input.KeyEscape},
	}
	g.inputHandler = g.inputSystem.NewHandler(uint8(0), keymap)

	g.pixel = ebiten.NewImage(1, 1)
	g.pixel.Fill(color.White)

	g.started = true
}

func (g *gui) input() {
	g.inputSystem.Update()

	var inp ui.Input

	if g.inputHandler.ActionIsJustPressed(ActionTogglePause) {
		inp = ui.Input{Action: ui.TogglePause}
	}
	if g.inputHandler.ActionIsJustPressed(ActionSilence) {
		inp = ui.Input{Action: ui.Silence}
	}
	if g.inputHandler.ActionIsJustPressed(ActionQuit) {
		inp = ui.Input{Action: ui.Quit}
	}

	if inp.Action != ui.Nothing {
		select {
		case g.u.UserInput <- inp:
		default:
		}
	}
}

func (g *gui) Update() error {
	if !g.started {
		g.initialise()
	}

	// deal with quit condition
	select {
	case <-g.endGui:
		if g.audio.p != nil {
			g.audio.p.Close()
		}
		return ebiten.Termination
	default:
	}

	g.input()

	// change state if necessary
	select {
	case g.state = <-g.u.State:
		g.audio.setState(g.state)
	default:
	}

	// create audio if necessary
	if g.u.AudioSetup != nil {
		select {
		case s := <-g.u.AudioSetup:
			if s.Read != nil {
				if err := g.createAudio(s); err != nil {
					return fmt.Errorf("gui: %w", err)
				}
			}
		default:
		}
	}

	// retrieve most recent levels snapshot
	select {
	case g.levels = <-g.u.Levels:
	default:
	}

	return nil
}

func (g *gui) createAudio(s ui.AudioSetup) error {
	if g.audio.p != nil {
		if err := g.audio.p.Close(); err != nil {
			return err
		}
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   s.Freq,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return err
	}

	select {
	case <-ready:
	case <-g.endGui:
		return nil
	}

	g.audio.r = s.Read
	p := ctx.NewPlayer(&g.audio)
	g.audio.p = p
	p.Play()

	return nil
}

// colours for the level meters and activity lights
var (
	backgroundColor = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	meterColor      = color.RGBA{R: 90, G: 200, B: 120, A: 255}
	meterDimColor   = color.RGBA{R: 45, G: 70, B: 55, A: 255}
	musicLight      = color.RGBA{R: 120, G: 180, B: 250, A: 255}
	dmgLight        = color.RGBA{R: 250, G: 200, B: 90, A: 255}
	soundLight      = color.RGBA{R: 220, G: 110, B: 110, A: 255}
	offLight        = color.RGBA{R: 50, G: 50, B: 60, A: 255}
)

func (g *gui) rect(screen *ebiten.Image, x, y, w, h int, c color.RGBA) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(g.pixel, &op)
}

func (g *gui) Draw(screen *ebiten.Image) {
	if !g.started {
		return
	}

	screen.Fill(backgroundColor)

	// peak meters. one bar per channel
	const meterMax = canvasWidth - 40
	for ch := range 2 {
		w := int(g.levels.Peak[ch]) * meterMax / 32767
		y := 20 + ch*30
		g.rect(screen, 20, y, meterMax, 16, meterDimColor)
		g.rect(screen, 20, y, w, 16, meterColor)
	}

	// activity lights for the three sources
	light := func(n int, c color.RGBA, on bool) {
		if !on {
			c = offLight
		}
		g.rect(screen, 20+n*24, 90, 16, 16, c)
	}
	light(0, musicLight, g.levels.MusicPlaying)
	light(1, dmgLight, g.levels.DmgPlaying)
	for i := range g.levels.ActiveSounds {
		light(2+i, soundLight, true)
	}

	g.geom.x, g.geom.y = ebiten.WindowPosition()
	g.geom.w, g.geom.h = ebiten.WindowSize()
}

func (g *gui) Layout(width, height int) (int, int) {
	return canvasWidth, canvasHeight
}

// Launch the GUI. the function does not return until the GUI has ended,
// either because of a request on the endGui channel or because the user has
// closed the window.
//
// must be called from the main goroutine.
func Launch(endGui chan bool, u *ui.UI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetWindowSize(canvasWidth*2, canvasHeight*2)

	g := &gui{
		endGui: endGui,
		u:      u,
		state:  ui.StateRunning,
		audio: audioPlayer{
			state: ui.StateRunning,
		},
	}

	g.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	var err error

	g.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}

	defer func() {
		err := onWindowClose(g.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
		}
	}()

	return ebiten.RunGame(g)
}
