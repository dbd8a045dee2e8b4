package jukebox

import (
	"sync"

	"github.com/teneleven/advance/audio"
	"github.com/teneleven/advance/hardware"
	"github.com/teneleven/advance/ui"
	"github.com/teneleven/advance/wavwriter"
)

// engine owns the audio hardware and the audio manager, and runs the update
// loop that drives them at the hardware refresh rate.
//
// the manager is not safe to use while the loop is mid-update, so every
// access from the TUI goroutine goes through the with() function.
type engine struct {
	aud *hardware.Audio
	mgr *audio.Manager
	u   *ui.UI

	lim  *hardware.Limiter
	stop chan bool
	done chan bool

	crit    sync.Mutex
	running bool
	rec     *wavwriter.WavWriter
}

func newEngine(u *ui.UI) *engine {
	aud := hardware.NewAudio()

	e := &engine{
		aud:     aud,
		mgr:     audio.NewManager(aud),
		u:       u,
		lim:     hardware.NewLimiter(),
		stop:    make(chan bool, 1),
		done:    make(chan bool),
		running: true,
	}

	// a playback device running low on data accelerates the loop
	aud.Buffer.SetNudge(e.lim.Nudge)

	return e
}

// start hands the committed audio stream to the GUI and begins the update
// loop in its own goroutine.
func (e *engine) start() {
	if e.u.AudioSetup != nil {
		e.u.AudioSetup <- ui.AudioSetup{
			Read: e.aud.Buffer,
			Freq: hardware.SampleRate,
		}
	}
	e.u.State <- ui.StateRunning

	go e.loop()
}

func (e *engine) loop() {
	defer close(e.done)

	for {
		select {
		case <-e.stop:
			return
		default:
		}

		e.lim.Wait()

		e.crit.Lock()
		if e.running {
			e.mgr.Update()
			e.mgr.Commit()
		}
		levels := e.aud.Levels()
		e.crit.Unlock()

		select {
		case e.u.Levels <- levels:
		default:
		}
	}
}

// end stops the update loop and finalises any recording in progress. the
// engine cannot be restarted.
func (e *engine) end() error {
	select {
	case e.stop <- true:
	default:
	}
	<-e.done

	e.crit.Lock()
	defer e.crit.Unlock()

	if e.rec != nil {
		err := e.rec.End()
		e.rec = nil
		return err
	}

	return nil
}

// with runs f with exclusive access to the audio manager.
func (e *engine) with(f func(mgr *audio.Manager)) {
	e.crit.Lock()
	defer e.crit.Unlock()
	f(e.mgr)
}

// setRunning pauses or resumes the update loop. while paused no audio is
// produced and the manager state is frozen.
func (e *engine) setRunning(running bool) {
	e.crit.Lock()
	e.running = running
	e.crit.Unlock()

	state := ui.StateRunning
	if !running {
		state = ui.StatePaused
	}
	select {
	case e.u.State <- state:
	default:
	}
}

func (e *engine) isRunning() bool {
	e.crit.Lock()
	defer e.crit.Unlock()
	return e.running
}

// record starts writing committed audio to the named WAV file. an existing
// recording is finalised first.
func (e *engine) record(filename string) error {
	e.crit.Lock()
	defer e.crit.Unlock()

	if e.rec != nil {
		if err := e.rec.End(); err != nil {
			e.rec = nil
			e.aud.SetRecorder(nil)
			return err
		}
		e.rec = nil
		e.aud.SetRecorder(nil)
	}

	if filename == "" {
		return nil
	}

	rec, err := wavwriter.New(filename)
	if err != nil {
		return err
	}

	e.rec = rec
	e.aud.SetRecorder(rec)

	return nil
}
