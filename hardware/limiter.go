package hardware

import (
	"time"
)

// Limiter paces a loop to the refresh rate of the audio hardware. a nudge
// releases the current wait early, which lets the audio playback device pull
// the loop forward when its buffer is running low.
type Limiter struct {
	tick  *time.Ticker
	nudge chan bool

	// the payload function for the Wait() method
	wait func()
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter() *Limiter {
	l := &Limiter{
		nudge: make(chan bool, 1),
	}

	d := time.Second / RefreshRate

	// the wait() function deliberately starts slow and then changes state
	// after a few nudges to normal operation
	//
	// this helps ensure that production and playback synchronise after
	// startup
	var ct int
	l.wait = func() {
		select {
		case <-time.After(time.Duration(float64(d) * 1.025)):
		case <-l.nudge:
			ct++
			if ct > 2 {
				l.tick = time.NewTicker(d)
				l.wait = func() {
					select {
					case <-l.tick.C:
					case <-l.nudge:
					}
				}
			}
		}
	}

	return l
}

func (l *Limiter) Wait() {
	l.wait()
}

func (l *Limiter) Nudge() {
	select {
	case l.nudge <- true:
	default:
	}
}
