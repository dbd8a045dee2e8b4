package jukebox

import (
	"strings"
	"testing"

	"github.com/teneleven/advance/assets"
	"github.com/teneleven/advance/test"
	"github.com/teneleven/advance/ui"
)

func testJukebox(t *testing.T) *jukebox {
	t.Helper()

	eng := newEngine(ui.NewUI())
	lib := assets.NewLibrary(eng.aud)

	m := &jukebox{
		eng:    eng,
		u:      eng.u,
		styles: newStyles(),
	}

	snd := lib.AddPCM(make([]int16, 256), 32768)
	m.items = append(m.items, item{name: "blip.wav", sound: &snd})

	return m
}

func (m *jukebox) lastOutput() string {
	if len(m.output) == 0 {
		return ""
	}
	return m.output[len(m.output)-1]
}

func TestCommandUnrecognised(t *testing.T) {
	m := testJukebox(t)
	quit := m.command([]string{"FROB"})
	test.ExpectEquality(t, quit, false)
	test.ExpectSuccess(t, strings.Contains(m.lastOutput(), "unrecognised command"))
}

func TestCommandQuit(t *testing.T) {
	m := testJukebox(t)
	test.ExpectEquality(t, m.command([]string{"QUIT"}), true)
}

// user typos must produce error messages, never reach the manager's
// precondition panics
func TestCommandGuards(t *testing.T) {
	m := testJukebox(t)

	test.ExpectNoPanic(t, func() {
		m.command([]string{"STOP"})
	})
	test.ExpectSuccess(t, strings.Contains(m.lastOutput(), "no music playing"))

	test.ExpectNoPanic(t, func() {
		m.command([]string{"PAUSE"})
	})
	test.ExpectSuccess(t, strings.Contains(m.lastOutput(), "no music playing"))

	test.ExpectNoPanic(t, func() {
		m.command([]string{"RESUME"})
	})
	test.ExpectSuccess(t, strings.Contains(m.lastOutput(), "music is not paused"))

	test.ExpectNoPanic(t, func() {
		m.command([]string{"DMGSTOP"})
	})
	test.ExpectSuccess(t, strings.Contains(m.lastOutput(), "no dmg music playing"))
}

func TestCommandSound(t *testing.T) {
	m := testJukebox(t)

	m.command([]string{"SOUND", "0"})
	test.ExpectSuccess(t, strings.Contains(m.lastOutput(), "blip.wav"))

	// the sound command queues a driver command; one update makes it audible
	m.eng.mgr.Update()
	m.eng.mgr.Commit()
	test.ExpectEquality(t, m.eng.aud.Levels().ActiveSounds, 1)
}

func TestCommandBadItem(t *testing.T) {
	m := testJukebox(t)

	m.command([]string{"PLAY", "0"})
	test.ExpectSuccess(t, strings.Contains(m.lastOutput(), "not a music item"))

	m.command([]string{"SOUND", "9"})
	test.ExpectSuccess(t, strings.Contains(m.lastOutput(), "not an item number"))
}
