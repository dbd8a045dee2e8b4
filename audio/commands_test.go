package audio

import (
	"testing"

	"github.com/teneleven/advance/test"
)

func TestCommandDispatch(t *testing.T) {
	drv := &recordingDriver{}

	musicPlayCommand(3, 1024, true).execute(drv)
	musicSetPositionCommand(9).execute(drv)
	dmgMusicSetVolumeCommand(8, 4).execute(drv)
	dmgMusicSetPositionCommand(DmgPosition{Pattern: 1, Row: 2}).execute(drv)
	soundStopAllCommand().execute(drv)

	test.DemandEquality(t, len(drv.trace), 5)
	test.ExpectEquality(t, drv.trace[0], "PlayMusic 3 1024 true")
	test.ExpectEquality(t, drv.trace[1], "SetMusicPosition 9")
	test.ExpectEquality(t, drv.trace[2], "SetDmgMusicVolume 8 4")
	test.ExpectEquality(t, drv.trace[3], "SetDmgMusicPosition 1 2")
	test.ExpectEquality(t, drv.trace[4], "StopAllSounds")
}

func TestInvalidCommandType(t *testing.T) {
	drv := &recordingDriver{}

	// a command type outside of the closed set is an engine bug and fatal
	c := command{typ: commandType(99)}
	test.ExpectPanic(t, func() { c.execute(drv) })
}
