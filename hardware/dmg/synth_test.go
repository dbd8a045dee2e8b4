package dmg_test

import (
	"testing"

	"github.com/teneleven/advance/hardware/dmg"
	"github.com/teneleven/advance/test"
)

func mustMarshal(t *testing.T, mod *dmg.Module) []byte {
	t.Helper()
	data, err := mod.Marshal()
	test.DemandEquality(t, err, nil)
	return data
}

func TestSequencerAdvance(t *testing.T) {
	sy := dmg.NewSynth(32768)
	sy.Play(mustMarshal(t, testModule(2, 2)), 1, false)

	test.ExpectEquality(t, sy.Playing(), true)

	pattern, row := sy.Position()
	test.ExpectEquality(t, pattern, 0)
	test.ExpectEquality(t, row, 0)

	// two frames per row
	sy.StepFrame()
	pattern, row = sy.Position()
	test.ExpectEquality(t, pattern, 0)
	test.ExpectEquality(t, row, 0)

	sy.StepFrame()
	pattern, row = sy.Position()
	test.ExpectEquality(t, pattern, 0)
	test.ExpectEquality(t, row, 1)
}

func TestBetweenPatterns(t *testing.T) {
	sy := dmg.NewSynth(32768)
	sy.Play(mustMarshal(t, testModule(2, 1)), 1, false)

	// one frame per row: step to the end of the first pattern
	for i := 0; i < dmg.RowsPerPattern-1; i++ {
		sy.StepFrame()
	}
	pattern, row := sy.Position()
	test.ExpectEquality(t, pattern, 0)
	test.ExpectEquality(t, row, dmg.RowsPerPattern-1)

	// the frame in which the pattern boundary is crossed has no meaningful
	// position
	sy.StepFrame()
	pattern, _ = sy.Position()
	test.ExpectEquality(t, pattern, -1)

	// the position becomes meaningful again on the next frame
	sy.StepFrame()
	pattern, row = sy.Position()
	test.ExpectEquality(t, pattern, 1)
	test.ExpectEquality(t, row, 1)
}

func TestLoop(t *testing.T) {
	sy := dmg.NewSynth(32768)
	sy.Play(mustMarshal(t, testModule(1, 1)), 1, true)

	// step over the entire pattern. the module loops back to the start
	for i := 0; i < dmg.RowsPerPattern; i++ {
		sy.StepFrame()
	}
	pattern, _ := sy.Position()
	test.ExpectEquality(t, pattern, -1)

	sy.StepFrame()
	pattern, row := sy.Position()
	test.ExpectEquality(t, pattern, 0)
	test.ExpectEquality(t, row, 1)
	test.ExpectEquality(t, sy.Playing(), true)
}

func TestFinish(t *testing.T) {
	sy := dmg.NewSynth(32768)
	sy.Play(mustMarshal(t, testModule(1, 1)), 1, false)

	// a non-looping module holds at its final position once it has played
	// through
	for i := 0; i < dmg.RowsPerPattern*2; i++ {
		sy.StepFrame()
	}
	pattern, row := sy.Position()
	test.ExpectEquality(t, pattern, 0)
	test.ExpectEquality(t, row, dmg.RowsPerPattern-1)

	// finished playback renders silence
	buf := make([]int32, 64)
	sy.RenderFrame(buf)
	for _, v := range buf {
		test.DemandEquality(t, v, 0)
	}
}

func TestPlaybackSpeed(t *testing.T) {
	sy := dmg.NewSynth(32768)

	// a speed multiplier of 2 halves the number of frames per row
	sy.Play(mustMarshal(t, testModule(2, 4)), 2, false)

	sy.StepFrame()
	sy.StepFrame()
	_, row := sy.Position()
	test.ExpectEquality(t, row, 1)
}

func TestSetPosition(t *testing.T) {
	sy := dmg.NewSynth(32768)
	sy.Play(mustMarshal(t, testModule(2, 1)), 1, false)

	sy.SetPosition(1, 10)
	pattern, row := sy.Position()
	test.ExpectEquality(t, pattern, 1)
	test.ExpectEquality(t, row, 10)

	// out of range positions are clamped
	sy.SetPosition(99, 99)
	pattern, row = sy.Position()
	test.ExpectEquality(t, pattern, 1)
	test.ExpectEquality(t, row, dmg.RowsPerPattern-1)
}

func TestRender(t *testing.T) {
	sy := dmg.NewSynth(32768)
	sy.Play(mustMarshal(t, testModule(1, 1)), 1, true)

	// the test module has a full volume note playing so the render must
	// produce a non-zero signal
	buf := make([]int32, 1024)
	sy.RenderFrame(buf)

	var sum int64
	for _, v := range buf {
		if v < 0 {
			sum -= int64(v)
		} else {
			sum += int64(v)
		}
	}
	test.ExpectSuccess(t, sum > 0)

	// silencing both output channels silences the render
	sy.SetVolume(0, 0)
	buf = make([]int32, 1024)
	sy.RenderFrame(buf)
	for _, v := range buf {
		test.DemandEquality(t, v, 0)
	}
}

func TestPauseHoldsPosition(t *testing.T) {
	sy := dmg.NewSynth(32768)
	sy.Play(mustMarshal(t, testModule(1, 1)), 1, true)

	sy.StepFrame()
	_, row := sy.Position()
	test.ExpectEquality(t, row, 1)

	sy.Pause()
	sy.StepFrame()
	sy.StepFrame()
	_, row = sy.Position()
	test.ExpectEquality(t, row, 1)

	sy.Resume()
	sy.StepFrame()
	_, row = sy.Position()
	test.ExpectEquality(t, row, 2)
}
