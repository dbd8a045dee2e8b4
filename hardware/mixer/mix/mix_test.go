package mix_test

import (
	"testing"

	"github.com/teneleven/advance/hardware/mixer/mix"
	"github.com/teneleven/advance/test"
)

func TestClip(t *testing.T) {
	// quiet signals pass through unchanged
	test.ExpectEquality(t, mix.Clip(0), 0)
	test.ExpectEquality(t, mix.Clip(1000), 1000)
	test.ExpectEquality(t, mix.Clip(-1000), -1000)
	test.ExpectEquality(t, mix.Clip(24576), 24576)
}

func TestClipSaturation(t *testing.T) {
	// louder signals are compressed but the sign is always preserved
	v := mix.Clip(30000)
	test.ExpectSuccess(t, v > 24576)
	test.ExpectSuccess(t, v < 30000)

	v = mix.Clip(-30000)
	test.ExpectSuccess(t, v < -24576)
	test.ExpectSuccess(t, v > -30000)
}

func TestClipRange(t *testing.T) {
	// out of range values never escape the 16bit range
	test.ExpectSuccess(t, mix.Clip(1<<30) <= 32767)
	test.ExpectSuccess(t, mix.Clip(-(1<<30)) >= -32768)

	// monotonic through the knee
	test.ExpectSuccess(t, mix.Clip(32767) >= mix.Clip(32000))
	test.ExpectSuccess(t, mix.Clip(32000) >= mix.Clip(24576))
}
