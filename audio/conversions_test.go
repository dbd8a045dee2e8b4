package audio

import (
	"testing"

	"github.com/teneleven/advance/fixed"
	"github.com/teneleven/advance/test"
)

func TestMusicVolumeConversion(t *testing.T) {
	test.ExpectEquality(t, hwMusicVolume(fixed.FromInt(0)), 0)
	test.ExpectEquality(t, hwMusicVolume(fixed.FromFloat(0.5)), 512)
	test.ExpectEquality(t, hwMusicVolume(fixed.FromInt(1)), 1024)
}

func TestSoundVolumeConversion(t *testing.T) {
	test.ExpectEquality(t, hwSoundVolume(fixed.FromInt(0)), 0)
	test.ExpectEquality(t, hwSoundVolume(fixed.FromFloat(0.5)), 128)

	// values beyond the hardware field are clamped, never allowed to
	// overflow
	test.ExpectEquality(t, hwSoundVolume(fixed.FromInt(1)), 255)
	test.ExpectEquality(t, hwSoundVolume(fixed.FromInt(100)), 255)
}

func TestDmgMusicVolumeConversion(t *testing.T) {
	test.ExpectEquality(t, hwDmgMusicVolume(fixed.FromInt(0)), 0)
	test.ExpectEquality(t, hwDmgMusicVolume(fixed.FromFloat(0.5)), 4)
	test.ExpectEquality(t, hwDmgMusicVolume(fixed.FromInt(1)), 8)
}

func TestSoundSpeedConversion(t *testing.T) {
	test.ExpectEquality(t, hwSoundSpeed(fixed.FromInt(1)), 1024)
	test.ExpectEquality(t, hwSoundSpeed(fixed.FromFloat(0.5)), 512)
	test.ExpectEquality(t, hwSoundSpeed(fixed.FromInt(63)), 64512)
	test.ExpectEquality(t, hwSoundSpeed(fixed.FromInt(64)), 65535)
	test.ExpectEquality(t, hwSoundSpeed(fixed.FromInt(1000)), 65535)
}

func TestSoundPanningConversion(t *testing.T) {
	// full left maps to zero and full right to the maximum clamp value
	test.ExpectEquality(t, hwSoundPanning(fixed.FromInt(-1)), 0)
	test.ExpectEquality(t, hwSoundPanning(fixed.FromInt(0)), 128)
	test.ExpectEquality(t, hwSoundPanning(fixed.FromInt(1)), 255)

	test.ExpectEquality(t, hwSoundPanning(fixed.FromFloat(-0.5)), 64)
	test.ExpectEquality(t, hwSoundPanning(fixed.FromFloat(0.5)), 192)
}
