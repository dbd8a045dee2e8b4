package mixer_test

import (
	"testing"

	"github.com/teneleven/advance/hardware/mixer"
	"github.com/teneleven/advance/test"
)

// flat mono sample buffer
func sample(frames int, value int16) []int16 {
	d := make([]int16, frames)
	for i := range d {
		d[i] = value
	}
	return d
}

func TestSoundPlayback(t *testing.T) {
	sn := mixer.NewSounds(32768)
	test.ExpectEquality(t, sn.Active(), 0)

	ok := sn.Play(0, sample(1024, 1000), 32768,
		mixer.DefaultSoundVolume, mixer.DefaultSoundSpeed, mixer.DefaultSoundPanning)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, sn.Active(), 1)

	buf := make([]int32, 256)
	sn.Render(buf)

	// centre panning puts signal on both channels
	test.ExpectInequality(t, buf[0], 0)
	test.ExpectInequality(t, buf[1], 0)
}

func TestSoundPanning(t *testing.T) {
	sn := mixer.NewSounds(32768)
	sn.Play(0, sample(1024, 1000), 32768,
		mixer.DefaultSoundVolume, mixer.DefaultSoundSpeed, 0)

	buf := make([]int32, 2)
	sn.Render(buf)

	// full left panning leaves the right channel silent
	test.ExpectInequality(t, buf[0], 0)
	test.ExpectEquality(t, buf[1], 0)
}

func TestSoundEnd(t *testing.T) {
	sn := mixer.NewSounds(32768)
	sn.Play(0, sample(16, 1000), 32768,
		mixer.DefaultSoundVolume, mixer.DefaultSoundSpeed, mixer.DefaultSoundPanning)

	buf := make([]int32, 256)
	sn.Render(buf)
	test.ExpectEquality(t, sn.Active(), 0)
}

func TestSoundSpeed(t *testing.T) {
	sn := mixer.NewSounds(32768)

	// double speed exhausts the sample in half the output frames
	sn.Play(0, sample(256, 1000), 32768,
		mixer.DefaultSoundVolume, mixer.DefaultSoundSpeed*2, mixer.DefaultSoundPanning)

	buf := make([]int32, 254)
	sn.Render(buf)
	test.ExpectEquality(t, sn.Active(), 1)

	sn.Render(buf[:4])
	test.ExpectEquality(t, sn.Active(), 0)
}

func TestSoundZeroSpeed(t *testing.T) {
	sn := mixer.NewSounds(32768)

	// a speed of zero would never advance the sample position. the sound
	// completes immediately without occupying a channel
	ok := sn.Play(0, sample(1024, 1000), 32768,
		mixer.DefaultSoundVolume, 0, mixer.DefaultSoundPanning)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, sn.Active(), 0)

	// the same applies when a very low speed rounds the resample step to zero
	ok = sn.Play(0, sample(1024, 1000), 8000,
		mixer.DefaultSoundVolume, 1, mixer.DefaultSoundPanning)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, sn.Active(), 0)
}

func TestSoundPriorityStealing(t *testing.T) {
	sn := mixer.NewSounds(32768)

	for range mixer.NumSoundChannels {
		ok := sn.Play(5, sample(1024, 1000), 32768,
			mixer.DefaultSoundVolume, mixer.DefaultSoundSpeed, mixer.DefaultSoundPanning)
		test.ExpectEquality(t, ok, true)
	}
	test.ExpectEquality(t, sn.Active(), mixer.NumSoundChannels)

	// lower priority than every playing sound. dropped
	ok := sn.Play(4, sample(1024, 1000), 32768,
		mixer.DefaultSoundVolume, mixer.DefaultSoundSpeed, mixer.DefaultSoundPanning)
	test.ExpectEquality(t, ok, false)

	// equal priority steals a channel
	ok = sn.Play(5, sample(1024, 1000), 32768,
		mixer.DefaultSoundVolume, mixer.DefaultSoundSpeed, mixer.DefaultSoundPanning)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, sn.Active(), mixer.NumSoundChannels)
}

func TestSoundStopAll(t *testing.T) {
	sn := mixer.NewSounds(32768)
	sn.Play(0, sample(1024, 1000), 32768,
		mixer.DefaultSoundVolume, mixer.DefaultSoundSpeed, mixer.DefaultSoundPanning)
	sn.Play(0, sample(1024, 1000), 32768,
		mixer.DefaultSoundVolume, mixer.DefaultSoundSpeed, mixer.DefaultSoundPanning)
	test.ExpectEquality(t, sn.Active(), 2)

	sn.StopAll()
	test.ExpectEquality(t, sn.Active(), 0)
}
