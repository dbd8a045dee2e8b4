package audio

import "github.com/teneleven/advance/fixed"

// conversion of engine fixed point values to the scales expected by the
// hardware driver. all conversions are deterministic rescales and clamps;
// there is no floating point involved.
//
// music and DMG music volumes are not clamped against an upper bound beyond
// the width of their hardware fields. callers are trusted to pass volumes in
// the normal 0 to 1 range. sound volume, speed and panning are clamped

// music volume is a 10 fraction bit value (unity is 1024)
func hwMusicVolume(volume fixed.Fixed) int {
	return volume.Rescale(10)
}

// sound volume is an 8 fraction bit value clamped to 255
func hwSoundVolume(volume fixed.Fixed) int {
	return min(volume.Rescale(8), 255)
}

// DMG music volume is a 3 fraction bit value per channel (unity is 8)
func hwDmgMusicVolume(volume fixed.Fixed) int {
	return volume.Rescale(3)
}

// sound speed is a 10 fraction bit value clamped to 65535
func hwSoundSpeed(speed fixed.Fixed) int {
	return min(speed.Rescale(10), 65535)
}

// sound panning input is in the range -1 to 1. it is shifted to the range 0
// to 2 and rescaled to a 7 fraction bit value clamped to 255, meaning that
// full left is 0, centre is 128 and full right is 255
func hwSoundPanning(panning fixed.Fixed) int {
	return min(panning.Add(fixed.FromInt(1)).Rescale(7), 255)
}
