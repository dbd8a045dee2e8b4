// Package mix reduces the accumulated output of all sound sources to the
// 16bit range of the output device.
package mix

// below the knee the signal passes through unchanged. above it the signal is
// compressed so that it approaches but never reaches the 16bit limit
const knee = 24576

// curvature of the compression region
const kneeScale = 8192

// Clip a 32bit accumulated value so that it doesn't exceed the 16bit range.
// values inside the knee are returned unchanged which keeps quiet signals
// undistorted. louder signals saturate smoothly rather than wrapping or
// clamping hard.
func Clip(x int32) int16 {
	v := int64(x)

	neg := v < 0
	if neg {
		v = -v
	}

	if v > knee {
		over := v - knee
		v = knee + over*kneeScale/(over+kneeScale)
	}

	if neg {
		return int16(-v)
	}
	return int16(v)
}
