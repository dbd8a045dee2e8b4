package mixer

// number of simultaneous sound effect channels
const NumSoundChannels = 12

// bounds for the per-sound playback parameters. volume and panning are 8bit
// values, speed is a 10bit fixed point value
const (
	MaxSoundVolume  = 255
	MaxSoundSpeed   = 65535
	MaxSoundPanning = 255

	// unattenuated playback
	DefaultSoundVolume = 255

	// unshifted playback rate
	DefaultSoundSpeed = 1024

	// centre panning
	DefaultSoundPanning = 128
)

// a single sound effect channel. data is a mono sample buffer shared with the
// asset that registered it, so must never be written to.
type soundChannel struct {
	data    []int16
	pos     int
	frac    int
	step    int
	volume  int
	panning int

	priority int
	active   bool
}

// Sounds is a pool of sound effect channels. a new sound takes a free channel
// if one is available, otherwise it steals the channel of the playing sound
// with the lowest priority. sounds that outrank every free and stealable
// channel are dropped.
type Sounds struct {
	rate     int
	channels [NumSoundChannels]soundChannel
}

// NewSounds is the preferred method of initialisation for the Sounds type.
// rate is the output sample rate.
func NewSounds(rate int) *Sounds {
	return &Sounds{rate: rate}
}

// Play starts a sound on a channel in the pool. data is a mono sample buffer
// at srcRate. volume is an 8bit value, speed is a 10bit fixed point value and
// panning runs from 0 (full left) through 128 (centre) to 255 (full right).
//
// returns false if every channel is occupied by a higher priority sound and
// the new sound was dropped.
func (sn *Sounds) Play(priority int, data []int16, srcRate int, volume int, speed int, panning int) bool {
	step := (speed * srcRate) / sn.rate

	// a step of zero would never advance the sample position and the channel
	// would play silence forever. treat the sound as completing immediately
	if step <= 0 {
		return true
	}

	var target *soundChannel

	for i := range sn.channels {
		ch := &sn.channels[i]
		if !ch.active {
			target = ch
			break
		}
		if ch.priority <= priority && (target == nil || ch.priority < target.priority) {
			target = ch
		}
	}

	if target == nil {
		return false
	}

	target.data = data
	target.pos = 0
	target.frac = 0
	target.step = step
	target.volume = volume
	target.panning = panning
	target.priority = priority
	target.active = true

	return true
}

// StopAll silences every channel in the pool.
func (sn *Sounds) StopAll() {
	for i := range sn.channels {
		sn.channels[i].active = false
	}
}

// Active returns the number of channels currently playing a sound.
func (sn *Sounds) Active() int {
	var n int
	for i := range sn.channels {
		if sn.channels[i].active {
			n++
		}
	}
	return n
}

// Render accumulates every active channel into buf. buf is interleaved
// stereo, two entries per output frame. channels deactivate themselves when
// their sample buffer is exhausted.
func (sn *Sounds) Render(buf []int32) {
	for i := range sn.channels {
		ch := &sn.channels[i]
		if !ch.active {
			continue
		}

		// constant-sum panning. the +1 on the right gain means full right
		// panning reaches full volume
		lgain := int32(ch.volume) * int32(256-ch.panning) >> 8
		rgain := int32(ch.volume) * int32(ch.panning+1) >> 8

		for j := 0; j < len(buf); j += 2 {
			if ch.pos >= len(ch.data) {
				ch.active = false
				break
			}

			s := int32(ch.data[ch.pos])
			buf[j] += s * lgain >> 8
			buf[j+1] += s * rgain >> 8

			ch.frac += ch.step
			ch.pos += ch.frac >> 10
			ch.frac &= 1023
		}
	}
}
