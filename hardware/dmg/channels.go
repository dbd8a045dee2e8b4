package dmg

import "math"

// noteFrequency returns the frequency in Hz for a note number. the numbering
// follows the MIDI convention so note 69 is 440Hz
func noteFrequency(note uint8) float64 {
	return 440 * math.Pow(2, (float64(note)-69)/12)
}

// the duty patterns of the square channels, from the least significant bit
// upwards. the same patterns as the original hardware
var dutyPatterns = [4]uint8{
	0b00000001, // 12.5%
	0b10000001, // 25%
	0b10000111, // 50%
	0b01111110, // 75%
}

// square is a square wave channel. the phase field is a 32bit accumulator;
// the top three bits index the duty pattern
type square struct {
	rate int

	duty   int
	volume int
	phase  uint32
	delta  uint32
	active bool
}

func (ch *square) note(note uint8) {
	switch note {
	case NoteNone:
	case NoteOff:
		ch.active = false
	default:
		ch.delta = uint32(noteFrequency(note) * float64(1<<32) / float64(ch.rate) * 8)
		ch.phase = 0
		ch.active = true
	}
}

func (ch *square) sample() int32 {
	if !ch.active || ch.volume == 0 {
		return 0
	}
	ch.phase += ch.delta
	if dutyPatterns[ch.duty]>>(ch.phase>>29)&0x01 == 0x01 {
		return int32(ch.volume)
	}
	return int32(-ch.volume)
}

// wave plays a 32 entry wavetable. the default table is a triangle
type wave struct {
	rate int

	table  [32]int8
	volume int
	phase  uint32
	delta  uint32
	active bool
}

func (ch *wave) reset() {
	// triangle from -15 to 15 and back
	for i := 0; i < 16; i++ {
		ch.table[i] = int8(-15 + i*2)
		ch.table[16+i] = int8(15 - i*2)
	}
}

func (ch *wave) note(note uint8) {
	switch note {
	case NoteNone:
	case NoteOff:
		ch.active = false
	default:
		ch.delta = uint32(noteFrequency(note) * float64(1<<32) / float64(ch.rate) * 32)
		ch.phase = 0
		ch.active = true
	}
}

func (ch *wave) sample() int32 {
	if !ch.active || ch.volume == 0 {
		return 0
	}
	ch.phase += ch.delta
	return int32(ch.table[ch.phase>>27]) * int32(ch.volume) / 15
}

// noise is a 15bit LFSR noise channel. the note number controls how often
// the register is clocked
type noise struct {
	rate int

	volume int
	freq   int
	accum  int
	lfsr   uint16
	active bool
}

func (ch *noise) note(note uint8) {
	switch note {
	case NoteNone:
	case NoteOff:
		ch.active = false
	default:
		// the useful range of noise pitches is far above the equivalent
		// tonal frequency
		ch.freq = int(noteFrequency(note) * 32)
		ch.lfsr = 0x7fff
		ch.accum = 0
		ch.active = true
	}
}

func (ch *noise) sample() int32 {
	if !ch.active || ch.volume == 0 {
		return 0
	}

	ch.accum += ch.freq
	for ch.accum >= ch.rate {
		ch.accum -= ch.rate
		b := (ch.lfsr ^ (ch.lfsr >> 1)) & 0x01
		ch.lfsr = (ch.lfsr >> 1) | (b << 14)
	}

	if ch.lfsr&0x01 == 0x01 {
		return int32(ch.volume)
	}
	return int32(-ch.volume)
}
