package dmg

import (
	"fmt"
)

// NumChannels is the number of synthesis channels: two squares, one wave and
// one noise
const NumChannels = 4

// RowsPerPattern is the fixed number of rows in every pattern
const RowsPerPattern = 32

// values for the Note field of a Cell that do not name a note
const (
	// NoteNone means the cell does not start a new note
	NoteNone = 0

	// NoteOff silences the channel
	NoteOff = 255
)

// NoVolume in the Volume field of a Cell means the channel volume is left
// unchanged
const NoVolume = 255

// Cell is one event in a pattern row. A note value between 1 and 119 names a
// semitone (the numbering follows the MIDI convention, 69 is A above middle
// C). Volume is in the range 0 to 15
type Cell struct {
	Note   uint8
	Volume uint8
}

// Row is the set of cells for all channels at one position in a pattern.
// Channel order is: square 1, square 2, wave, noise
type Row [NumChannels]Cell

// Pattern is a fixed number of rows
type Pattern [RowsPerPattern]Row

// Module is a complete piece of DMG music
type Module struct {
	// the number of frames between row advances. higher is slower
	Speed int

	// patterns play in storage order. there is no order table
	Patterns []Pattern
}

// the binary module format is the magic number followed by a version byte, a
// speed byte, a pattern count byte and the cell data in storage order, two
// bytes per cell
const moduleMagic = "AGBD"

const moduleVersion = 1

const headerLen = len(moduleMagic) + 3

func patternLen() int {
	return RowsPerPattern * NumChannels * 2
}

// Parse converts raw module data into a Module. Errors are returned for
// malformed data, truncated data, etc.
func Parse(data []byte) (*Module, error) {
	if len(data) < headerLen {
		return nil, fmt.Errorf("dmg: not enough data for module header")
	}
	if string(data[:len(moduleMagic)]) != moduleMagic {
		return nil, fmt.Errorf("dmg: not a module: bad magic number")
	}
	if data[4] != moduleVersion {
		return nil, fmt.Errorf("dmg: unsupported module version: %d", data[4])
	}

	speed := int(data[5])
	if speed < 1 {
		return nil, fmt.Errorf("dmg: invalid module speed: %d", speed)
	}

	numPatterns := int(data[6])
	if numPatterns < 1 {
		return nil, fmt.Errorf("dmg: module has no patterns")
	}

	expected := headerLen + numPatterns*patternLen()
	if len(data) != expected {
		return nil, fmt.Errorf("dmg: bad module length: %d bytes but expected %d", len(data), expected)
	}

	mod := &Module{
		Speed:    speed,
		Patterns: make([]Pattern, numPatterns),
	}

	o := headerLen
	for p := range mod.Patterns {
		for r := 0; r < RowsPerPattern; r++ {
			for c := 0; c < NumChannels; c++ {
				mod.Patterns[p][r][c] = Cell{
					Note:   data[o],
					Volume: data[o+1],
				}
				o += 2
			}
		}
	}

	return mod, nil
}

// Marshal converts the Module to the binary module format, suitable for
// Parse()
func (mod *Module) Marshal() ([]byte, error) {
	if mod.Speed < 1 || mod.Speed > 255 {
		return nil, fmt.Errorf("dmg: module speed out of range: %d", mod.Speed)
	}
	if len(mod.Patterns) < 1 || len(mod.Patterns) > 255 {
		return nil, fmt.Errorf("dmg: number of patterns out of range: %d", len(mod.Patterns))
	}

	data := make([]byte, 0, headerLen+len(mod.Patterns)*patternLen())
	data = append(data, moduleMagic...)
	data = append(data, moduleVersion, byte(mod.Speed), byte(len(mod.Patterns)))

	for p := range mod.Patterns {
		for r := 0; r < RowsPerPattern; r++ {
			for c := 0; c < NumChannels; c++ {
				cell := mod.Patterns[p][r][c]
				data = append(data, cell.Note, cell.Volume)
			}
		}
	}

	return data, nil
}
