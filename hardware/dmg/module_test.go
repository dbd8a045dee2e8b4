package dmg_test

import (
	"testing"

	"github.com/teneleven/advance/hardware/dmg"
	"github.com/teneleven/advance/test"
)

func testModule(numPatterns int, speed int) *dmg.Module {
	mod := &dmg.Module{
		Speed:    speed,
		Patterns: make([]dmg.Pattern, numPatterns),
	}

	// a note on the first square channel at the top of every pattern
	for p := range mod.Patterns {
		mod.Patterns[p][0][0] = dmg.Cell{Note: 69, Volume: 15}
		for r := 1; r < dmg.RowsPerPattern; r++ {
			for c := 0; c < dmg.NumChannels; c++ {
				mod.Patterns[p][r][c] = dmg.Cell{Note: dmg.NoteNone, Volume: dmg.NoVolume}
			}
		}
	}

	return mod
}

func TestModuleRoundTrip(t *testing.T) {
	mod := testModule(3, 6)
	data, err := mod.Marshal()
	test.DemandEquality(t, err, nil)

	parsed, err := dmg.Parse(data)
	test.DemandEquality(t, err, nil)

	test.ExpectEquality(t, parsed.Speed, 6)
	test.DemandEquality(t, len(parsed.Patterns), 3)
	test.ExpectEquality(t, parsed.Patterns[0][0][0], dmg.Cell{Note: 69, Volume: 15})
	test.ExpectEquality(t, parsed.Patterns[2][1][3], dmg.Cell{Note: dmg.NoteNone, Volume: dmg.NoVolume})
}

func TestParseErrors(t *testing.T) {
	// empty and truncated data
	_, err := dmg.Parse(nil)
	test.ExpectFailure(t, err)
	_, err = dmg.Parse([]byte("AGB"))
	test.ExpectFailure(t, err)

	// bad magic
	_, err = dmg.Parse([]byte("NOPE\x01\x06\x01"))
	test.ExpectFailure(t, err)

	// well formed header but missing cell data
	_, err = dmg.Parse([]byte("AGBD\x01\x06\x01"))
	test.ExpectFailure(t, err)

	// a zero speed is invalid
	mod := testModule(1, 6)
	data, err := mod.Marshal()
	test.DemandEquality(t, err, nil)
	data[5] = 0
	_, err = dmg.Parse(data)
	test.ExpectFailure(t, err)

	// as is a module with no patterns
	data[5] = 6
	data[6] = 0
	_, err = dmg.Parse(data[:7])
	test.ExpectFailure(t, err)
}

func TestMarshalErrors(t *testing.T) {
	mod := testModule(1, 0)
	_, err := mod.Marshal()
	test.ExpectFailure(t, err)

	mod = testModule(1, 6)
	mod.Patterns = nil
	_, err = mod.Marshal()
	test.ExpectFailure(t, err)
}
