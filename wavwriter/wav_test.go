package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/teneleven/advance/hardware"
	"github.com/teneleven/advance/test"
	"github.com/teneleven/advance/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(fn)
	test.DemandSuccess(t, err)

	frames := make([]int16, 1024)
	for i := range frames {
		frames[i] = int16(i)
	}
	test.ExpectSuccess(t, aw.Write(frames))
	test.ExpectSuccess(t, aw.Write(frames))
	test.ExpectSuccess(t, aw.End())

	// the written file must decode as valid stereo wav at the hardware rate
	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int(dec.NumChans), 2)
	test.ExpectEquality(t, int(dec.SampleRate), hardware.SampleRate)
	test.ExpectEquality(t, len(buf.Data), 2048)
	test.ExpectEquality(t, buf.Data[100], 100)
}
