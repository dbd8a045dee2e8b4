package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/teneleven/advance/assets"
	"github.com/teneleven/advance/hardware"
	"github.com/teneleven/advance/hardware/dmg"
	"github.com/teneleven/advance/test"
)

// write a mono wav file suitable for use as a sound effect
func writeWav(t *testing.T, filename string, data []int) {
	t.Helper()

	f, err := os.Create(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, 22050, 16, 1, 1)
	err = enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: 22050},
		Data:           data,
		SourceBitDepth: 16,
	})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, enc.Close())
}

func TestAddSoundFile(t *testing.T) {
	lib := assets.NewLibrary(hardware.NewAudio())

	fn := filepath.Join(t.TempDir(), "blip.wav")
	writeWav(t, fn, []int{0, 1000, -1000, 32000})

	item, err := lib.AddSoundFile(fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, item.ID(), 0)

	// ids are assigned in registration order
	item, err = lib.AddSoundFile(fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, item.ID(), 1)
}

func TestAddSoundFileUnsupported(t *testing.T) {
	lib := assets.NewLibrary(hardware.NewAudio())
	_, err := lib.AddSoundFile("effect.ogg")
	test.ExpectFailure(t, err)
}

func TestAddPCM(t *testing.T) {
	aud := hardware.NewAudio()
	lib := assets.NewLibrary(aud)

	item := lib.AddPCM([]int16{1000, 1000, 1000}, hardware.SampleRate)

	// a registered sound must be playable through the hardware
	test.ExpectNoPanic(t, func() {
		aud.PlaySound(0, item.ID())
	})
}

func TestAddDmgFile(t *testing.T) {
	lib := assets.NewLibrary(hardware.NewAudio())

	mod := &dmg.Module{Speed: 6}
	mod.Patterns = make([]dmg.Pattern, 2)
	data, err := mod.Marshal()
	test.DemandSuccess(t, err)

	fn := filepath.Join(t.TempDir(), "tune.dmg")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0644))

	item, err := lib.AddDmgFile(fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(item.Data()), len(data))
}

func TestAddDmgFileInvalid(t *testing.T) {
	lib := assets.NewLibrary(hardware.NewAudio())

	fn := filepath.Join(t.TempDir(), "bad.dmg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a module"), 0644))

	_, err := lib.AddDmgFile(fn)
	test.ExpectFailure(t, err)
}

func TestAddMusicFileUnsupported(t *testing.T) {
	lib := assets.NewLibrary(hardware.NewAudio())
	_, err := lib.AddMusicFile("song.flac")
	test.ExpectFailure(t, err)
}
