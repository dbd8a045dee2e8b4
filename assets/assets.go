// Package assets loads audio files from disk and registers them with the
// audio hardware. the returned items can be handed to the audio manager for
// playback.
//
// music files are streamed rather than loaded whole, so the underlying file
// remains open for the lifetime of the library. sound effects and DMG modules
// are small and are read into memory in their entirety.
package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/teneleven/advance/audio"
	"github.com/teneleven/advance/hardware"
	"github.com/teneleven/advance/hardware/dmg"
	"github.com/teneleven/advance/logger"
)

type Library struct {
	aud *hardware.Audio

	// ids are assigned in registration order. music and sound ids are
	// independent of one another
	nextMusicID int
	nextSoundID int
}

// NewLibrary is the preferred method of initialisation for the Library type.
func NewLibrary(aud *hardware.Audio) *Library {
	return &Library{aud: aud}
}

// AddMusicFile registers an MP3 file as a music stream. the file stays open
// until the process ends.
func (lib *Library) AddMusicFile(filename string) (audio.MusicItem, error) {
	if strings.ToLower(filepath.Ext(filename)) != ".mp3" {
		return audio.MusicItem{}, fmt.Errorf("assets: music must be an mp3 file: %s", filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		return audio.MusicItem{}, fmt.Errorf("assets: %w", err)
	}

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		f.Close()
		return audio.MusicItem{}, fmt.Errorf("assets: mp3: %w", err)
	}

	// the go-mp3 decoder always produces 16bit little-endian 2 channel
	// samples, which is exactly the stream format the mixer wants
	id := lib.nextMusicID
	lib.nextMusicID++
	lib.aud.RegisterMusic(id, dec, dec.SampleRate())

	logger.Logf(logger.Allow, "assets", "music %d: %s (%dHz)", id, filename, dec.SampleRate())

	return audio.NewMusicItem(id), nil
}

// AddSoundFile registers a WAV or MP3 file as a sound effect. stereo files
// are reduced to mono by taking the left channel.
func (lib *Library) AddSoundFile(filename string) (audio.SoundItem, error) {
	var data []int16
	var rate int
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		data, rate, err = loadWav(filename)
	case ".mp3":
		data, rate, err = loadMp3(filename)
	default:
		err = fmt.Errorf("unsupported sound file: %s", filename)
	}
	if err != nil {
		return audio.SoundItem{}, fmt.Errorf("assets: %w", err)
	}

	item := lib.AddPCM(data, rate)
	logger.Logf(logger.Allow, "assets", "sound %d: %s (%dHz)", item.ID(), filename, rate)

	return item, nil
}

// AddPCM registers a mono sample buffer as a sound effect.
func (lib *Library) AddPCM(data []int16, rate int) audio.SoundItem {
	id := lib.nextSoundID
	lib.nextSoundID++
	lib.aud.RegisterSound(id, data, rate)
	return audio.NewSoundItem(id)
}

// AddDmgFile reads and validates a DMG module file.
func (lib *Library) AddDmgFile(filename string) (audio.DmgMusicItem, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return audio.DmgMusicItem{}, fmt.Errorf("assets: %w", err)
	}

	mod, err := dmg.Parse(data)
	if err != nil {
		return audio.DmgMusicItem{}, fmt.Errorf("assets: %s: %w", filename, err)
	}

	logger.Logf(logger.Allow, "assets", "dmg module: %s (%d patterns)", filename, len(mod.Patterns))

	return audio.NewDmgMusicItem(data), nil
}

func loadWav(filename string) ([]int16, int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("not a valid wav file: %s", filename)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wav: %w", err)
	}

	// first channel only, adjusted to the 16bit range
	chans := int(dec.NumChans)
	data := make([]int16, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		v := buf.Data[i]
		switch dec.BitDepth {
		case 8:
			v = (v - 128) << 8
		case 16:
			// no adjustment
		case 24:
			v >>= 8
		case 32:
			v >>= 16
		default:
			return nil, 0, fmt.Errorf("wav: unsupported bit depth: %d", dec.BitDepth)
		}
		data = append(data, int16(v))
	}

	return data, int(dec.SampleRate), nil
}

func loadMp3(filename string) ([]int16, int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, fmt.Errorf("mp3: %w", err)
	}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, fmt.Errorf("mp3: %w", err)
	}

	// the decoded stream is 16bit little-endian 2 channel. an index increment
	// of 4 takes the left channel only
	data := make([]int16, 0, len(pcm)/4)
	for i := 0; i+1 < len(pcm); i += 4 {
		data = append(data, int16(uint16(pcm[i])|uint16(pcm[i+1])<<8))
	}

	return data, dec.SampleRate(), nil
}
