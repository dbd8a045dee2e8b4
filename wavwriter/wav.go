// Package wavwriter writes committed audio to disk as a WAV file. the writer
// implements the hardware.Recorder interface so it can be attached directly
// to the audio hardware.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/teneleven/advance/hardware"
	"github.com/teneleven/advance/logger"
)

type WavWriter struct {
	filename string
	f        *os.File
	enc      *wav.Encoder
	frames   int
}

// New is the preferred method of initialisation for the WavWriter type. the
// file is created immediately and stays open until End is called.
func New(filename string) (*WavWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("wavwriter: %w", err)
	}

	return &WavWriter{
		filename: filename,
		f:        f,
		enc:      wav.NewEncoder(f, hardware.SampleRate, 16, 2, 1),
	}, nil
}

// Write implements the hardware.Recorder interface. frames is interleaved
// stereo.
func (aw *WavWriter) Write(frames []int16) error {
	buf := audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 2,
			SampleRate:  hardware.SampleRate,
		},
		Data:           make([]int, len(frames)),
		SourceBitDepth: 16,
	}
	for i, v := range frames {
		buf.Data[i] = int(v)
	}

	if err := aw.enc.Write(&buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	aw.frames += len(frames) / 2

	return nil
}

// End finalises the WAV header and closes the file. the writer cannot be used
// again afterwards.
func (aw *WavWriter) End() (rerr error) {
	defer func() {
		err := aw.f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	if err := aw.enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "%d frames written to %s", aw.frames, aw.filename)

	return nil
}
