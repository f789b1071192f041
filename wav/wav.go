// Package wav provides a capture sink which saves produced blocks to a
// wav file.
package wav

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"pipelined.dev/playout/signal"
)

// wav audio format value of the PCM encoding.
const wavAudioFormat = 1

// Sink saves audio to wav file. It implements playout.BlockSink and runs
// in the producer context.
type Sink struct {
	bitDepth signal.BitDepth
	file     *os.File
	encoder  *wav.Encoder
	ib       *audio.IntBuffer
}

// NewSink creates a new wav sink with file created at path.
func NewSink(path string, sampleRate, numChannels int, bitDepth signal.BitDepth) (*Sink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Sink{
		bitDepth: bitDepth,
		file:     file,
		encoder:  wav.NewEncoder(file, sampleRate, int(bitDepth), numChannels, wavAudioFormat),
		ib: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: numChannels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: int(bitDepth),
		},
	}, nil
}

// Write encodes one interleaved block into the file.
func (s *Sink) Write(block []float32) error {
	s.ib.Data = signal.Float32(block).AsInterInt(s.bitDepth)
	return s.encoder.Write(s.ib)
}

// Flush finalizes the wav header and closes the file.
func (s *Sink) Flush() error {
	if err := s.encoder.Close(); err != nil {
		return err
	}
	return s.file.Close()
}
