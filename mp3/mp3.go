// Package mp3 provides a capture sink which saves produced blocks to an
// mp3 file.
package mp3

import (
	"bytes"
	"encoding/binary"
	"os"

	"github.com/viert/lame"

	"pipelined.dev/playout/signal"
)

// Sink allows to send produced blocks to mp3 files. It implements
// playout.BlockSink and runs in the producer context.
type Sink struct {
	file *os.File
	wr   *lame.LameWriter
}

// NewSink creates a new mp3 sink with file created at path.
func NewSink(path string, sampleRate, numChannels, bitRate, quality int) (*Sink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	wr := lame.NewWriter(file)
	wr.Encoder.SetBitrate(bitRate)
	wr.Encoder.SetQuality(quality)
	wr.Encoder.SetNumChannels(numChannels)
	wr.Encoder.SetInSamplerate(sampleRate)
	wr.Encoder.SetMode(lame.JOINT_STEREO)
	wr.Encoder.SetVBR(lame.VBR_RH)
	wr.Encoder.InitParams()
	return &Sink{
		file: file,
		wr:   wr,
	}, nil
}

// Write encodes one interleaved block into the file.
func (s *Sink) Write(block []float32) error {
	buf := new(bytes.Buffer)
	ints := signal.Float32(block).AsInterInt(signal.BitDepth16)
	for i := range ints {
		if err := binary.Write(buf, binary.LittleEndian, int16(ints[i])); err != nil {
			return err
		}
	}
	_, err := s.wr.Write(buf.Bytes())
	return err
}

// Flush cleans up encoder buffers and closes the file.
func (s *Sink) Flush() error {
	if err := s.wr.Close(); err != nil {
		return err
	}
	return s.file.Close()
}
