// Package generate provides trivial compute engines producing synthesized
// blocks. They exist for examples and manual playback checks; a real
// engine is expected to be a full DSP graph behind the same interface.
package generate

import (
	"math"
	"math/rand"
)

// Sine is an engine which computes blocks of a sine wave, same signal on
// every channel.
type Sine struct {
	freq       float64
	amplitude  float64
	sampleRate int
	channels   int
	block      []float32
	phase      float64
}

// NewSine returns a new sine engine producing framesPerBlock frames per
// invocation.
func NewSine(freq, amplitude float64, sampleRate, numChannels, framesPerBlock int) *Sine {
	return &Sine{
		freq:       freq,
		amplitude:  amplitude,
		sampleRate: sampleRate,
		channels:   numChannels,
		block:      make([]float32, framesPerBlock*numChannels),
	}
}

// ProcessBlock computes one block. The returned slice is reused between
// invocations, which the queue allows: blocks are copied on commit.
func (s *Sine) ProcessBlock() ([]float32, error) {
	step := 2 * math.Pi * s.freq / float64(s.sampleRate)
	for i := 0; i < len(s.block); i += s.channels {
		v := float32(s.amplitude * math.Sin(s.phase))
		for c := 0; c < s.channels; c++ {
			s.block[i+c] = v
		}
		s.phase += step
		if s.phase > 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
	}
	return s.block, nil
}

// Noise is an engine which computes blocks of uniform white noise.
type Noise struct {
	amplitude float64
	block     []float32
}

// NewNoise returns a new noise engine producing framesPerBlock frames of
// numChannels interleaved samples per invocation.
func NewNoise(amplitude float64, numChannels, framesPerBlock int) *Noise {
	return &Noise{
		amplitude: amplitude,
		block:     make([]float32, framesPerBlock*numChannels),
	}
}

// ProcessBlock computes one block. The returned slice is reused between
// invocations.
func (n *Noise) ProcessBlock() ([]float32, error) {
	for i := range n.block {
		n.block[i] = float32(n.amplitude * (2*rand.Float64() - 1))
	}
	return n.block, nil
}
