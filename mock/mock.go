// Package mock provides a controllable compute engine for tests.
package mock

import (
	"errors"
	"sync/atomic"
)

const (
	defaultNumChannels    = 2
	defaultFramesPerBlock = 128
)

// ErrCompute is returned by Engine on the invocation selected with
// ErrorOnCall.
var ErrCompute = errors.New("mock compute error")

// Engine is a mock implementation of playout.Engine. A zero value
// produces silent stereo blocks of 128 frames.
type Engine struct {
	NumChannels    int
	FramesPerBlock int
	Value          float32 // sample value of produced blocks
	Sequential     bool    // produce increasing sample values for order checks
	ErrorOnCall    int     // 1-based invocation which fails with ErrCompute
	BlockSize      int     // overrides computed block size when non-zero

	calls int64
	next  float32
}

// ProcessBlock counts the invocation and produces one block.
func (m *Engine) ProcessBlock() ([]float32, error) {
	calls := atomic.AddInt64(&m.calls, 1)
	if m.ErrorOnCall > 0 && int(calls) == m.ErrorOnCall {
		return nil, ErrCompute
	}
	block := make([]float32, m.blockSize())
	for i := range block {
		if m.Sequential {
			block[i] = m.next
			m.next++
		} else {
			block[i] = m.Value
		}
	}
	return block, nil
}

// Calls returns the number of ProcessBlock invocations, including failed
// ones.
func (m *Engine) Calls() int {
	return int(atomic.LoadInt64(&m.calls))
}

func (m *Engine) blockSize() int {
	if m.BlockSize != 0 {
		return m.BlockSize
	}
	numChannels := m.NumChannels
	if numChannels == 0 {
		numChannels = defaultNumChannels
	}
	framesPerBlock := m.FramesPerBlock
	if framesPerBlock == 0 {
		framesPerBlock = defaultFramesPerBlock
	}
	return framesPerBlock * numChannels
}
