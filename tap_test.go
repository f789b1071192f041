package playout_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipelined.dev/playout"
	"pipelined.dev/playout/mock"
)

type memorySink struct {
	blocks  [][]float32
	flushed bool
	err     error
}

func (s *memorySink) Write(block []float32) error {
	if s.err != nil {
		return s.err
	}
	s.blocks = append(s.blocks, append([]float32(nil), block...))
	return nil
}

func (s *memorySink) Flush() error {
	s.flushed = true
	return nil
}

func TestTap(t *testing.T) {
	engine := &mock.Engine{NumChannels: 2, FramesPerBlock: 128, Sequential: true}
	sink := &memorySink{}
	tapped := playout.Tap(engine, sink)

	var next float32
	for i := 0; i < 3; i++ {
		block, err := tapped.ProcessBlock()
		require.NoError(t, err)
		require.Len(t, sink.blocks, i+1)
		assert.Equal(t, block, sink.blocks[i])
	}
	for _, block := range sink.blocks {
		for i := range block {
			require.Equal(t, next, block[i])
			next++
		}
	}
}

func TestTapSinkError(t *testing.T) {
	errSink := errors.New("sink failed")
	engine := &mock.Engine{NumChannels: 2, FramesPerBlock: 128}
	tapped := playout.Tap(engine, &memorySink{err: errSink})

	_, err := tapped.ProcessBlock()
	assert.ErrorIs(t, err, errSink)
}

func TestTapNoSinks(t *testing.T) {
	engine := &mock.Engine{}
	assert.Equal(t, playout.Engine(engine), playout.Tap(engine))
}
