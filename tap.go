package playout

import "fmt"

// BlockSink receives a copy of every block committed to the ring. Sinks
// run in the producer context, so they may do file io, but a slow sink
// delays refills and shows up as underruns.
type BlockSink interface {
	Write(block []float32) error
	Flush() error
}

// Tap wraps an engine so that every successfully computed block is also
// delivered to the provided sinks before it is committed. A sink failure
// is surfaced as a compute error and aborts the fill cycle.
func Tap(e Engine, sinks ...BlockSink) Engine {
	if len(sinks) == 0 {
		return e
	}
	return &tap{engine: e, sinks: sinks}
}

type tap struct {
	engine Engine
	sinks  []BlockSink
}

func (t *tap) ProcessBlock() ([]float32, error) {
	block, err := t.engine.ProcessBlock()
	if err != nil {
		return nil, err
	}
	for _, s := range t.sinks {
		if err := s.Write(block); err != nil {
			return nil, fmt.Errorf("tap: %w", err)
		}
	}
	return block, nil
}
