package playout

import "fmt"

// producer owns the engine and the write side of the ring. It serves
// demand requests strictly in arrival order on a single goroutine, so the
// engine is never invoked concurrently.
type producer struct {
	ring   *Ring
	engine Engine
	demand demand
	diag   diagnostics
	meter  MeasureFunc
	stop   chan struct{}
	done   chan struct{}
}

// MeasureFunc captures metrics when a block is produced.
type MeasureFunc func(blockSize int64)

// run serves demand requests until stopped. It is the only goroutine that
// touches the engine and the ring's write side.
func (p *producer) run() {
	defer close(p.done)
	for {
		select {
		case <-p.stop:
			return
		case n := <-p.demand.c:
			p.fill(n)
		}
	}
}

// fill tops the ring up to the occupancy implied by a demand for n
// samples: one requested cycle per queued block, capped at capacity. The
// playback clock is the only reliable real-time reference, so occupancy is
// pushed from the observed deficit instead of a timer. An engine failure
// aborts the cycle without committing a partial block; the ring keeps its
// last consistent state. Stop is honored at block granularity.
func (p *producer) fill(n int) {
	target := n * (p.ring.Capacity() / p.ring.BlockSize())
	if target > p.ring.Capacity() {
		target = p.ring.Capacity()
	}
	for {
		available := p.ring.Available()
		if available >= target {
			return
		}
		// a whole block must fit, consumer drains are not block-aligned
		if available+p.ring.BlockSize() > p.ring.Capacity() {
			return
		}
		select {
		case <-p.stop:
			return
		default:
		}
		block, err := p.engine.ProcessBlock()
		if err != nil {
			p.diag.notify(Event{Kind: EventComputeError, Err: err})
			return
		}
		if len(block) != p.ring.BlockSize() {
			p.diag.notify(Event{
				Kind: EventComputeError,
				Err:  fmt.Errorf("%w: got %d, want %d", ErrBlockSize, len(block), p.ring.BlockSize()),
			})
			return
		}
		p.ring.ProduceBlock(block)
		if p.meter != nil {
			p.meter(int64(p.ring.BlockSize()))
		}
	}
}
