package playout

// Engine computes interleaved sample blocks on demand. Implementations are
// free to take as long as a block needs; the queue absorbs the jitter.
// ProcessBlock is invoked synchronously from the producer context only and
// is not safe for concurrent use. Implementations should use next error
// conventions:
//   - nil with a full block when computation succeeded;
//   - a non-nil error when the block could not be computed. No partial
//     block is ever committed to the ring.
type Engine interface {
	ProcessBlock() ([]float32, error)
}

// Host drives the real-time side. It invokes the callback on a strict
// periodic schedule with a fixed-size interleaved output buffer which the
// callback must fill completely before returning. Start hands the callback
// to the real-time context; Stop detaches it. The host must not invoke the
// callback after Stop returns.
type Host interface {
	Start(func(out []float32)) error
	Stop() error
	BufferFrames() int
}

// Logger is a global interface for playout loggers.
type Logger interface {
	Debug(...interface{})
	Info(...interface{})
}
