package playout

// EventKind identifies the type of a diagnostics event.
type EventKind int

const (
	// EventUnderrun is emitted by the consumer when a callback cycle had
	// to substitute silence.
	EventUnderrun EventKind = iota
	// EventComputeError is emitted by the producer when the engine
	// failed and the fill cycle was aborted.
	EventComputeError
)

// Event is a diagnostics notification. The real-time side has no
// synchronous error path, so both recoverable conditions travel through
// events instead. Events are plain values so emitting one does not
// allocate.
type Event struct {
	Kind      EventKind
	Needed    int   // samples requested by the callback, underrun only
	Available int   // samples that were available, underrun only
	Err       error // engine failure, compute error only
}

// diagnostics is a fire-and-forget event channel. Events are dropped when
// the channel is full rather than blocking either context.
type diagnostics struct {
	c chan Event
}

func newDiagnostics(size int) diagnostics {
	return diagnostics{c: make(chan Event, size)}
}

func (d diagnostics) notify(e Event) {
	select {
	case d.c <- e:
	default:
	}
}
