package playout

import (
	"fmt"

	"github.com/rs/xid"

	"pipelined.dev/playout/log"
	"pipelined.dev/playout/metric"
)

const (
	defaultNumChannels    = 2
	defaultFramesPerBlock = 512
	defaultBlocksPerQueue = 4
	defaultSampleRate     = 44100

	// diagnostics buffer; events beyond it are dropped, not blocked on.
	eventBuffer = 64
)

// Session owns one delivery pipeline: a ring shared by the host's
// real-time callback and a producer goroutine driving the engine. The ring
// itself is handed to the real-time context as a closure over its read
// side, captured at Run and detached again at Stop.
type Session struct {
	uid    string
	logger Logger
	notify func(Event)

	engine Engine
	host   Host

	numChannels    int
	framesPerBlock int
	blocksPerQueue int
	sampleRate     int

	ring    *Ring
	prod    *producer
	diag    diagnostics
	meter   *metric.Meter
	drained chan struct{}
	running bool
}

// Option provides a way to set functional parameters to session.
type Option func(*Session) error

// New creates a new session for the provided engine and host and applies
// provided options. The ring is not allocated until Run.
func New(engine Engine, host Host, options ...Option) (*Session, error) {
	s := &Session{
		uid:            xid.New().String(),
		logger:         log.GetLogger(),
		engine:         engine,
		host:           host,
		numChannels:    defaultNumChannels,
		framesPerBlock: defaultFramesPerBlock,
		blocksPerQueue: defaultBlocksPerQueue,
		sampleRate:     defaultSampleRate,
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// WithLogger sets logger to session. If this option is not provided,
// logrus logger is used.
func WithLogger(logger Logger) Option {
	return func(s *Session) error {
		s.logger = logger
		return nil
	}
}

// WithNotify registers a callback invoked for every diagnostics event,
// after it has been logged and metered. It runs on the session's drain
// goroutine, never on the real-time path.
func WithNotify(fn func(Event)) Option {
	return func(s *Session) error {
		s.notify = fn
		return nil
	}
}

// WithBlock sets the geometry of one produced block and the queue depth.
func WithBlock(framesPerBlock, blocksPerQueue int) Option {
	return func(s *Session) error {
		s.framesPerBlock = framesPerBlock
		s.blocksPerQueue = blocksPerQueue
		return nil
	}
}

// WithChannels sets the interleaved channel count.
func WithChannels(numChannels int) Option {
	return func(s *Session) error {
		s.numChannels = numChannels
		return nil
	}
}

// WithSampleRate sets the sample rate used for duration metrics.
func WithSampleRate(sampleRate int) Option {
	return func(s *Session) error {
		s.sampleRate = sampleRate
		return nil
	}
}

// UID returns the unique id of this session.
func (s *Session) UID() string {
	return s.uid
}

// Occupancy returns the number of samples currently queued, 0 when the
// session is not running.
func (s *Session) Occupancy() int {
	if s.ring == nil {
		return 0
	}
	return s.ring.Available()
}

// Run allocates the ring, starts the producer and attaches the real-time
// callback to the host. The queue is primed with one demand before the
// first callback so playback does not have to start from silence.
func (s *Session) Run() error {
	if s.running {
		return ErrInvalidState
	}
	ring, err := NewRing(s.numChannels, s.framesPerBlock, s.blocksPerQueue)
	if err != nil {
		return err
	}
	needed := s.host.BufferFrames() * s.numChannels
	if needed > ring.Capacity() {
		return fmt.Errorf("%w: host requests %d samples per cycle, ring holds %d",
			ErrConfiguration, needed, ring.Capacity())
	}

	s.ring = ring
	s.diag = newDiagnostics(eventBuffer)
	s.meter = metric.New(s.uid, s.sampleRate, s.numChannels)
	s.drained = make(chan struct{})
	go s.drain()

	s.prod = &producer{
		ring:   ring,
		engine: s.engine,
		demand: newDemand(),
		diag:   s.diag,
		meter:  s.meter.Block,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go s.prod.run()
	s.prod.demand.signal(needed)

	cons := &consumer{
		ring:   ring,
		demand: s.prod.demand,
		diag:   s.diag,
	}
	if err := s.host.Start(cons.consume); err != nil {
		s.teardown()
		return err
	}
	s.running = true
	s.logger.Info("session started: ", s.uid)
	return nil
}

// Stop detaches the real-time context from the host, stops the producer at
// block granularity and releases the ring. Teardown strictly follows that
// order: the callback must be gone before ring memory is dropped.
func (s *Session) Stop() error {
	if !s.running {
		return ErrInvalidState
	}
	err := s.host.Stop()
	s.teardown()
	s.running = false
	s.logger.Info("session stopped: ", s.uid)
	return err
}

// teardown stops the producer, drains remaining diagnostics and drops the
// ring. The host must already be detached.
func (s *Session) teardown() {
	close(s.prod.stop)
	<-s.prod.done
	close(s.diag.c)
	<-s.drained
	s.ring = nil
}

// drain consumes diagnostics events until the channel is closed, feeding
// the logger, the meter and the optional notify hook. Runs on its own
// goroutine so neither pipeline context ever waits on it.
func (s *Session) drain() {
	defer close(s.drained)
	for e := range s.diag.c {
		switch e.Kind {
		case EventUnderrun:
			s.meter.Underrun()
			s.logger.Debug("underrun: needed ", e.Needed, " available ", e.Available)
		case EventComputeError:
			s.meter.ComputeError()
			s.logger.Info("compute error: ", e.Err)
		}
		if s.notify != nil {
			s.notify(e)
		}
	}
}
