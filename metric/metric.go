package metric

import (
	"expvar"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"pipelined.dev/playout/signal"
)

const sessionsLabel = "playout.sessions"

const (
	// BlockCounter measures number of produced blocks.
	BlockCounter = "Blocks"
	// SampleCounter measures number of produced samples.
	SampleCounter = "Samples"
	// UnderrunCounter measures number of callback cycles degraded to silence.
	UnderrunCounter = "Underruns"
	// ComputeErrorCounter measures number of aborted fill cycles.
	ComputeErrorCounter = "ComputeErrors"
	// DurationCounter counts what's the duration of produced signal.
	DurationCounter = "Duration"
)

var (
	sessions = meters{
		m: make(map[string]*Meter),
	}

	counters = []string{
		BlockCounter,
		SampleCounter,
		UnderrunCounter,
		ComputeErrorCounter,
		DurationCounter,
	}
)

// Meter captures counters of a single session.
type Meter struct {
	blocks        *expvar.Int
	samples       *expvar.Int
	underruns     *expvar.Int
	computeErrors *expvar.Int
	duration      *duration
	sampleRate    int
	numChannels   int
}

// New returns the meter for the session, creating and publishing its
// counters on first use.
func New(session string, sampleRate, numChannels int) *Meter {
	m := sessions.get(session)
	m.sampleRate = sampleRate
	m.numChannels = numChannels
	return m
}

// Get returns metrics values for the provided session.
func Get(session string) map[string]string {
	m := make(map[string]string)
	for _, counter := range counters {
		if v := expvar.Get(key(session, counter)); v != nil {
			m[counter] = v.String()
		}
	}
	return m
}

// Block captures counters for one produced block of blockSize samples.
func (m *Meter) Block(blockSize int64) {
	m.blocks.Add(1)
	m.samples.Add(blockSize)
	m.duration.add(signal.DurationOf(m.sampleRate, blockSize/int64(m.numChannels)))
}

// Underrun captures one silent callback cycle.
func (m *Meter) Underrun() {
	m.underruns.Add(1)
}

// ComputeError captures one aborted fill cycle.
func (m *Meter) ComputeError() {
	m.computeErrors.Add(1)
}

type meters struct {
	sync.Mutex
	m map[string]*Meter
}

func (ms *meters) get(session string) *Meter {
	ms.Lock()
	defer ms.Unlock()
	if m, ok := ms.m[session]; ok {
		return m
	}
	m := newMeter(session)
	ms.m[session] = m
	return m
}

func newMeter(session string) *Meter {
	m := &Meter{
		blocks:        expvar.NewInt(key(session, BlockCounter)),
		samples:       expvar.NewInt(key(session, SampleCounter)),
		underruns:     expvar.NewInt(key(session, UnderrunCounter)),
		computeErrors: expvar.NewInt(key(session, ComputeErrorCounter)),
		duration:      &duration{},
	}
	expvar.Publish(key(session, DurationCounter), m.duration)
	return m
}

func key(session, counter string) string {
	return fmt.Sprintf("%s.%s.%s", sessionsLabel, session, counter)
}

// duration allows to format time.Duration metric values.
type duration struct {
	d int64
}

func (v *duration) String() string {
	return fmt.Sprintf("%q", time.Duration(atomic.LoadInt64(&v.d)).String())
}

func (v *duration) add(delta time.Duration) {
	atomic.AddInt64(&v.d, int64(delta))
}
