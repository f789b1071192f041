package playout

// consumer drains the ring from the real-time callback. One instance
// belongs to exactly one callback; lastVersion is callback-local state and
// needs no synchronization.
type consumer struct {
	ring        *Ring
	demand      demand
	diag        diagnostics
	lastVersion int32
}

// consume fills out from the ring. On shortfall the whole cycle degrades
// to silence and a demand for len(out) samples is fired. When delivery
// succeeded but the produced-block counter moved since the previous cycle,
// a demand is fired proactively to keep the queue topped up ahead of need.
// Runs on the real-time schedule: no blocking, no locks, no allocation.
func (c *consumer) consume(out []float32) {
	if !c.ring.TryConsume(out) {
		c.diag.notify(Event{
			Kind:      EventUnderrun,
			Needed:    len(out),
			Available: c.ring.Available(),
		})
		for i := range out {
			out[i] = 0
		}
		c.lastVersion = c.ring.Version()
		c.demand.signal(len(out))
		return
	}
	if v := c.ring.Version(); v != c.lastVersion {
		c.lastVersion = v
		c.demand.signal(len(out))
	}
}
