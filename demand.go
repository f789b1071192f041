package playout

// demand is the one-way mailbox that carries refill requests from the
// real-time context to the producer loop. It holds at most one pending
// request; concurrent requests coalesce with latest-wins semantics. Loss
// and duplication are both tolerated by the protocol: a duplicate request
// against a topped-up ring is a no-op, a lost one is replayed by the next
// callback cycle.
type demand struct {
	c chan int
}

func newDemand() demand {
	return demand{c: make(chan int, 1)}
}

// signal posts a request for at least n samples without ever blocking or
// allocating. If a stale request occupies the mailbox it is dropped in
// favor of the new one. When producer and consumer race on the slot the
// send may be lost entirely, which the protocol tolerates.
func (d demand) signal(n int) {
	select {
	case d.c <- n:
		return
	default:
	}
	select {
	case <-d.c:
	default:
	}
	select {
	case d.c <- n:
	default:
	}
}
