package playout

import (
	"fmt"
	"sync/atomic"
)

// control is the shared control block of the ring. It occupies four 32-bit
// words:
//
//	word0	writeIndex	next sample position written by the producer
//	word1	readIndex	next sample position read by the consumer
//	word2	availableCount	samples ready to be read
//	word3	version		incremented once per produced block
//
// availableCount is the only word mutated from both sides and is maintained
// strictly by atomic add: the producer increments it after a block is
// committed, the consumer decrements it after samples are copied out. It is
// never derived from the two indices, as they advance independently and a
// combined read would tear.
type control struct {
	write     atomic.Int32
	read      atomic.Int32
	available atomic.Int32
	version   atomic.Int32
}

// Ring is a bounded queue of interleaved float32 samples shared between
// exactly one producer and one consumer. The consumer side is safe to use
// from a real-time callback: it never blocks, locks or allocates. Capacity
// is always a whole number of blocks, so a produced block wraps into at most
// two contiguous segments.
type Ring struct {
	control
	samples        []float32
	capacity       int32
	blockSize      int
	channels       int
	framesPerBlock int
}

// NewRing allocates a ring of blocksPerQueue blocks, each holding
// framesPerBlock frames of numChannels interleaved samples. The ring is
// allocated once per session and must outlive the real-time context that
// reads it.
func NewRing(numChannels, framesPerBlock, blocksPerQueue int) (*Ring, error) {
	if numChannels < 1 {
		return nil, fmt.Errorf("%w: number of channels %d", ErrConfiguration, numChannels)
	}
	if framesPerBlock < 1 {
		return nil, fmt.Errorf("%w: frames per block %d", ErrConfiguration, framesPerBlock)
	}
	if blocksPerQueue < 1 {
		return nil, fmt.Errorf("%w: blocks per queue %d", ErrConfiguration, blocksPerQueue)
	}
	blockSize := framesPerBlock * numChannels
	capacity := blockSize * blocksPerQueue
	return &Ring{
		samples:        make([]float32, capacity),
		capacity:       int32(capacity),
		blockSize:      blockSize,
		channels:       numChannels,
		framesPerBlock: framesPerBlock,
	}, nil
}

// TryConsume copies len(dst) samples out of the ring. It returns false
// without touching dst if fewer samples are available. Consumer-side only.
// len(dst) must not exceed the ring capacity; that is validated once at
// session setup, not on the hot path.
func (r *Ring) TryConsume(dst []float32) bool {
	n := int32(len(dst))
	if r.available.Load() < n {
		return false
	}
	read := r.read.Load()
	if first := r.capacity - read; first < n {
		copy(dst, r.samples[read:])
		copy(dst[first:], r.samples[:n-first])
	} else {
		copy(dst, r.samples[read:read+n])
	}
	r.read.Store((read + n) % r.capacity)
	r.available.Add(-n)
	return true
}

// ProduceBlock copies exactly one block into the ring and publishes it by
// bumping availableCount and version. Producer-side only. The caller keeps
// occupancy within capacity; ProduceBlock itself does not check for
// overrun.
func (r *Ring) ProduceBlock(block []float32) {
	n := int32(r.blockSize)
	write := r.write.Load()
	if first := r.capacity - write; first < n {
		copy(r.samples[write:], block[:first])
		copy(r.samples, block[first:n])
	} else {
		copy(r.samples[write:write+n], block[:n])
	}
	r.write.Store((write + n) % r.capacity)
	r.available.Add(n)
	r.version.Add(1)
}

// Available returns the number of samples ready to be consumed.
func (r *Ring) Available() int {
	return int(r.available.Load())
}

// Version returns the produced-block counter.
func (r *Ring) Version() int32 {
	return r.version.Load()
}

// Capacity returns the total sample capacity of the ring.
func (r *Ring) Capacity() int {
	return int(r.capacity)
}

// BlockSize returns the sample count of one produced block.
func (r *Ring) BlockSize() int {
	return r.blockSize
}

// NumChannels returns the interleaved channel count.
func (r *Ring) NumChannels() int {
	return r.channels
}

// FramesPerBlock returns the frame count of one produced block.
func (r *Ring) FramesPerBlock() int {
	return r.framesPerBlock
}

// ControlWords returns a snapshot of the four control words in layout
// order. The words are read individually, so the snapshot is not atomic as
// a whole; it is meant for diagnostics, not coordination.
func (r *Ring) ControlWords() [4]int32 {
	return [4]int32{
		r.write.Load(),
		r.read.Load(),
		r.available.Load(),
		r.version.Load(),
	}
}
