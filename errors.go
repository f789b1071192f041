package playout

import "errors"

var (
	// ErrConfiguration is returned when ring or session geometry is
	// invalid: non-positive channel, frame or block counts, or a host
	// callback that requests more samples per cycle than the ring holds.
	// It is fatal at setup and never occurs at runtime.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrBlockSize is reported through diagnostics when the engine
	// returns a block of the wrong size. The block is discarded and the
	// fill cycle is aborted, keeping the ring consistent.
	ErrBlockSize = errors.New("engine returned block of unexpected size")

	// ErrInvalidState is returned if a session method cannot be executed
	// in its current lifecycle state.
	ErrInvalidState = errors.New("invalid state")
)
