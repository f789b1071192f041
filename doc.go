/*
Package playout delivers computed audio blocks to a hard-real-time playback
callback without blocking, locking or allocating on the real-time path.

# Concept

Playback hosts invoke their callback on a rigid schedule and expect an
exact-size block of samples every cycle. Compute engines are the opposite:
the cost of one block is data-dependent and occasionally exceeds the cycle
deadline. The package decouples the two with a bounded single-producer
single-consumer ring of interleaved float32 samples:

	Engine -> producer goroutine -> Ring -> real-time callback -> Host

The callback drains the ring each cycle. When the ring holds too few
samples the cycle degrades to silence and a demand signal is posted; the
producer goroutine serves demand signals by invoking the engine until ring
occupancy reaches a target derived from the requested amount. A version
counter bumped on every produced block lets the callback request refills
proactively, before the ring ever runs empty.

# Components

Engine computes one fixed-size block per invocation. Host attaches the
callback to the real-time context, portaudio.Host being the default
implementation. Session owns the ring and both loops and manages their
lifecycle: Run allocates the ring and attaches the callback, Stop detaches
it before the ring is released.

Underruns and engine failures are never fatal and never synchronous: they
travel as diagnostics events to a drain goroutine which logs them, meters
them and hands them to an optional notify hook.
*/
package playout
