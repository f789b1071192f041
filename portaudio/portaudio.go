// Package portaudio implements the playback host over the default
// portaudio output device.
package portaudio

import (
	"github.com/gordonklaus/portaudio"
)

// Host represents portaudio playback host which invokes the real-time
// callback with a fixed-size interleaved buffer once per device cycle.
type Host struct {
	sampleRate   int
	numChannels  int
	bufferFrames int
	stream       *portaudio.Stream
}

// NewHost returns new initialized host for the default output device.
func NewHost(sampleRate, numChannels, bufferFrames int) *Host {
	return &Host{
		sampleRate:   sampleRate,
		numChannels:  numChannels,
		bufferFrames: bufferFrames,
	}
}

// Start initializes portaudio and attaches fn as the stream callback. From
// here on fn runs on portaudio's real-time thread.
func (h *Host) Start(fn func(out []float32)) error {
	err := portaudio.Initialize()
	if err != nil {
		return err
	}
	h.stream, err = portaudio.OpenDefaultStream(0, h.numChannels, float64(h.sampleRate), h.bufferFrames, fn)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	err = h.stream.Start()
	if err != nil {
		h.stream.Close()
		portaudio.Terminate()
		return err
	}
	return nil
}

// Stop detaches the callback and terminates portaudio structures. The
// callback is not invoked once Stop returns.
func (h *Host) Stop() error {
	err := h.stream.Stop()
	if err != nil {
		return err
	}
	err = h.stream.Close()
	if err != nil {
		return err
	}
	return portaudio.Terminate()
}

// BufferFrames returns the fixed frame count delivered per callback.
func (h *Host) BufferFrames() int {
	return h.bufferFrames
}
