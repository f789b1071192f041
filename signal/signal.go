// Package signal provides an API to manipulate digital signals. It allows to:
//   - convert interleaved float32 data to non-interleaved
//   - convert bit depth for int signals
package signal

import (
	"math"
	"time"
)

// Float32 is an interleaved float32 signal, the wire format of the playout
// queue and of compute-engine blocks.
type Float32 []float32

const (
	// BitDepth8 is 8 bit depth.
	BitDepth8 = BitDepth(8)
	// BitDepth16 is 16 bit depth.
	BitDepth16 = BitDepth(16)
	// BitDepth32 is 32 bit depth.
	BitDepth32 = BitDepth(32)
)

// BitDepth contains values required for float-to-int and backward conversion.
type BitDepth int

// multiplier is used when float to int conversion is done.
func (bitDepth BitDepth) multiplier() int {
	switch bitDepth {
	case BitDepth8:
		return math.MaxInt8 - 1
	case BitDepth16:
		return math.MaxInt16 - 1
	case BitDepth32:
		return math.MaxInt32 - 1
	default:
		return 1
	}
}

// DurationOf returns time duration of passed frames for this sample rate.
func DurationOf(sampleRate int, frames int64) time.Duration {
	return time.Duration(float64(frames) / float64(sampleRate) * float64(time.Second))
}

// AsInterInt converts interleaved float32 signal to interleaved int of the
// provided bit depth.
func (floats Float32) AsInterInt(bitDepth BitDepth) []int {
	if floats == nil {
		return nil
	}
	multiplier := float64(bitDepth.multiplier())
	ints := make([]int, len(floats))
	for i := range floats {
		ints[i] = int(float64(floats[i]) * multiplier)
	}
	return ints
}

// AsFloat64 converts interleaved float32 signal to non-interleaved float64.
func (floats Float32) AsFloat64(numChannels int) [][]float64 {
	if floats == nil || numChannels == 0 {
		return nil
	}
	bufSize := int(math.Ceil(float64(len(floats)) / float64(numChannels)))
	result := make([][]float64, numChannels)
	for i := range result {
		result[i] = make([]float64, 0, bufSize)
		for j := i; j < len(floats); j = j + numChannels {
			result[i] = append(result[i], float64(floats[j]))
		}
	}
	return result
}

// NumFrames returns number of frames in this signal for the provided
// number of channels.
func (floats Float32) NumFrames(numChannels int) int {
	if numChannels == 0 {
		return 0
	}
	return len(floats) / numChannels
}
