package playout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipelined.dev/playout"
)

func TestNewRing(t *testing.T) {
	tests := []struct {
		numChannels    int
		framesPerBlock int
		blocksPerQueue int
		negative       bool
	}{
		{
			numChannels:    2,
			framesPerBlock: 128,
			blocksPerQueue: 4,
		},
		{
			numChannels:    1,
			framesPerBlock: 1,
			blocksPerQueue: 1,
		},
		{
			numChannels:    0,
			framesPerBlock: 128,
			blocksPerQueue: 4,
			negative:       true,
		},
		{
			numChannels:    2,
			framesPerBlock: 0,
			blocksPerQueue: 4,
			negative:       true,
		},
		{
			numChannels:    2,
			framesPerBlock: 128,
			blocksPerQueue: -1,
			negative:       true,
		},
	}

	for _, test := range tests {
		r, err := playout.NewRing(test.numChannels, test.framesPerBlock, test.blocksPerQueue)
		if test.negative {
			assert.ErrorIs(t, err, playout.ErrConfiguration)
			assert.Nil(t, r)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.framesPerBlock*test.numChannels, r.BlockSize())
		assert.Equal(t, r.BlockSize()*test.blocksPerQueue, r.Capacity())
		assert.Equal(t, 0, r.Available())
		assert.Equal(t, int32(0), r.Version())
	}
}

// block returns one block of sequential sample values starting at from.
func block(size int, from float32) []float32 {
	b := make([]float32, size)
	for i := range b {
		b[i] = from + float32(i)
	}
	return b
}

func TestRingRoundTrip(t *testing.T) {
	r, err := playout.NewRing(2, 128, 4)
	require.NoError(t, err)
	require.Equal(t, 1024, r.Capacity())

	var produced, consumed float32
	produce := func() {
		r.ProduceBlock(block(r.BlockSize(), produced))
		produced += float32(r.BlockSize())
	}
	consume := func(n int) {
		dst := make([]float32, n)
		require.True(t, r.TryConsume(dst))
		for i := range dst {
			require.Equal(t, consumed+float32(i), dst[i])
		}
		consumed += float32(n)
	}

	version := int32(0)
	for i := 0; i < 4; i++ {
		produce()
		version++
		assert.Equal(t, version, r.Version())
	}
	assert.Equal(t, 1024, r.Available())

	// drain partially, then refill across the wraparound boundary
	consume(600)
	assert.Equal(t, 424, r.Available())
	produce()
	produce()
	assert.Equal(t, 936, r.Available())
	// this read wraps: only 424 samples remain before the ring end
	consume(500)
	assert.Equal(t, 436, r.Available())
	consume(436)
	assert.Equal(t, 0, r.Available())
}

func TestRingUnderrun(t *testing.T) {
	r, err := playout.NewRing(2, 128, 4)
	require.NoError(t, err)

	dst := make([]float32, 256)
	for i := range dst {
		dst[i] = 1
	}
	assert.False(t, r.TryConsume(dst))
	// dst is left untouched on underrun
	for i := range dst {
		assert.Equal(t, float32(1), dst[i])
	}
	assert.Equal(t, 0, r.Available())

	r.ProduceBlock(block(r.BlockSize(), 0))
	assert.False(t, r.TryConsume(make([]float32, 257)))
	assert.Equal(t, 256, r.Available())
}

func TestRingBoundaryConsume(t *testing.T) {
	r, err := playout.NewRing(2, 128, 4)
	require.NoError(t, err)

	r.ProduceBlock(block(r.BlockSize(), 0))
	r.ProduceBlock(block(r.BlockSize(), 256))

	// request exactly equal to availableCount succeeds and leaves 0
	dst := make([]float32, 512)
	assert.True(t, r.TryConsume(dst))
	assert.Equal(t, 0, r.Available())
	assert.False(t, r.TryConsume(make([]float32, 1)))
}

func TestRingControlWords(t *testing.T) {
	r, err := playout.NewRing(2, 128, 2)
	require.NoError(t, err)

	r.ProduceBlock(block(r.BlockSize(), 0))
	require.True(t, r.TryConsume(make([]float32, 100)))

	words := r.ControlWords()
	assert.Equal(t, int32(256), words[0]) // writeIndex
	assert.Equal(t, int32(100), words[1]) // readIndex
	assert.Equal(t, int32(156), words[2]) // availableCount
	assert.Equal(t, int32(1), words[3])   // version

	// indices stay within capacity across full wraps
	r.ProduceBlock(block(r.BlockSize(), 0))
	require.True(t, r.TryConsume(make([]float32, 412)))
	words = r.ControlWords()
	assert.Equal(t, int32(0), words[0])
	assert.Equal(t, int32(0), words[1])
	assert.Equal(t, int32(0), words[2])
}
