package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipelined.dev/playout/generate"
)

func TestSine(t *testing.T) {
	engine := generate.NewSine(440, 0.5, 44100, 2, 128)

	block, err := engine.ProcessBlock()
	require.NoError(t, err)
	require.Len(t, block, 256)
	for i := 0; i < len(block); i += 2 {
		assert.Equal(t, block[i], block[i+1])
		assert.LessOrEqual(t, block[i], float32(0.5))
		assert.GreaterOrEqual(t, block[i], float32(-0.5))
	}

	// phase continues between blocks, the signal is not restarted
	first := block[0]
	next, err := engine.ProcessBlock()
	require.NoError(t, err)
	assert.NotEqual(t, first, next[0])
}

func TestNoise(t *testing.T) {
	engine := generate.NewNoise(0.3, 2, 128)

	block, err := engine.ProcessBlock()
	require.NoError(t, err)
	require.Len(t, block, 256)
	for i := range block {
		assert.LessOrEqual(t, block[i], float32(0.3))
		assert.GreaterOrEqual(t, block[i], float32(-0.3))
	}
}
