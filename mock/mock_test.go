package mock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipelined.dev/playout/mock"
)

func TestEngineDefaults(t *testing.T) {
	engine := &mock.Engine{}

	block, err := engine.ProcessBlock()
	require.NoError(t, err)
	assert.Len(t, block, 256)
	assert.Equal(t, 1, engine.Calls())
}

func TestEngineSequential(t *testing.T) {
	engine := &mock.Engine{NumChannels: 1, FramesPerBlock: 4, Sequential: true}

	block, err := engine.ProcessBlock()
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 2, 3}, block)

	block, err = engine.ProcessBlock()
	require.NoError(t, err)
	assert.Equal(t, []float32{4, 5, 6, 7}, block)
}

func TestEngineErrorOnCall(t *testing.T) {
	engine := &mock.Engine{ErrorOnCall: 2}

	_, err := engine.ProcessBlock()
	require.NoError(t, err)
	_, err = engine.ProcessBlock()
	assert.ErrorIs(t, err, mock.ErrCompute)
	_, err = engine.ProcessBlock()
	require.NoError(t, err)
	assert.Equal(t, 3, engine.Calls())
}
