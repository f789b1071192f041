package wav_test

import (
	"os"
	"path/filepath"
	"testing"

	goaudiowav "github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipelined.dev/playout/signal"
	"pipelined.dev/playout/wav"
)

func TestSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	sink, err := wav.NewSink(path, 44100, 2, signal.BitDepth16)
	require.NoError(t, err)

	block := make([]float32, 256)
	for i := range block {
		block[i] = float32(i) / 256
	}
	require.NoError(t, sink.Write(block))
	require.NoError(t, sink.Write(block))
	require.NoError(t, sink.Flush())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	decoder := goaudiowav.NewDecoder(file)
	require.True(t, decoder.IsValidFile())
	assert.Equal(t, uint16(2), decoder.NumChans)
	assert.Equal(t, uint32(44100), decoder.SampleRate)

	buf, err := decoder.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, 512, len(buf.Data))
}

func TestSinkBadPath(t *testing.T) {
	_, err := wav.NewSink(filepath.Join(t.TempDir(), "no", "such", "dir", "out.wav"), 44100, 2, signal.BitDepth16)
	assert.Error(t, err)
}
