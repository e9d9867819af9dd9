package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edu/hashlab/internal/hashes"
)

func TestRun(t *testing.T) {
	m, err := Run("sha256", []byte("benchmark input"), 100)
	require.NoError(t, err)
	assert.Equal(t, "sha256", m.Algorithm)
	assert.Equal(t, 100, m.Iterations)
	assert.Greater(t, m.Elapsed.Nanoseconds(), int64(0))
	assert.Greater(t, m.HashesPerSec, 0.0)
}

func TestRunClampsIterations(t *testing.T) {
	m, err := Run("sha512", []byte("x"), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Iterations)
}

func TestRunUnknownAlgorithm(t *testing.T) {
	_, err := Run("md4", []byte("x"), 10)
	require.ErrorIs(t, err, hashes.ErrUnknownAlgorithm)
}

func TestRunAll(t *testing.T) {
	ms, err := RunAll([]byte("benchmark input"), 10)
	require.NoError(t, err)
	require.Len(t, ms, len(hashes.List()))

	best := Fastest(ms)
	require.GreaterOrEqual(t, best, 0)
	for _, m := range ms {
		assert.GreaterOrEqual(t, m.Elapsed, ms[best].Elapsed)
	}
}

func TestRunSalted(t *testing.T) {
	m, err := RunSalted("blake2b", "DataMahasiswa2025", 50)
	require.NoError(t, err)
	assert.Equal(t, 50, m.Iterations)
	assert.Greater(t, m.Elapsed.Nanoseconds(), int64(0))
}

func TestRunSaltedUnknownAlgorithm(t *testing.T) {
	_, err := RunSalted("md4", "pw", 10)
	require.ErrorIs(t, err, hashes.ErrUnknownAlgorithm)
}

func TestFastestEmpty(t *testing.T) {
	assert.Equal(t, -1, Fastest(nil))
}
