package salt

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShape(t *testing.T) {
	s, err := Generate(16)
	require.NoError(t, err)
	assert.Len(t, s, 32)

	raw, err := hex.DecodeString(s)
	require.NoError(t, err)
	assert.Len(t, raw, 16)
}

func TestGenerateDefaultsLength(t *testing.T) {
	s, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, s, 2*DefaultLength)

	s, err = Generate(-3)
	require.NoError(t, err)
	assert.Len(t, s, 2*DefaultLength)
}

func TestGenerateUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 128; i++ {
		s, err := Generate(DefaultLength)
		require.NoError(t, err)
		require.False(t, seen[s], "salt repeated after %d draws", i)
		seen[s] = true
	}
}
