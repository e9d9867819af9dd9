package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edu/hashlab/internal/hashes"
	"edu/hashlab/internal/salt"
)

func TestHashDeterminism(t *testing.T) {
	slt, err := salt.Generate(salt.DefaultLength)
	require.NoError(t, err)

	for _, algo := range hashes.List() {
		a, err := Hash("hunter2", algo, slt)
		require.NoError(t, err)
		b, err := Hash("hunter2", algo, slt)
		require.NoError(t, err)
		assert.Equal(t, a, b, algo)
	}
}

func TestHashAppendsSaltAfterPassword(t *testing.T) {
	// Hashing ("ab" with salt "cd") must digest the bytes of "abcd",
	// password first. The salt participates as its hex text.
	want, err := hashes.Digest("sha256", []byte("abcd"))
	require.NoError(t, err)

	got, err := Hash("ab", "sha256", "cd")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHashSaltSensitivity(t *testing.T) {
	s1, err := salt.Generate(salt.DefaultLength)
	require.NoError(t, err)
	s2, err := salt.Generate(salt.DefaultLength)
	require.NoError(t, err)
	require.NotEqual(t, s1, s2)

	for _, algo := range hashes.List() {
		d1, err := Hash("hunter2", algo, s1)
		require.NoError(t, err)
		d2, err := Hash("hunter2", algo, s2)
		require.NoError(t, err)
		assert.NotEqual(t, d1, d2, algo)
	}
}

func TestHashUnknownAlgorithm(t *testing.T) {
	_, err := Hash("x", "md5", "")
	require.ErrorIs(t, err, hashes.ErrUnknownAlgorithm)
}

func TestEnrollAndLookup(t *testing.T) {
	st := NewStore()
	enrolled, err := st.Enroll("alice", "hunter2", "sha256", false)
	require.NoError(t, err)

	got, err := st.Lookup("alice")
	require.NoError(t, err)
	assert.Equal(t, enrolled, got)
	assert.Equal(t, "alice", got.UserID)
	assert.Equal(t, "sha256", got.Algorithm)
	assert.Empty(t, got.Salt)

	// The stored digest must be reproducible from the enrollment inputs.
	want, err := Hash("hunter2", "sha256", "")
	require.NoError(t, err)
	assert.Equal(t, want, got.Digest)
}

func TestLookupNotFound(t *testing.T) {
	st := NewStore()
	_, err := st.Lookup("nobody")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEnrollOverwrites(t *testing.T) {
	st := NewStore()
	_, err := st.Enroll("alice", "hunter2", "sha256", false)
	require.NoError(t, err)
	second, err := st.Enroll("alice", "hunter2", "sha512", false)
	require.NoError(t, err)

	got, err := st.Lookup("alice")
	require.NoError(t, err)
	assert.Equal(t, second, got)
	assert.Equal(t, "sha512", got.Algorithm)
	assert.Equal(t, 1, st.Len())
}

func TestUnsaltedDeterminismExploit(t *testing.T) {
	// Two users with the same password and no salt end up with identical
	// stored digests. One precomputed table covers both.
	st := NewStore()
	a, err := st.Enroll("user1", "123456", "sha256", false)
	require.NoError(t, err)
	b, err := st.Enroll("user2", "123456", "sha256", false)
	require.NoError(t, err)
	assert.Equal(t, a.Digest, b.Digest)
}

func TestSaltedEnrollmentsDiverge(t *testing.T) {
	st := NewStore()
	a, err := st.Enroll("user1", "123456", "sha3-512", true)
	require.NoError(t, err)
	b, err := st.Enroll("user2", "123456", "sha3-512", true)
	require.NoError(t, err)

	assert.NotEmpty(t, a.Salt)
	assert.NotEmpty(t, b.Salt)
	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Digest, b.Digest)
}

func TestEnrollUnknownAlgorithm(t *testing.T) {
	st := NewStore()
	_, err := st.Enroll("alice", "pw", "ntlm", true)
	require.ErrorIs(t, err, hashes.ErrUnknownAlgorithm)
	assert.Equal(t, 0, st.Len())
}
