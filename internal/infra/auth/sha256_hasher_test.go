package auth

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher_Hash(t *testing.T) {
	hasher := NewSHA256Hasher()

	digest, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "secret1", digest)

	// Deterministic: the same input always yields the same digest.
	again, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.Equal(t, digest, again)
}

func TestSHA256Hasher_KnownDigest(t *testing.T) {
	hasher := NewSHA256Hasher()

	// SHA-256("password"), the digest format already present in storage.
	digest, err := hasher.Hash("password")
	require.NoError(t, err)
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", digest)
}

func TestSHA256Hasher_Check(t *testing.T) {
	hasher := NewSHA256Hasher()

	digest, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.True(t, hasher.Check("secret1", digest))
	assert.False(t, hasher.Check("wrong", digest))

	// No partial or prefix match.
	assert.False(t, hasher.Check("secret1", digest[:32]))
	assert.False(t, hasher.Check("secret1", digest+"00"))
}

func TestSHA256Hasher_EmptyPassword(t *testing.T) {
	hasher := NewSHA256Hasher()

	// The empty string is a valid, if weak, password.
	digest, err := hasher.Hash("")
	require.NoError(t, err)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", digest)
	assert.True(t, hasher.Check("", digest))
	assert.False(t, hasher.Check("x", digest))
}

func TestSHA256Hasher_RoundTripRandomized(t *testing.T) {
	hasher := NewSHA256Hasher()

	previous := make(map[string]string)
	for i := 0; i < 100; i++ {
		buf := make([]byte, 1+i%32)
		_, err := rand.Read(buf)
		require.NoError(t, err)
		password := hex.EncodeToString(buf)

		digest, err := hasher.Hash(password)
		require.NoError(t, err)
		assert.True(t, hasher.Check(password, digest), "round-trip failed for %q", password)

		// Digests of distinct inputs never verify against each other.
		for otherPassword, otherDigest := range previous {
			if otherPassword == password {
				continue
			}
			assert.False(t, hasher.Check(password, otherDigest))
			assert.NotEqual(t, digest, otherDigest)
		}
		previous[password] = digest
	}
}
