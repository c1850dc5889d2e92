package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	digest, err := hasher.Hash("secret1")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "secret1", digest)

	assert.True(t, hasher.Check("secret1", digest))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	digest, err := hasher.Hash("secret1")
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check("secret1", digest))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong", digest))

	// Test empty password
	assert.False(t, hasher.Check("", digest))

	// Test with invalid hash
	assert.False(t, hasher.Check("secret1", "invalid_hash"))
}

func TestBcryptHasher_SaltedDigestsDiffer(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("secret1")
	assert.NoError(t, err)
	second, err := hasher.Hash("secret1")
	assert.NoError(t, err)

	// Per-credential salt: the same password never yields the same digest.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret1", first))
	assert.True(t, hasher.Check("secret1", second))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	digest, err := hasher.Hash("secret1")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(digest))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)

	assert.True(t, hasher.Check("secret1", digest))
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99)

	digest, err := hasher.Hash("secret1")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
