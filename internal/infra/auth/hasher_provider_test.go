package auth

import (
	"testing"

	"grove/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordHasher_SchemeSelection(t *testing.T) {
	sha, err := NewPasswordHasher(&config.Config{Auth: &config.AuthConfig{HasherScheme: "sha256"}})
	require.NoError(t, err)
	digest, err := sha.Hash("password")
	require.NoError(t, err)
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", digest)

	bc, err := NewPasswordHasher(&config.Config{Auth: &config.AuthConfig{HasherScheme: "bcrypt", BcryptCost: 4}})
	require.NoError(t, err)
	digest, err = bc.Hash("password")
	require.NoError(t, err)
	assert.True(t, bc.Check("password", digest))

	_, err = NewPasswordHasher(&config.Config{Auth: &config.AuthConfig{HasherScheme: "argon2"}})
	assert.Error(t, err)
}
