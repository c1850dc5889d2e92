package auth

import (
	"testing"
	"time"

	"grove/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{Session: &config.SessionConfig{Secret: "test-secret", TTL: ttl}}
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{Session: &config.SessionConfig{TTL: time.Hour}}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, 7*24*time.Hour)
	profileID := uuid.New()

	token, err := svc.GenerateSessionToken(profileID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, profileID, got)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	token, err := svc.GenerateSessionToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	token, err := svc.GenerateSessionToken(uuid.New())
	require.NoError(t, err)

	other := newTestTokenService(t, time.Hour)
	other.secret = "another-secret"

	_, err = other.ValidateSessionToken(token)
	assert.Error(t, err)

	_, err = svc.ValidateSessionToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_SessionDuration(t *testing.T) {
	svc := newTestTokenService(t, 7*24*time.Hour)
	assert.Equal(t, 7*24*time.Hour, svc.SessionDuration())
}
