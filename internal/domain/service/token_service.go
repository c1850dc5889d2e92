package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating session tokens.
// The profile store itself only returns a record; this service is how the
// calling layer marks a session authenticated.
type TokenService interface {
	// GenerateSessionToken creates an opaque session token referencing a profile ID.
	GenerateSessionToken(profileID uuid.UUID) (string, error)

	// ValidateSessionToken checks a session token and returns the profile ID it references.
	ValidateSessionToken(token string) (uuid.UUID, error)

	// SessionDuration returns the configured validity window of a session token.
	SessionDuration() time.Duration
}
