package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the private authentication record paired one-to-one with a
// Profile. It stores only the password digest, never the plaintext.
type Credential struct {
	ID             uuid.UUID // The unique ID for this credential record itself.
	Email          string    // Mirrors the profile's email at creation time. Not kept in sync (profile email is immutable anyway).
	PasswordDigest string    // Output of the password hasher. Never exposed outside the store.
	ProfileID      uuid.UUID // Back-reference to the owning Profile.
	CreatedAt      time.Time // Timestamp of when this credential was created.
}
