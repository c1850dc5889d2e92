package repository

import (
	"context"
	"errors"

	"grove/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no credential exists for an email.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the operations for credential persistence.
// Credentials are created together with their profile and never mutated or
// deleted in this scope; there is deliberately no Update or Delete here.
type CredentialRepository interface {
	// FindByEmail retrieves the credential for a (normalized) email address.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// Create persists a new credential entity to the storage.
	Create(ctx context.Context, credential *entity.Credential) error
}
