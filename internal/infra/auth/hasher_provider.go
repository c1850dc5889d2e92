package auth

import (
	"grove/config"
	"grove/internal/domain/service"

	"github.com/pkg/errors"
)

// NewPasswordHasher selects the configured digest scheme.
// "sha256" stays bit-compatible with existing stored digests; "bcrypt" is the
// hardened scheme for fresh deployments. The two are not interchangeable for
// digests already in storage.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	switch cfg.Auth.HasherScheme {
	case "sha256":
		return NewSHA256Hasher(), nil
	case "bcrypt":
		return NewBcryptHasherWithCost(cfg.Auth.BcryptCost), nil
	default:
		return nil, errors.Errorf("unknown hasher scheme: %s", cfg.Auth.HasherScheme)
	}
}
