// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"grove/internal/domain/service"
)

// sha256Hasher implements PasswordHasher as an unsalted SHA-256 hex digest.
// The digest is deterministic: the same plaintext always yields the same
// stored value, which keeps it compatible with digests produced before the
// bcrypt scheme existed. Two users with the same password share a digest, so
// prefer the bcrypt scheme for new deployments.
type sha256Hasher struct{}

// NewSHA256Hasher is the constructor for sha256Hasher.
func NewSHA256Hasher() service.PasswordHasher {
	return &sha256Hasher{}
}

// Hash returns the lowercase hex SHA-256 digest of the plaintext. It never
// fails; the empty string is treated as a valid, if weak, password.
func (h *sha256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))

	return hex.EncodeToString(sum[:]), nil
}

// Check recomputes the digest and compares it with exact string equality.
func (h *sha256Hasher) Check(password, digest string) bool {
	computed, _ := h.Hash(password)

	return computed == digest
}
