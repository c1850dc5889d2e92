// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying scheme (SHA-256 digest or bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a stored digest from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored digest. The match is
	// exact; a digest never partially matches.
	Check(password, digest string) bool
}
