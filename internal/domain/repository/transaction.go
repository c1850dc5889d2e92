package repository

import "context"

// TransactionManager defines the interface for managing storage transactions.
// This allows the use case layer to make check-then-insert sequences atomic
// without depending on a specific backend like GORM or an in-memory mutex.
type TransactionManager interface {
	// Execute runs a function within a single transaction (or, for the
	// in-memory backend, under a single lock). If the function returns an
	// error, nothing the function did is visible afterwards. All repository
	// operations obtained from the factory share the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// ProfileRepo returns a ProfileRepository bound to the current transaction.
	ProfileRepo() ProfileRepository

	// CredentialRepo returns a CredentialRepository bound to the current transaction.
	CredentialRepo() CredentialRepository
}
