// Package memory contains the in-memory implementation of the persistence
// layer. It is the reference backend: a single process-local collection pair
// with no persistence across restarts.
package memory

import (
	"context"
	"strings"
	"sync"

	"grove/internal/domain/entity"
	"grove/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store is the sole owner of the profile and credential collections.
// It is constructed once per process and handed to every caller; no package
// state. All access goes through Execute, which serializes transactions with
// a single mutex so a uniqueness-check-then-insert sequence is atomic even
// under concurrent signups.
type Store struct {
	mu          sync.Mutex
	profiles    map[uuid.UUID]*entity.Profile
	order       []uuid.UUID // profile insertion order, for ListAll
	credentials map[string]*entity.Credential // keyed by normalized email
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{
		profiles:    make(map[uuid.UUID]*entity.Profile),
		credentials: make(map[string]*entity.Credential),
	}
}

// NewTransactionManager exposes the store as a repository.TransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return store
}

// Execute runs fn under the store lock against a staged copy of the
// collections. The staged state replaces the live state only when fn returns
// nil, so a failing transaction leaves the collections untouched.
func (s *Store) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txState{
		profiles:    make(map[uuid.UUID]*entity.Profile, len(s.profiles)),
		order:       append([]uuid.UUID(nil), s.order...),
		credentials: make(map[string]*entity.Credential, len(s.credentials)),
	}
	for id, profile := range s.profiles {
		tx.profiles[id] = profile
	}
	for email, credential := range s.credentials {
		tx.credentials[email] = credential
	}

	if err := fn(tx); err != nil {
		return err
	}

	s.profiles = tx.profiles
	s.order = tx.order
	s.credentials = tx.credentials

	return nil
}

// txState is the staged collection pair one transaction operates on.
// It doubles as the RepositoryFactory for that transaction.
type txState struct {
	profiles    map[uuid.UUID]*entity.Profile
	order       []uuid.UUID
	credentials map[string]*entity.Credential
}

// ProfileRepo returns a ProfileRepository bound to this transaction.
func (tx *txState) ProfileRepo() repository.ProfileRepository {
	return &profileRepository{tx: tx}
}

// CredentialRepo returns a CredentialRepository bound to this transaction.
func (tx *txState) CredentialRepo() repository.CredentialRepository {
	return &credentialRepository{tx: tx}
}

// profileRepository implements repository.ProfileRepository on the staged state.
type profileRepository struct {
	tx *txState
}

func (repo *profileRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, ok := repo.tx.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return cloneProfile(profile), nil
}

func (repo *profileRepository) FindByEmail(_ context.Context, email string) (*entity.Profile, error) {
	// Exact lookup over the normalized email; no partial matching.
	for _, id := range repo.tx.order {
		if repo.tx.profiles[id].Email == email {
			return cloneProfile(repo.tx.profiles[id]), nil
		}
	}

	return nil, repository.ErrProfileNotFound
}

func (repo *profileRepository) Create(_ context.Context, profile *entity.Profile) error {
	if _, exists := repo.tx.profiles[profile.ID]; exists {
		return errors.Errorf("profile id %s already exists", profile.ID)
	}

	repo.tx.profiles[profile.ID] = cloneProfile(profile)
	repo.tx.order = append(repo.tx.order, profile.ID)

	return nil
}

func (repo *profileRepository) Update(_ context.Context, profile *entity.Profile) error {
	if _, ok := repo.tx.profiles[profile.ID]; !ok {
		return repository.ErrProfileNotFound
	}

	// In-place replacement; insertion order is unaffected by updates.
	repo.tx.profiles[profile.ID] = cloneProfile(profile)

	return nil
}

func (repo *profileRepository) ListAll(_ context.Context) ([]*entity.Profile, error) {
	profiles := make([]*entity.Profile, 0, len(repo.tx.order))
	for _, id := range repo.tx.order {
		profiles = append(profiles, cloneProfile(repo.tx.profiles[id]))
	}

	return profiles, nil
}

// credentialRepository implements repository.CredentialRepository on the staged state.
type credentialRepository struct {
	tx *txState
}

// Lookup and insert both lowercase the map key, so the repository stays
// consistent even for a caller that skips the usecase normalization.
func (repo *credentialRepository) FindByEmail(_ context.Context, email string) (*entity.Credential, error) {
	credential, ok := repo.tx.credentials[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrCredentialNotFound
	}

	clone := *credential

	return &clone, nil
}

func (repo *credentialRepository) Create(_ context.Context, credential *entity.Credential) error {
	key := strings.ToLower(credential.Email)
	if _, exists := repo.tx.credentials[key]; exists {
		return errors.Errorf("credential for %s already exists", credential.Email)
	}

	clone := *credential
	repo.tx.credentials[key] = &clone

	return nil
}

// cloneProfile copies a profile, including its tag slices, so callers can
// never mutate the stored collections through a returned pointer.
func cloneProfile(profile *entity.Profile) *entity.Profile {
	clone := *profile
	clone.Interests = make([]string, len(profile.Interests))
	copy(clone.Interests, profile.Interests)
	clone.Committees = make([]string, len(profile.Committees))
	copy(clone.Committees, profile.Committees)

	return &clone
}
