package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"grove/internal/domain/entity"
	"grove/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(email string) *entity.Profile {
	now := time.Now()

	return &entity.Profile{
		ID:         uuid.New(),
		Name:       "Test Member",
		Email:      email,
		Batch:      "2010",
		Education:  "B.A.",
		Major:      "History",
		Job:        "Archivist",
		Interests:  []string{"Reading"},
		Committees: []string{},
		Bio:        "bio",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestStore_CreateAndFind(t *testing.T) {
	store := NewStore()
	profile := newProfile("a@x.com")

	err := store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.ProfileRepo().Create(context.Background(), profile)
	})
	require.NoError(t, err)

	err = store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		byID, err := factory.ProfileRepo().FindByID(context.Background(), profile.ID)
		require.NoError(t, err)
		assert.Equal(t, profile.Email, byID.Email)

		byEmail, err := factory.ProfileRepo().FindByEmail(context.Background(), "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, profile.ID, byEmail.ID)

		_, err = factory.ProfileRepo().FindByEmail(context.Background(), "missing@x.com")
		assert.ErrorIs(t, err, repository.ErrProfileNotFound)

		return nil
	})
	require.NoError(t, err)
}

func TestStore_FailedTransactionLeavesStateUntouched(t *testing.T) {
	store := NewStore()
	boom := errors.New("boom")

	err := store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		if err := factory.ProfileRepo().Create(context.Background(), newProfile("a@x.com")); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		profiles, err := factory.ProfileRepo().ListAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, profiles)

		return nil
	})
	require.NoError(t, err)
}

func TestStore_ListAllPreservesInsertionOrder(t *testing.T) {
	store := NewStore()
	emails := []string{"c@x.com", "a@x.com", "b@x.com"}

	for _, email := range emails {
		profile := newProfile(email)
		err := store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
			return factory.ProfileRepo().Create(context.Background(), profile)
		})
		require.NoError(t, err)
	}

	err := store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		profiles, err := factory.ProfileRepo().ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, profiles, 3)
		for i, email := range emails {
			assert.Equal(t, email, profiles[i].Email)
		}

		return nil
	})
	require.NoError(t, err)
}

func TestStore_UpdateUnknownProfile(t *testing.T) {
	store := NewStore()

	err := store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.ProfileRepo().Update(context.Background(), newProfile("a@x.com"))
	})
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestStore_ReturnedProfilesAreCopies(t *testing.T) {
	store := NewStore()
	profile := newProfile("a@x.com")

	err := store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.ProfileRepo().Create(context.Background(), profile)
	})
	require.NoError(t, err)

	// Mutating a returned profile must not leak into the store.
	err = store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		found, err := factory.ProfileRepo().FindByID(context.Background(), profile.ID)
		require.NoError(t, err)
		found.Name = "Mutated"
		found.Interests[0] = "Mutated"

		return nil
	})
	require.NoError(t, err)

	err = store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		found, err := factory.ProfileRepo().FindByID(context.Background(), profile.ID)
		require.NoError(t, err)
		assert.Equal(t, "Test Member", found.Name)
		assert.Equal(t, []string{"Reading"}, found.Interests)

		return nil
	})
	require.NoError(t, err)
}

func TestStore_Credentials(t *testing.T) {
	store := NewStore()
	profileID := uuid.New()

	err := store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.CredentialRepo().Create(context.Background(), &entity.Credential{
			ID:             uuid.New(),
			Email:          "a@x.com",
			PasswordDigest: "digest",
			ProfileID:      profileID,
			CreatedAt:      time.Now(),
		})
	})
	require.NoError(t, err)

	err = store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		credential, err := factory.CredentialRepo().FindByEmail(context.Background(), "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, profileID, credential.ProfileID)
		assert.Equal(t, "digest", credential.PasswordDigest)

		_, err = factory.CredentialRepo().FindByEmail(context.Background(), "missing@x.com")
		assert.ErrorIs(t, err, repository.ErrCredentialNotFound)

		return nil
	})
	require.NoError(t, err)
}

func TestStore_CredentialLookupIsCaseInsensitive(t *testing.T) {
	store := NewStore()

	err := store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.CredentialRepo().Create(context.Background(), &entity.Credential{
			ID:             uuid.New(),
			Email:          "Mixed@Case.com",
			PasswordDigest: "digest",
			ProfileID:      uuid.New(),
			CreatedAt:      time.Now(),
		})
	})
	require.NoError(t, err)

	// Insert and lookup share the same key normalization.
	err = store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		for _, email := range []string{"mixed@case.com", "Mixed@Case.com", "MIXED@CASE.COM"} {
			credential, err := factory.CredentialRepo().FindByEmail(context.Background(), email)
			require.NoError(t, err, email)
			assert.Equal(t, "digest", credential.PasswordDigest)
		}

		return nil
	})
	require.NoError(t, err)
}

func TestStore_ConcurrentExecuteIsSerialized(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
				_, err := factory.ProfileRepo().FindByEmail(context.Background(), "a@x.com")
				if errors.Is(err, repository.ErrProfileNotFound) {
					return factory.ProfileRepo().Create(context.Background(), newProfile("a@x.com"))
				}

				return errors.New("already exists")
			})
		}()
	}
	wg.Wait()

	err := store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		profiles, err := factory.ProfileRepo().ListAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, profiles, 1)

		return nil
	})
	require.NoError(t, err)
}

func TestStore_CancelledContext(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return nil
	})
	assert.Error(t, err)
}

func TestSeedDemoData(t *testing.T) {
	store := NewStore()

	require.NoError(t, SeedDemoData(store))
	// Seeding twice must not duplicate records.
	require.NoError(t, SeedDemoData(store))

	err := store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		profiles, err := factory.ProfileRepo().ListAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, profiles, 2)

		credential, err := factory.CredentialRepo().FindByEmail(context.Background(), "arjun.s@example.com")
		require.NoError(t, err)
		assert.Equal(t, sha256Password, credential.PasswordDigest)

		return nil
	})
	require.NoError(t, err)
}
