package impl

import (
	"context"
	"testing"

	domainerrors "grove/internal/domain/errors"
	"grove/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryService_ListProfilesInsertionOrder(t *testing.T) {
	fx := newServiceFixtures()
	ctx := context.Background()

	emails := []string{"c@x.com", "a@x.com", "b@x.com"}
	for _, email := range emails {
		_, err := fx.accounts.Signup(ctx, validSignupInput(email))
		require.NoError(t, err)
	}

	profiles, err := fx.directory.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	for i, email := range emails {
		assert.Equal(t, email, profiles[i].Email)
	}
}

func TestDirectoryService_GetProfile(t *testing.T) {
	fx := newServiceFixtures()
	ctx := context.Background()

	created, err := fx.accounts.Signup(ctx, validSignupInput("a@x.com"))
	require.NoError(t, err)

	profile, err := fx.directory.GetProfile(ctx, created.Profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", profile.Email)

	_, err = fx.directory.GetProfile(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestDirectoryService_FindByEmailExactOnly(t *testing.T) {
	fx := newServiceFixtures()
	ctx := context.Background()

	_, err := fx.accounts.Signup(ctx, validSignupInput("alice@example.com"))
	require.NoError(t, err)

	found, err := fx.directory.FindByEmail(ctx, "Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", found.Email)

	// No partial matching.
	_, err = fx.directory.FindByEmail(ctx, "alice@example")
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestFilterProfiles(t *testing.T) {
	fx := newServiceFixtures()
	ctx := context.Background()

	_, err := fx.accounts.Signup(ctx, validSignupInput("a@x.com"))
	require.NoError(t, err)

	doctor := validSignupInput("b@x.com")
	doctor.Name = "Priya Patel"
	doctor.Batch = "2012"
	doctor.Major = "Medicine"
	doctor.Job = "Pediatrician"
	doctor.Interests = []string{"Healthcare", "Painting"}
	_, err = fx.accounts.Signup(ctx, doctor)
	require.NoError(t, err)

	profiles, err := fx.directory.ListProfiles(ctx)
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		batch string
		want  int
	}{
		{"no filters", "", "", 2},
		{"query on job", "pediatrician", "", 1},
		{"query on interest", "healthcare", "", 1},
		{"query case-insensitive", "PRIYA", "", 1},
		{"batch filter", "", "2012", 1},
		{"batch and query", "engineer", "2012", 0},
		{"no match", "astronaut", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.FilterProfiles(profiles, tt.query, tt.batch)
			assert.Len(t, got, tt.want)
		})
	}
}
