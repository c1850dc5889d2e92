package usecase

import (
	"context"
	"strings"

	"grove/internal/domain/entity"

	"github.com/google/uuid"
)

// DirectoryUsecase defines the read side of the member directory ("the Grove").
type DirectoryUsecase interface {
	// ListProfiles returns every profile in insertion order.
	ListProfiles(ctx context.Context) ([]*entity.Profile, error)

	// GetProfile returns a single profile by ID.
	GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error)

	// FindByEmail returns a single profile by exact (normalized) email.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
}

// FilterProfiles is the directory search: a pure, stateless projection over
// the listing. A profile matches when the query appears (case-insensitive) in
// its name, job, major, location or interests, and when the batch filter, if
// set, equals its batch.
func FilterProfiles(profiles []*entity.Profile, query, batch string) []*entity.Profile {
	query = strings.ToLower(strings.TrimSpace(query))
	batch = strings.TrimSpace(batch)

	filtered := make([]*entity.Profile, 0, len(profiles))
	for _, profile := range profiles {
		if batch != "" && profile.Batch != batch {
			continue
		}
		if query != "" && !profileMatches(profile, query) {
			continue
		}
		filtered = append(filtered, profile)
	}

	return filtered
}

func profileMatches(profile *entity.Profile, query string) bool {
	for _, field := range []string{profile.Name, profile.Job, profile.Major, profile.Location} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	for _, interest := range profile.Interests {
		if strings.Contains(strings.ToLower(interest), query) {
			return true
		}
	}

	return false
}
