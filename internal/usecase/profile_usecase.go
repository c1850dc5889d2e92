package usecase

import (
	"context"

	"grove/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the partial data for a profile edit. Only the
// supplied (non-nil) fields are merged into the existing profile. Identifier,
// email and creation time are immutable and not part of this input at all.
type UpdateProfileInput struct {
	Name       *string   `json:"name,omitempty"`
	Batch      *string   `json:"batch,omitempty"`
	Education  *string   `json:"education,omitempty"`
	Major      *string   `json:"major,omitempty"`
	Job        *string   `json:"job,omitempty"`
	Company    *string   `json:"company,omitempty"`
	Location   *string   `json:"location,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Linkedin   *string   `json:"linkedin,omitempty"`
	Image      *string   `json:"image,omitempty"`
	Interests  *[]string `json:"interests,omitempty"`
	Committees *[]string `json:"committees,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
}

// ProfileUsecase defines the interface for reading and editing one's own profile.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, profileID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
}
