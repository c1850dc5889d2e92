package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"grove/internal/domain/entity"
	domainerrors "grove/internal/domain/errors"
	"grove/internal/domain/repository"
	"grove/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetProfile retrieves one member's profile by ID.
func (srv *profileService) GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error) {
	srv.logger.Debug("Getting profile", "profileID", profileID)

	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		foundProfile, err := profileRepo.FindByID(ctx, profileID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("profile lookup failed")
			}

			return errors.Wrap(err, "failed to find profile")
		}
		profile = foundProfile

		return nil
	})

	if err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateProfile merges the supplied fields into the existing profile and
// bumps UpdatedAt. Identifier, email and CreatedAt are untouched by
// construction: the input carries no such fields. The lookup and write happen
// in one transaction, so an unknown ID leaves the store unchanged.
func (srv *profileService) UpdateProfile(ctx context.Context, profileID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.logger.Info("Updating profile", "profileID", profileID)

	var updated *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		// 1. Find the profile.
		profile, err := profileRepo.FindByID(ctx, profileID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("profile update failed")
			}

			return errors.Wrap(err, "failed to find profile")
		}

		// 2. Merge only the supplied fields.
		applyProfileUpdate(profile, input)
		profile.UpdatedAt = time.Now()

		// 3. Persist in place.
		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		updated = profile

		return nil
	})

	if err != nil {
		srv.logger.Warn("Profile update failed", "profileID", profileID, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("Profile updated", "profileID", profileID)

	return updated, nil
}

// applyProfileUpdate copies every non-nil input field onto the profile,
// trimmed the same way signup trims. A nil input is an empty merge.
func applyProfileUpdate(profile *entity.Profile, input *usecase.UpdateProfileInput) {
	if input == nil {
		return
	}

	if input.Name != nil {
		profile.Name = strings.TrimSpace(*input.Name)
	}
	if input.Batch != nil {
		profile.Batch = strings.TrimSpace(*input.Batch)
	}
	if input.Education != nil {
		profile.Education = strings.TrimSpace(*input.Education)
	}
	if input.Major != nil {
		profile.Major = strings.TrimSpace(*input.Major)
	}
	if input.Job != nil {
		profile.Job = strings.TrimSpace(*input.Job)
	}
	if input.Company != nil {
		profile.Company = strings.TrimSpace(*input.Company)
	}
	if input.Location != nil {
		profile.Location = strings.TrimSpace(*input.Location)
	}
	if input.Phone != nil {
		profile.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Linkedin != nil {
		profile.Linkedin = strings.TrimSpace(*input.Linkedin)
	}
	if input.Image != nil {
		profile.Image = strings.TrimSpace(*input.Image)
	}
	if input.Interests != nil {
		profile.Interests = normalizeTags(*input.Interests)
	}
	if input.Committees != nil {
		profile.Committees = normalizeTags(*input.Committees)
	}
	if input.Bio != nil {
		profile.Bio = strings.TrimSpace(*input.Bio)
	}
}
