package impl

import (
	"context"
	"log/slog"
	"strings"

	"grove/internal/domain/entity"
	domainerrors "grove/internal/domain/errors"
	"grove/internal/domain/repository"
	"grove/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.DirectoryUsecase {
	return &directoryService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListProfiles returns every profile in insertion order. Search and filtering
// are a pure projection over this list, done by the caller.
func (srv *directoryService) ListProfiles(ctx context.Context) ([]*entity.Profile, error) {
	var profiles []*entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listed, err := repoFactory.ProfileRepo().ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list profiles")
		}
		profiles = listed

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to list directory profiles", "error", err)

		return nil, err
	}

	return profiles, nil
}

// GetProfile returns a single profile by ID.
func (srv *directoryService) GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error) {
	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProfileRepo().FindByID(ctx, profileID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("directory lookup failed")
			}

			return errors.Wrap(err, "failed to find profile")
		}
		profile = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return profile, nil
}

// FindByEmail returns a single profile by exact email. The lookup uses the
// same normalization as signup and login, so case never matters.
func (srv *directoryService) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProfileRepo().FindByEmail(ctx, normalized)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("directory lookup failed")
			}

			return errors.Wrap(err, "failed to find profile by email")
		}
		profile = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return profile, nil
}
