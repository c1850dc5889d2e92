// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"grove/internal/domain/entity"
	domainerrors "grove/internal/domain/errors"
	"grove/internal/domain/repository"
	"grove/internal/domain/service"
	"grove/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Signup orchestrates the complete member registration process.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.logger.Info("Starting member signup", "email", input.Email)

	if err := validateSignupInput(input); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during signup", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during signup")
	}

	var createdProfile *entity.Profile

	// Execute the entire creation process within a single transaction so the
	// uniqueness check and both inserts are atomic.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()
		credentialRepo := repoFactory.CredentialRepo()

		// 1. Check that no profile with this email already exists.
		_, err := profileRepo.FindByEmail(ctx, email)
		if err == nil {
			// If no error, a profile was found: the email is taken.
			return domainerrors.ErrDuplicateEmail.WrapMessage("member signup failed")
		}
		// We expect a 'not found' error. If it's a different error, something went wrong.
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to find profile by email")
		}

		// 2. Create the Profile entity.
		now := time.Now()
		newProfile := &entity.Profile{
			ID:         uuid.New(),
			Name:       strings.TrimSpace(input.Name),
			Email:      email,
			Batch:      strings.TrimSpace(input.Batch),
			Education:  strings.TrimSpace(input.Education),
			Major:      strings.TrimSpace(input.Major),
			Job:        strings.TrimSpace(input.Job),
			Company:    strings.TrimSpace(input.Company),
			Location:   strings.TrimSpace(input.Location),
			Phone:      strings.TrimSpace(input.Phone),
			Linkedin:   strings.TrimSpace(input.Linkedin),
			Image:      strings.TrimSpace(input.Image),
			Interests:  normalizeTags(input.Interests),
			Committees: normalizeTags(input.Committees),
			Bio:        strings.TrimSpace(input.Bio),
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		if err := profileRepo.Create(ctx, newProfile); err != nil {
			return errors.WithStack(err)
		}

		// 3. Create the Credential entity paired with the profile.
		newCredential := &entity.Credential{
			ID:             uuid.New(),
			Email:          email,
			PasswordDigest: hashedPassword,
			ProfileID:      newProfile.ID,
			CreatedAt:      now,
		}
		if err := credentialRepo.Create(ctx, newCredential); err != nil {
			return errors.WithStack(err)
		}
		createdProfile = newProfile

		return nil
	})

	if err != nil {
		srv.logger.Warn("Member signup failed", "email", email, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("Member signed up successfully", "profileID", createdProfile.ID)

	return &usecase.SignupOutput{Profile: createdProfile}, nil
}

// Login orchestrates the member login process. Unknown email and wrong
// password both surface as ErrInvalidCredentials; only the log line, which
// never contains the plaintext, records the internal reason.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting member login", "email", input.Email)

	email := normalizeEmail(input.Email)

	var loggedInProfile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.CredentialRepo()
		profileRepo := repoFactory.ProfileRepo()

		// 1. Find the credential for this email.
		credential, err := credentialRepo.FindByEmail(ctx, email)
		if err != nil {
			// Includes ErrCredentialNotFound; reported uniformly as invalid credentials.
			srv.logger.Debug("Login failed: no credential for email", "email", email)

			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		// 2. Check the password digest.
		if !srv.hasher.Check(input.Password, credential.PasswordDigest) {
			srv.logger.Debug("Login failed: digest mismatch", "email", email)

			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		// 3. Fetch the profile the credential belongs to.
		profile, err := profileRepo.FindByID(ctx, credential.ProfileID)
		if err != nil {
			return errors.Wrap(err, "failed to find profile for credential")
		}
		loggedInProfile = profile

		return nil
	})

	if err != nil {
		srv.logger.Warn("Login failed", "email", email)

		return nil, err
	}

	// 4. Establish the session: a token referencing only the profile ID.
	sessionToken, err := srv.tokenService.GenerateSessionToken(loggedInProfile.ID)
	if err != nil {
		srv.logger.Error("Failed to generate session token", "error", err)

		return nil, errors.Wrap(err, "failed to generate session token")
	}
	srv.logger.Debug("Member logged in successfully", "profileID", loggedInProfile.ID)

	return &usecase.LoginOutput{
		SessionToken: sessionToken,
		Profile:      loggedInProfile,
	}, nil
}

// validateSignupInput enforces the signup preconditions: every required field
// and the password must be non-empty after trimming.
func validateSignupInput(input *usecase.SignupInput) error {
	required := []struct {
		field string
		value string
	}{
		{"name", input.Name},
		{"email", input.Email},
		{"password", input.Password},
		{"batch", input.Batch},
		{"education", input.Education},
		{"major", input.Major},
		{"job", input.Job},
		{"bio", input.Bio},
	}
	for _, item := range required {
		if strings.TrimSpace(item.value) == "" {
			return domainerrors.ErrValidationFailed.WithDetails(item.field + " is required")
		}
	}

	return nil
}

// normalizeEmail fixes the email policy for the whole store: uniqueness,
// lookup and authentication all compare trimmed, lowercased emails.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeTags trims each tag and drops empties, preserving order. A nil
// input becomes an empty, non-nil list.
func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		normalized = append(normalized, trimmed)
	}

	return normalized
}
