package impl

import (
	"io"
	"log/slog"
	"time"

	"grove/internal/domain/repository"
	"grove/internal/domain/service"
	"grove/internal/infra/auth"
	"grove/internal/infra/persistence/memory"
	"grove/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubTokenService is a minimal TokenService for service tests; token
// contents are exercised in the jwt service's own tests.
type stubTokenService struct{}

func (stubTokenService) GenerateSessionToken(profileID uuid.UUID) (string, error) {
	return "session:" + profileID.String(), nil
}

func (stubTokenService) ValidateSessionToken(token string) (uuid.UUID, error) {
	return uuid.Parse(token[len("session:"):])
}

func (stubTokenService) SessionDuration() time.Duration {
	return 7 * 24 * time.Hour
}

type serviceFixtures struct {
	store     *memory.Store
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	accounts  usecase.AccountUsecase
	profiles  usecase.ProfileUsecase
	directory usecase.DirectoryUsecase
}

// newServiceFixtures wires the services against the real in-memory store,
// the sha256 hasher and a stub token service.
func newServiceFixtures() serviceFixtures {
	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	hasher := auth.NewSHA256Hasher()
	logger := newDiscardLogger()

	return serviceFixtures{
		store:     store,
		txManager: txManager,
		hasher:    hasher,
		accounts:  NewAccountService(txManager, hasher, stubTokenService{}, logger),
		profiles:  NewProfileService(txManager, logger),
		directory: NewDirectoryService(txManager, logger),
	}
}

func validSignupInput(email string) *usecase.SignupInput {
	return &usecase.SignupInput{
		Name:       "Arjun Sharma",
		Email:      email,
		Password:   "secret1",
		Batch:      "2010",
		Education:  "B.Tech, Computer Science, IIT Delhi",
		Major:      "Computer Science",
		Job:        "Software Engineer",
		Bio:        "After graduating in 2010, I pursued computer science.",
		Location:   "Bangalore, India",
		Interests:  []string{"Technology", "Mentorship"},
		Committees: []string{"Tech Committee"},
	}
}
