// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"grove/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new member.
// Interests and committees arrive already parsed: the caller derives ordered
// lists of trimmed non-empty tags from its comma-separated form fields.
type SignupInput struct {
	Name       string   `json:"name" validate:"required"`
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"required"`
	Batch      string   `json:"batch" validate:"required"`
	Education  string   `json:"education" validate:"required"`
	Major      string   `json:"major" validate:"required"`
	Job        string   `json:"job" validate:"required"`
	Bio        string   `json:"bio" validate:"required"`
	Company    string   `json:"company"`
	Location   string   `json:"location"`
	Phone      string   `json:"phone"`
	Linkedin   string   `json:"linkedin"`
	Image      string   `json:"image"`
	Interests  []string `json:"interests"`
	Committees []string `json:"committees"`
}

// LoginInput defines the data required for a member to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// SignupOutput returns the newly created profile. The credential digest is
// never part of any output.
type SignupOutput struct {
	Profile *entity.Profile
}

// LoginOutput returns the session token and profile after a successful login.
type LoginOutput struct {
	SessionToken string
	Profile      *entity.Profile
}

// AccountUsecase defines the interface for signup and login operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
