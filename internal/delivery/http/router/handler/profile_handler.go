package handler

import (
	"log/slog"
	"net/http"

	"grove/internal/delivery/http/middleware"
	"grove/internal/delivery/http/response"
	"grove/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler serves the authenticated member's own profile.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// GetMe returns the profile of the logged-in member.
func (h *ProfileHandler) GetMe(c echo.Context) error {
	profileID, ok := authenticatedProfileID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing session")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileView(profile), "Profile retrieved successfully")
}

// UpdateMe applies a partial edit to the logged-in member's profile.
// Absent fields are left untouched.
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	profileID, ok := authenticatedProfileID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing session")
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}
	if input == nil {
		// An empty body binds to nil; treat it as an empty merge.
		input = &usecase.UpdateProfileInput{}
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), profileID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileView(profile), "Profile updated successfully")
}

func authenticatedProfileID(c echo.Context) (uuid.UUID, bool) {
	profileID, ok := c.Get(middleware.ProfileIDKey).(uuid.UUID)

	return profileID, ok
}
