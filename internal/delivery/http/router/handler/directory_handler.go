package handler

import (
	"log/slog"
	"net/http"

	"grove/internal/delivery/http/response"
	"grove/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DirectoryHandler serves the public member directory.
type DirectoryHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{uc: uc, logger: logger}
}

// ListProfiles returns the directory in insertion order, optionally narrowed
// by the q (free text) and batch query parameters.
func (h *DirectoryHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.uc.ListProfiles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	query := c.QueryParam("q")
	batch := c.QueryParam("batch")
	if query != "" || batch != "" {
		profiles = usecase.FilterProfiles(profiles, query, batch)
	}

	return response.Success(c, http.StatusOK, newProfileViews(profiles), "Profiles retrieved successfully")
}

// GetProfile returns one directory entry by ID.
func (h *DirectoryHandler) GetProfile(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile ID")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileView(profile), "Profile retrieved successfully")
}
