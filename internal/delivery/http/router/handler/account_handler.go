package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"grove/config"
	"grove/internal/delivery/http/response"
	"grove/internal/domain/service"
	"grove/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// signupRequest is the wire shape of a signup. Interests and committees
// arrive as comma-separated text, matching the registration form.
type signupRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Batch      string `json:"batch"`
	Education  string `json:"education"`
	Major      string `json:"major"`
	Job        string `json:"job"`
	Bio        string `json:"bio"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	Phone      string `json:"phone"`
	Linkedin   string `json:"linkedin"`
	Image      string `json:"image"`
	Interests  string `json:"interests"`
	Committees string `json:"committees"`
}

// AccountHandler holds dependencies for signup, login and logout.
type AccountHandler struct {
	uc       usecase.AccountUsecase
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

// Signup handles the member registration request.
func (h *AccountHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	input := &usecase.SignupInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Batch:      req.Batch,
		Education:  req.Education,
		Major:      req.Major,
		Job:        req.Job,
		Bio:        req.Bio,
		Company:    req.Company,
		Location:   req.Location,
		Phone:      req.Phone,
		Linkedin:   req.Linkedin,
		Image:      req.Image,
		Interests:  splitTags(req.Interests),
		Committees: splitTags(req.Committees),
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Signup(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProfileView(output.Profile), "Signup successful")
}

// Login handles the member login request and sets the session cookie.
func (h *AccountHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.SessionToken, h.tokenSvc.SessionDuration()))

	return response.Success(c, http.StatusOK, map[string]any{
		"profile": newProfileView(output.Profile),
		"token":   output.SessionToken,
	}, "Login successful")
}

// Logout clears the session cookie. The token itself simply expires.
func (h *AccountHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -time.Hour))

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

func (h *AccountHandler) sessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   !h.cfg.IsLocal(),
		SameSite: http.SameSiteLaxMode,
	}
}

// splitTags turns comma-separated form text into an ordered list of trimmed
// non-empty tags.
func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}
