package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"grove/config"
	"grove/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The token is the opaque session marker the delivery layer puts in the
// session cookie; it references the profile ID and nothing else.
type jwtService struct {
	secret     string        // Secret key for signing session tokens.
	sessionTTL time.Duration // Validity window of a session, 7 days by default.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret:     cfg.Session.Secret,
		sessionTTL: cfg.Session.TTL,
	}, nil
}

// GenerateSessionToken creates a signed session token referencing a profile ID.
func (s *jwtService) GenerateSessionToken(profileID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  profileID.String(),             // Subject (which profile the session belongs to)
		"iat":  now.Unix(),                     // Issued At
		"exp":  now.Add(s.sessionTTL).Unix(),   // Expiration Time
		"type": "session",                      // Only session tokens are issued here
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateSessionToken checks the token signature and expiry and returns the
// profile ID it references.
func (s *jwtService) ValidateSessionToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errors.New("invalid or expired session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("failed to parse session token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("profile ID missing from session token")
	}

	profileID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("invalid profile ID in session token")
	}

	return profileID, nil
}

// SessionDuration returns the configured validity window for session tokens.
func (s *jwtService) SessionDuration() time.Duration {
	return s.sessionTTL
}
