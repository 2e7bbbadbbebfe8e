// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"trove/config"
	"trove/internal/domain/entity"
	domainerrors "trove/internal/domain/errors"
	"trove/internal/domain/service"
	"trove/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	issuer        string
	audience      string
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	svc := &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     24 * time.Hour,
		refreshTTL:    7 * 24 * time.Hour,
		issuer:        "travel-trove-api",
		audience:      "travel-trove-client",
	}
	if cfg.JWT != nil {
		if cfg.JWT.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.JWT.AccessTokenTTL
		}
		if cfg.JWT.RefreshTokenTTL > 0 {
			svc.refreshTTL = cfg.JWT.RefreshTokenTTL
		}
		if cfg.JWT.Issuer != "" {
			svc.issuer = cfg.JWT.Issuer
		}
		if cfg.JWT.Audience != "" {
			svc.audience = cfg.JWT.Audience
		}
	}

	return svc, nil
}

// Issue creates a signed access token for the user.
func (s *jwtService) Issue(user *entity.User) (string, error) {
	return s.generateToken(user, s.accessTTL, s.accessSecret)
}

// IssueRefresh creates a longer-lived refresh token for the user.
func (s *jwtService) IssueRefresh(user *entity.User) (string, error) {
	return s.generateToken(user, s.refreshTTL, s.refreshSecret)
}

// Verify checks a token's signature and time bounds and returns its claims.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domainerrors.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, domainerrors.ErrTokenNotActive
		default:
			return nil, domainerrors.ErrTokenInvalid
		}
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}
	claims.UserID = userID

	return claims, nil
}

// ExtractFromHeader pulls the raw token out of an Authorization header.
// Only the exact two-part "Bearer <token>" shape is accepted.
func (s *jwtService) ExtractFromHeader(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

// AccessTokenDuration returns the configured access token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(user *entity.User, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}
