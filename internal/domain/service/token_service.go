// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"trove/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a bearer token.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed access token for the user (default 24h lifetime).
	Issue(user *entity.User) (string, error)

	// IssueRefresh creates a longer-lived refresh token for the user (7d lifetime).
	IssueRefresh(user *entity.User) (string, error)

	// Verify checks a token's signature and time bounds and returns its claims.
	// Failures resolve to the authentication AppError values (expired, not
	// active yet, or structurally invalid).
	Verify(tokenString string) (*Claims, error)

	// ExtractFromHeader pulls the raw token out of an Authorization header.
	// Only the exact two-part "Bearer <token>" shape is accepted; any other
	// shape returns ok=false, meaning "no credential supplied", not an error.
	ExtractFromHeader(header string) (token string, ok bool)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
