// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"trove/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleTokenInput carries a Google-issued ID token from a client that ran
// the sign-in flow itself.
type GoogleTokenInput struct {
	IDToken string `json:"idToken" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user and their tokens.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a local account and signs the user in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login authenticates a local account by email and password.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Profile returns the user record for an authenticated identity.
	Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// Refresh re-issues tokens for an already authenticated identity.
	Refresh(ctx context.Context, userID uuid.UUID) (*AuthOutput, error)

	// GoogleAuthURL starts the server-side OAuth flow and returns the
	// provider URL to redirect the browser to.
	GoogleAuthURL(ctx context.Context) (string, error)

	// GoogleCallback completes the server-side OAuth flow: it validates the
	// state, exchanges the code, fetches the provider's user record, and
	// creates or links the local account.
	GoogleCallback(ctx context.Context, state, code string) (*AuthOutput, error)

	// GoogleTokenLogin signs a user in from a client-verified Google ID token.
	GoogleTokenLogin(ctx context.Context, input *GoogleTokenInput) (*AuthOutput, error)
}
