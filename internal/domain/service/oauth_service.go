package service

import (
	"context"

	"trove/internal/domain/entity"
)

// OAuthUser represents user information returned by an OAuth provider.
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string              // User's email address
	Name          string              // User's display name
	Provider      entity.ProviderType // The OAuth provider
	AvatarURL     string              // URL to user's profile picture
	EmailVerified bool                // Whether the email is verified by the provider
}

// OAuthService defines the interface for the federated login handshake.
type OAuthService interface {
	// BuildAuthorizationURL constructs the provider's authorization URL,
	// registering the state parameter for later CSRF validation.
	BuildAuthorizationURL(state string) string

	// GenerateState creates a cryptographically random state parameter.
	GenerateState() string

	// ValidateState checks a state parameter returned by the provider and
	// consumes it, so that a state can only be used once.
	ValidateState(state string) bool

	// ExchangeCode swaps an authorization code for a provider access token.
	ExchangeCode(ctx context.Context, code string) (accessToken string, err error)

	// FetchUser retrieves the provider's user record with an access token.
	FetchUser(ctx context.Context, accessToken string) (*OAuthUser, error)

	// VerifyIDToken verifies a provider-issued ID token directly, for clients
	// that run the sign-in flow themselves and post the resulting token.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)

	// Provider returns the OAuth provider type.
	Provider() entity.ProviderType
}
