package google

import (
	"context"
	"net/url"
	"testing"

	"trove/config"
	"trove/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/idtoken"
)

func testConfig() *config.Config {
	return &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:     "test_client_id",
			ClientSecret: "test_secret",
			RedirectURI:  "http://localhost:8080/api/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
		},
	}
}

func TestOAuthService_BuildAuthorizationURL(t *testing.T) {
	service := NewOAuthService(testConfig())

	state := service.GenerateState()
	rawURL := service.BuildAuthorizationURL(state)

	parsed, err := url.Parse(rawURL)
	assert.NoError(t, err)
	assert.Equal(t, "accounts.google.com", parsed.Host)
	assert.Equal(t, "/o/oauth2/v2/auth", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "test_client_id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/api/auth/google/callback", query.Get("redirect_uri"))
	assert.Equal(t, "openid email profile", query.Get("scope"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, state, query.Get("state"))
}

func TestOAuthService_GenerateState(t *testing.T) {
	service := NewOAuthService(testConfig())

	first := service.GenerateState()
	second := service.GenerateState()

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}

func TestOAuthService_ValidateState(t *testing.T) {
	service := NewOAuthService(testConfig())

	state := service.GenerateState()
	service.BuildAuthorizationURL(state)

	// First use succeeds, replay fails.
	assert.True(t, service.ValidateState(state))
	assert.False(t, service.ValidateState(state))

	// Unknown state fails.
	assert.False(t, service.ValidateState("never-issued"))
}

func TestOAuthService_Provider(t *testing.T) {
	service := NewOAuthService(testConfig())
	assert.Equal(t, entity.ProviderTypeGoogle, service.Provider())
}

func TestOAuthService_VerifyIDToken(t *testing.T) {
	service := NewOAuthService(testConfig()).(*OAuthService)
	service.validateIDToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-id-token", token)
		assert.Equal(t, "test_client_id", audience)

		return &idtoken.Payload{
			Subject: "google-sub-123",
			Claims: map[string]any{
				"email":          "traveler@example.com",
				"name":           "Test Traveler",
				"picture":        "https://example.com/avatar.png",
				"email_verified": true,
			},
		}, nil
	}

	user, err := service.VerifyIDToken(context.Background(), "raw-id-token")
	assert.NoError(t, err)
	assert.Equal(t, "google-sub-123", user.ID)
	assert.Equal(t, "traveler@example.com", user.Email)
	assert.Equal(t, "Test Traveler", user.Name)
	assert.Equal(t, "https://example.com/avatar.png", user.AvatarURL)
	assert.True(t, user.EmailVerified)
	assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
}
