package auth

import (
	"testing"
	"time"

	"trove/config"
	"trove/internal/domain/entity"
	domainerrors "trove/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func testUser() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Email: "traveler@example.com",
		Name:  "Test Traveler",
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	user := testUser()

	token, err := jwtService.Issue(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Verify(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, "travel-trove-api", claims.Issuer)
	assert.Contains(t, claims.Audience, "travel-trove-client")
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	claims, err := jwtService.Verify("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	tokenService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	// The constructor rejects non-positive lifetimes, so sign an already
	// expired token through the internal helper directly.
	svc := tokenService.(*jwtService)
	token, err := svc.generateToken(testUser(), -time.Minute, svc.accessSecret)
	assert.NoError(t, err)

	claims, err := tokenService.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	other := testConfig()
	other.SecretKey.Access = "another_secret_key_also_long_enough_for_tests"
	otherService, err := NewJWTService(other)
	assert.NoError(t, err)

	token, err := otherService.Issue(testUser())
	assert.NoError(t, err)

	claims, err := jwtService.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_RefreshTokenNotValidAsAccess(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	refresh, err := jwtService.IssueRefresh(testUser())
	assert.NoError(t, err)

	claims, err := jwtService.Verify(refresh)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_ExtractFromHeader(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi", wantOK: true},
		{name: "empty header", header: "", wantOK: false},
		{name: "missing scheme", header: "abc.def.ghi", wantOK: false},
		{name: "wrong scheme", header: "Basic abc.def.ghi", wantOK: false},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", wantOK: false},
		{name: "extra parts", header: "Bearer abc def", wantOK: false},
		{name: "empty token", header: "Bearer ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := jwtService.ExtractFromHeader(tt.header)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.Equal(t, 24*time.Hour, jwtService.AccessTokenDuration())
}
