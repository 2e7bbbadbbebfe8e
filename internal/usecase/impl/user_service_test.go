package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"trove/internal/domain/entity"
	domainerrors "trove/internal/domain/errors"
	"trove/internal/domain/repository"
	"trove/internal/domain/service"
	mockRepo "trove/internal/mocks/repository"
	mockSvc "trove/internal/mocks/service"
	"trove/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	oauthService *mockSvc.MockOAuthService
	publisher    *mockSvc.MockEventPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	oauthService := mockSvc.NewMockOAuthService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		OAuthService: oauthService,
		Publisher:    publisher,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		oauthService: oauthService,
		publisher:    publisher,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "Test@Example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "test@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("*entity.User")).Return("access_token", nil)
	fx.tokenService.EXPECT().IssueRefresh(mock.AnythingOfType("*entity.User")).Return("refresh_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, []entity.ProviderType{entity.ProviderTypeLocal}, output.User.Providers)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "taken@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_EventFailureIsTolerated(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "test@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(errors.New("broker down"))

	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("*entity.User")).Return("access_token", nil)
	fx.tokenService.EXPECT().IssueRefresh(mock.AnythingOfType("*entity.User")).Return("refresh_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().Issue(user).Return("access_token", nil)
	fx.tokenService.EXPECT().IssueRefresh(user).Return("refresh_token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Test@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "access_token", output.AccessToken)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_OAuthOnlyAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:        uuid.New(),
		Email:     "test@example.com",
		Providers: []entity.ProviderType{entity.ProviderTypeGoogle},
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Profile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	result, err := fx.service.Profile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, result)
}

func TestUserService_Profile_UserGone(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	result, err := fx.service.Profile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrAuthUserNotFound)
}

func TestUserService_Refresh_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().Issue(user).Return("new_access", nil)
	fx.tokenService.EXPECT().IssueRefresh(user).Return("new_refresh", nil)

	output, err := fx.service.Refresh(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
}

func TestUserService_GoogleAuthURL(t *testing.T) {
	fx := createTestUserService(t)

	fx.oauthService.EXPECT().GenerateState().Return("random_state")
	fx.oauthService.EXPECT().
		BuildAuthorizationURL("random_state").
		Return("https://accounts.google.com/o/oauth2/v2/auth?state=random_state")

	url, err := fx.service.GoogleAuthURL(context.Background())

	require.NoError(t, err)
	assert.Contains(t, url, "state=random_state")
}

func TestUserService_GoogleCallback_Success_NewUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.oauthService.EXPECT().ValidateState("state").Return(true)
	fx.oauthService.EXPECT().ExchangeCode(ctx, "code").Return("provider_token", nil)
	fx.oauthService.EXPECT().FetchUser(ctx, "provider_token").Return(&service.OAuthUser{
		ID:       "google-sub",
		Email:    "New@Example.com",
		Name:     "New User",
		Provider: entity.ProviderTypeGoogle,
	}, nil)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "new@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("*entity.User")).Return("access_token", nil)
	fx.tokenService.EXPECT().IssueRefresh(mock.AnythingOfType("*entity.User")).Return("refresh_token", nil)

	output, err := fx.service.GoogleCallback(ctx, "state", "code")

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", output.User.Email)
	assert.Empty(t, output.User.PasswordHash)
	assert.Equal(t, []entity.ProviderType{entity.ProviderTypeGoogle}, output.User.Providers)
}

func TestUserService_GoogleCallback_LinksExistingAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{
		ID:           uuid.New(),
		Email:        "existing@example.com",
		PasswordHash: "hashed_password",
		Providers:    []entity.ProviderType{entity.ProviderTypeLocal},
	}

	fx.oauthService.EXPECT().ValidateState("state").Return(true)
	fx.oauthService.EXPECT().ExchangeCode(ctx, "code").Return("provider_token", nil)
	fx.oauthService.EXPECT().FetchUser(ctx, "provider_token").Return(&service.OAuthUser{
		Email:    "existing@example.com",
		Name:     "Existing User",
		Provider: entity.ProviderTypeGoogle,
	}, nil)

	fx.userRepo.EXPECT().FindByEmail(ctx, "existing@example.com").Return(existing, nil)
	fx.userRepo.EXPECT().Update(ctx, existing).Return(nil)

	fx.tokenService.EXPECT().Issue(existing).Return("access_token", nil)
	fx.tokenService.EXPECT().IssueRefresh(existing).Return("refresh_token", nil)

	output, err := fx.service.GoogleCallback(ctx, "state", "code")

	require.NoError(t, err)
	assert.True(t, output.User.HasProvider(entity.ProviderTypeGoogle))
	assert.True(t, output.User.HasProvider(entity.ProviderTypeLocal))
}

func TestUserService_GoogleCallback_InvalidState(t *testing.T) {
	fx := createTestUserService(t)

	fx.oauthService.EXPECT().ValidateState("forged").Return(false)

	output, err := fx.service.GoogleCallback(context.Background(), "forged", "code")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}

func TestUserService_GoogleCallback_ExchangeFails(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.oauthService.EXPECT().ValidateState("state").Return(true)
	fx.oauthService.EXPECT().ExchangeCode(ctx, "bad_code").Return("", errors.New("invalid_grant"))

	output, err := fx.service.GoogleCallback(ctx, "state", "bad_code")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}

func TestUserService_GoogleTokenLogin_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{
		ID:        uuid.New(),
		Email:     "existing@example.com",
		Providers: []entity.ProviderType{entity.ProviderTypeGoogle},
	}

	fx.oauthService.EXPECT().VerifyIDToken(ctx, "id_token").Return(&service.OAuthUser{
		Email:    "existing@example.com",
		Provider: entity.ProviderTypeGoogle,
	}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "existing@example.com").Return(existing, nil)
	fx.tokenService.EXPECT().Issue(existing).Return("access_token", nil)
	fx.tokenService.EXPECT().IssueRefresh(existing).Return("refresh_token", nil)

	output, err := fx.service.GoogleTokenLogin(ctx, &usecase.GoogleTokenInput{IDToken: "id_token"})

	require.NoError(t, err)
	assert.Equal(t, existing, output.User)
}

func TestUserService_GoogleTokenLogin_BadToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.oauthService.EXPECT().
		VerifyIDToken(ctx, "garbage").
		Return(nil, errors.New("token signature mismatch"))

	output, err := fx.service.GoogleTokenLogin(ctx, &usecase.GoogleTokenInput{IDToken: "garbage"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}

func TestUserService_GoogleTokenLogin_NoEmailFromProvider(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.oauthService.EXPECT().VerifyIDToken(ctx, "id_token").Return(&service.OAuthUser{
		Provider: entity.ProviderTypeGoogle,
	}, nil)

	output, err := fx.service.GoogleTokenLogin(ctx, &usecase.GoogleTokenInput{IDToken: "id_token"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}
