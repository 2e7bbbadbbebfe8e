// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "trove/internal/delivery/context"
	"trove/internal/domain/entity"
	domainerrors "trove/internal/domain/errors"
	"trove/internal/domain/repository"
	"trove/internal/domain/service"
	"trove/internal/errors"
	"trove/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	oauthService service.OAuthService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OAuthService service.OAuthService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		oauthService: params.OAuthService,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a local account and signs the user in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", email))

		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		Providers:    []entity.ProviderType{entity.ProviderTypeLocal},
		Role:         entity.RoleUser,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, &service.DomainEvent{
		Type:       service.EventUserRegistered,
		UserID:     user.ID.String(),
		ResourceID: user.ID.String(),
		OccurredAt: time.Now().UTC(),
	})

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return srv.issueTokens(user)
}

// Login authenticates a local account by email and password. The response
// never reveals whether the email or the password was wrong.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	// Accounts created through OAuth have no local password.
	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, bad credentials", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueTokens(user)
}

// Profile returns the user record for an authenticated identity.
func (srv *userService) Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAuthUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// Refresh re-issues tokens for an already authenticated identity.
func (srv *userService) Refresh(ctx context.Context, userID uuid.UUID) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAuthUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load account for refresh")
	}

	return srv.issueTokens(user)
}

// GoogleAuthURL starts the server-side OAuth flow.
func (srv *userService) GoogleAuthURL(ctx context.Context) (string, error) {
	state := srv.oauthService.GenerateState()

	return srv.oauthService.BuildAuthorizationURL(state), nil
}

// GoogleCallback completes the server-side OAuth flow.
func (srv *userService) GoogleCallback(ctx context.Context, state, code string) (*usecase.AuthOutput, error) {
	if !srv.oauthService.ValidateState(state) {
		srv.log(ctx).Warn("OAuth callback with invalid state")

		return nil, domainerrors.ErrOAuthFailed
	}

	accessToken, err := srv.oauthService.ExchangeCode(ctx, code)
	if err != nil {
		srv.log(ctx).Error("OAuth code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed
	}

	oauthUser, err := srv.oauthService.FetchUser(ctx, accessToken)
	if err != nil {
		srv.log(ctx).Error("OAuth user fetch failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed
	}

	user, err := srv.findOrCreateOAuthUser(ctx, oauthUser)
	if err != nil {
		return nil, err
	}

	return srv.issueTokens(user)
}

// GoogleTokenLogin signs a user in from a client-verified Google ID token.
func (srv *userService) GoogleTokenLogin(ctx context.Context, input *usecase.GoogleTokenInput) (*usecase.AuthOutput, error) {
	oauthUser, err := srv.oauthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed
	}

	user, err := srv.findOrCreateOAuthUser(ctx, oauthUser)
	if err != nil {
		return nil, err
	}

	return srv.issueTokens(user)
}

// findOrCreateOAuthUser links the provider to an existing account by email,
// or creates a fresh account without a local password.
func (srv *userService) findOrCreateOAuthUser(ctx context.Context, oauthUser *service.OAuthUser) (*entity.User, error) {
	if oauthUser.Email == "" {
		return nil, domainerrors.ErrOAuthFailed.WithMessage("OAuth provider did not supply an email address")
	}

	email := strings.ToLower(oauthUser.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		if user.LinkProvider(oauthUser.Provider) {
			if err := srv.userRepo.Update(ctx, user); err != nil {
				return nil, errors.Wrap(err, "failed to link OAuth provider")
			}
			srv.log(ctx).Info("Linked OAuth provider to existing account",
				slog.Any("userID", user.ID),
				slog.String("provider", oauthUser.Provider.String()),
			)
		}

		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up OAuth account")
	}

	name := oauthUser.Name
	if name == "" {
		name = email
	}

	user = &entity.User{
		Email:     email,
		Name:      name,
		Providers: []entity.ProviderType{oauthUser.Provider},
		Role:      entity.RoleUser,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, &service.DomainEvent{
		Type:       service.EventUserRegistered,
		UserID:     user.ID.String(),
		ResourceID: user.ID.String(),
		Payload:    map[string]any{"provider": oauthUser.Provider.String()},
		OccurredAt: time.Now().UTC(),
	})

	return user, nil
}

func (srv *userService) issueTokens(user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, err := srv.tokenService.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefresh(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// publishEvent delivers a domain event best effort; failures are logged and
// never surfaced to the caller.
func (srv *userService) publishEvent(ctx context.Context, event *service.DomainEvent) {
	if srv.publisher == nil {
		return
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish event",
			slog.String("event_type", event.Type),
			slog.Any("error", err),
		)
	}
}
