package middleware

import (
	"log/slog"

	deliverycontext "trove/internal/delivery/context"
	"trove/internal/domain/entity"
	domainerrors "trove/internal/domain/errors"
	"trove/internal/domain/repository"
	"trove/internal/domain/service"
	"trove/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer token authentication and
// authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo, logger: logger}
}

// Authenticate validates the access token, checks that its subject still
// resolves to an existing account, and attaches the identity to the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := m.resolveIdentity(c)
		if err != nil {
			return err
		}

		attachIdentity(c, identity)

		return next(c)
	}
}

// OptionalAuthenticate attaches the identity when a valid token is present
// and proceeds anonymously otherwise. It never fails the request; the public
// trip share endpoint relies on this.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := m.resolveIdentity(c)
		if err != nil {
			if !errors.Is(err, domainerrors.ErrTokenMissing) {
				m.logger.Warn("Optional authentication failed, proceeding anonymous",
					slog.String("path", c.Request().URL.Path),
					slog.Any("error", err),
				)
			}

			return next(c)
		}

		attachIdentity(c, identity)

		return next(c)
	}
}

// RequireOwnership checks that the authenticated identity matches the user ID
// named by the given route parameter. It must run after Authenticate.
func (m *AuthMiddleware) RequireOwnership(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return domainerrors.ErrTokenMissing
			}

			raw := c.Param(param)
			if raw == "" {
				return domainerrors.ErrMissingRequiredField.WithDetails(map[string]string{param: "is required"})
			}

			ownerID, err := uuid.Parse(raw)
			if err != nil || ownerID != identity.ID {
				return domainerrors.ErrInsufficientPermissions
			}

			return next(c)
		}
	}
}

// RequireRole rejects requests whose account role is not in the allow-list.
// The role is read from the stored user record, not the token, so demotions
// take effect immediately. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return domainerrors.ErrTokenMissing
			}

			user, err := m.userRepo.FindByID(c.Request().Context(), identity.ID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return domainerrors.ErrAuthUserNotFound
				}

				return errors.WithStack(err)
			}

			if !entity.Roles(allowed).Contains(user.Role.OrDefault()) {
				return domainerrors.ErrInsufficientPermissions
			}

			return next(c)
		}
	}
}

// resolveIdentity runs the token flow for one request: extract, verify, and
// re-check the subject against the user store.
func (m *AuthMiddleware) resolveIdentity(c echo.Context) (*deliverycontext.Identity, error) {
	tokenString, ok := m.tokenSvc.ExtractFromHeader(c.Request().Header.Get("Authorization"))
	if !ok {
		return nil, domainerrors.ErrTokenMissing
	}

	claims, err := m.tokenSvc.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAuthUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &deliverycontext.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

// attachIdentity stores the identity on the request and enriches the
// request-scoped logger with the user ID.
func attachIdentity(c echo.Context, identity *deliverycontext.Identity) {
	deliverycontext.SetIdentity(c, identity)

	ctx := c.Request().Context()
	if logger := deliverycontext.GetLogger(ctx); logger != nil {
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", identity.ID.String())))
		c.SetRequest(c.Request().WithContext(ctx))
	}
}
