// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"trove/config"
	deliverycontext "trove/internal/delivery/context"
	"trove/internal/delivery/http/response"
	"trove/internal/domain/entity"
	domainerrors "trove/internal/domain/errors"
	"trove/internal/domain/service"
	"trove/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc       usecase.UserUsecase
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

// authPayload is the success body shared by every sign-in flavor.
type authPayload struct {
	User         *entity.User `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	ExpiresIn    int64        `json:"expiresIn"`
}

func (h *AuthHandler) payload(out *usecase.AuthOutput) *authPayload {
	return &authPayload{
		User:         out.User,
		Token:        out.AccessToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    int64(h.tokenSvc.AccessTokenDuration().Seconds()),
	}
}

// Register handles the local account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.payload(output), "User registered successfully")
}

// Login handles the local login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.payload(output), "Login successful")
}

// Profile returns the authenticated user's record.
func (h *AuthHandler) Profile(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	user, err := h.uc.Profile(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// Refresh re-issues tokens for the authenticated user.
func (h *AuthHandler) Refresh(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	output, err := h.uc.Refresh(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.payload(output), "Token refreshed")
}

// Logout acknowledges a sign-out. Tokens are stateless, so discarding them is
// the client's job; the endpoint exists for symmetry and audit logging.
func (h *AuthHandler) Logout(c echo.Context) error {
	if identity, ok := deliverycontext.GetIdentity(c); ok {
		h.logger.Info("User logged out", slog.String("user_id", identity.ID.String()))
	}

	return response.Success(c, http.StatusOK, nil, "Logged out successfully")
}

// GoogleLogin starts the server-side OAuth flow by redirecting the browser to
// Google's consent page.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	authURL, err := h.uc.GoogleAuthURL(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// GoogleCallback completes the server-side OAuth flow. Success and failure
// both end in a browser redirect to the client app; a redirect cannot carry
// the JSON envelope, so this is the one endpoint that reports errors as a
// query parameter instead.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	state := c.QueryParam("state")
	code := c.QueryParam("code")

	output, err := h.uc.GoogleCallback(c.Request().Context(), state, code)
	if err != nil {
		h.logger.Warn("Google OAuth callback failed",
			slog.String("ip", c.RealIP()),
			slog.Any("error", err),
		)

		return c.Redirect(http.StatusTemporaryRedirect, h.clientURL()+"/auth?error=oauth_failed")
	}

	userJSON, err := json.Marshal(callbackUser{
		ID:    output.User.ID,
		Email: output.User.Email,
		Name:  output.User.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	query := url.Values{}
	query.Set("token", output.AccessToken)
	query.Set("user", string(userJSON))

	return c.Redirect(http.StatusTemporaryRedirect, h.clientURL()+"/auth/callback?"+query.Encode())
}

// GoogleTokenLogin signs a user in from a client-verified Google ID token.
func (h *AuthHandler) GoogleTokenLogin(c echo.Context) error {
	var input usecase.GoogleTokenInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.GoogleTokenLogin(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.payload(output), "Login successful")
}

func (h *AuthHandler) clientURL() string {
	return strings.TrimSuffix(h.cfg.ClientURL, "/")
}

// callbackUser is the minimal user shape embedded in the OAuth redirect URL.
type callbackUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}
