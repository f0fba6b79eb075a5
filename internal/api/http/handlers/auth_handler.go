package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/movie-catalog/internal/api/dto"
	"github.com/spec-kit/movie-catalog/internal/auth"
	"github.com/spec-kit/movie-catalog/internal/service"
	apperrors "github.com/spec-kit/movie-catalog/pkg/util"
)

// AuthHandler exposes registration, login and token rotation endpoints.
type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: authService, logger: logger}
}

// Register handles POST /auth/register with a basic credential header.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return apperrors.NewValidationError("authorization header required", nil)
	}

	user, err := h.auth.Register(c.UserContext(), header)
	if err != nil {
		return h.mapAuthError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewUserResponse(user),
	})
}

// Login handles POST /auth/login with a basic credential header.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return apperrors.NewValidationError("authorization header required", nil)
	}

	_, pair, err := h.auth.Login(c.UserContext(), header)
	if err != nil {
		return h.mapAuthError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": dto.LoginResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		},
	})
}

// RotateAccessToken handles POST /auth/token/access with a bearer refresh
// token.
func (h *AuthHandler) RotateAccessToken(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return apperrors.NewValidationError("authorization header required", nil)
	}

	accessToken, err := h.auth.RotateAccessToken(c.UserContext(), header)
	if err != nil {
		return h.mapAuthError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": dto.AccessTokenResponse{AccessToken: accessToken},
	})
}

// mapAuthError translates the closed auth failure set into transport errors.
// Token failures collapse into one generic message; the precise reason is
// only logged.
func (h *AuthHandler) mapAuthError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrMalformedCredential):
		return apperrors.NewValidationError("malformed credential header", nil)
	case errors.Is(err, auth.ErrWrongScheme):
		return apperrors.NewValidationError("wrong credential scheme", nil)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return apperrors.NewValidationError("invalid credentials", nil)
	case errors.Is(err, auth.ErrDuplicateAccount):
		return apperrors.NewValidationError("email already registered", nil)
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrWrongTokenClass):
		h.logger.Debug("token rejected",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return apperrors.NewUnauthorized("token invalid or expired")
	}
	return err
}
