package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/movie-catalog/internal/api/dto"
	"github.com/spec-kit/movie-catalog/internal/auth"
	"github.com/spec-kit/movie-catalog/internal/repository"
	apperrors "github.com/spec-kit/movie-catalog/pkg/util"
)

// UsersHandler exposes endpoints about the authenticated account.
type UsersHandler struct {
	users repository.UserRepository
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users repository.UserRepository) *UsersHandler {
	return &UsersHandler{users: users}
}

// Me handles GET /users/me for the authenticated caller.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	claims, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized(auth.ErrUnauthenticated.Error())
	}

	user, err := h.users.GetByID(c.UserContext(), claims.UserID)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}
