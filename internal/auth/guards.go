package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/movie-catalog/internal/domain"
	apperrors "github.com/spec-kit/movie-catalog/pkg/util"
)

// RequireAuthenticated ensures an identity was attached by the gate. It does
// no cryptographic work of its own.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := IdentityFromContext(c); !ok {
			return apperrors.NewUnauthorized(ErrUnauthenticated.Error())
		}
		return c.Next()
	}
}

// RequireRole ensures the authenticated identity carries one of the allowed
// roles.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		claims, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized(ErrUnauthenticated.Error())
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[claims.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
