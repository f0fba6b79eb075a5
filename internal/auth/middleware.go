package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/movie-catalog/pkg/util"
)

const identityKey = "auth_identity"

// Message returned for every token verification failure. The internal reason
// is logged but never exposed, so callers cannot probe signature vs expiry.
const genericTokenError = "token invalid or expired"

// Middleware is the request gate: it verifies bearer tokens when present and
// attaches the resulting identity to the request context. Requests without a
// credential header pass through unauthenticated; rejection of anonymous
// callers is left to per-route guards.
type Middleware struct {
	tokens *TokenManager
	logger *zap.Logger
}

// NewMiddleware constructs the gate.
func NewMiddleware(tokens *TokenManager, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, logger: logger}
}

// Handle runs once per request, before route handlers.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return c.Next()
	}

	// A present-but-malformed header is an invalid attempt, not an anonymous
	// one; it never passes through silently.
	tokenStr, err := ParseBearer(header)
	if err != nil {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	// The claimed class is trusted only to select the verification secret.
	// Verify re-checks that the verified class equals the claimed one.
	claimed, err := DecodeClass(tokenStr)
	if err != nil {
		return m.reject(c, err)
	}

	claims, err := m.tokens.Verify(tokenStr, claimed)
	if err != nil {
		return m.reject(c, err)
	}

	c.Locals(identityKey, claims)
	return c.Next()
}

func (m *Middleware) reject(c *fiber.Ctx, err error) error {
	m.logger.Debug("bearer token rejected",
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return apperrors.NewUnauthorized(genericTokenError)
}

// IdentityFromContext retrieves the verified claims attached by the gate.
func IdentityFromContext(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(identityKey).(*Claims)
	return claims, ok
}
