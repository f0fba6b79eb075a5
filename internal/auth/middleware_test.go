package auth

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/movie-catalog/internal/domain"
	apperrors "github.com/spec-kit/movie-catalog/pkg/util"
)

func newGateApp(tm *TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).SendString(domainErr.Message)
		},
	})

	app.Use(NewMiddleware(tm, zap.NewNop()).Handle)

	app.Get("/open", func(c *fiber.Ctx) error {
		claims, ok := IdentityFromContext(c)
		if !ok {
			return c.SendString("anonymous")
		}
		return c.SendString(fmt.Sprintf("user:%d:%s", claims.UserID, claims.Class))
	})
	app.Get("/protected", RequireAuthenticated(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/admin", RequireRole(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	return app
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestGateAbsentHeaderProceedsUnauthenticated(t *testing.T) {
	app := newGateApp(NewTokenManager("a", "r"))

	status, body := doRequest(t, app, "/open", "")
	if status != http.StatusOK || body != "anonymous" {
		t.Fatalf("got %d %q", status, body)
	}
}

func TestGateAttachesIdentity(t *testing.T) {
	tm := NewTokenManager("a", "r")
	app := newGateApp(tm)

	token, err := tm.Issue(Identity{UserID: 7, Role: domain.RoleUser}, domain.TokenClassAccess)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	status, body := doRequest(t, app, "/open", "Bearer "+token)
	if status != http.StatusOK || body != "user:7:access" {
		t.Fatalf("got %d %q", status, body)
	}
}

func TestGateAcceptsRefreshTokenClass(t *testing.T) {
	tm := NewTokenManager("a", "r")
	app := newGateApp(tm)

	token, err := tm.Issue(Identity{UserID: 7, Role: domain.RoleUser}, domain.TokenClassRefresh)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	status, body := doRequest(t, app, "/open", "Bearer "+token)
	if status != http.StatusOK || body != "user:7:refresh" {
		t.Fatalf("got %d %q", status, body)
	}
}

func TestGateRejectsMalformedHeader(t *testing.T) {
	app := newGateApp(NewTokenManager("a", "r"))

	for _, header := range []string{"Bearer", "Bearer a b", "Token abc", "basic abc"} {
		status, _ := doRequest(t, app, "/open", header)
		if status != http.StatusUnauthorized {
			t.Fatalf("header %q: got %d, want 401", header, status)
		}
	}
}

func TestGateFailsClosedOnInvalidToken(t *testing.T) {
	tm := NewTokenManager("a", "r")
	app := newGateApp(tm)

	token, err := tm.Issue(Identity{UserID: 7, Role: domain.RoleUser}, domain.TokenClassAccess)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	status, body := doRequest(t, app, "/open", "Bearer "+token[:len(token)-2]+"xx")
	if status != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", status)
	}
	if !strings.Contains(body, "token invalid or expired") {
		t.Fatalf("expected generic message, got %q", body)
	}
}

func TestGateRejectsExpiredToken(t *testing.T) {
	issuer := NewTokenManager("a", "r")
	issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := issuer.Issue(Identity{UserID: 7, Role: domain.RoleUser}, domain.TokenClassAccess)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	app := newGateApp(NewTokenManager("a", "r"))
	status, body := doRequest(t, app, "/open", "Bearer "+token)
	if status != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", status)
	}
	if !strings.Contains(body, "token invalid or expired") {
		t.Fatalf("expected generic message, got %q", body)
	}
}

func TestGuardRequiresIdentity(t *testing.T) {
	app := newGateApp(NewTokenManager("a", "r"))

	status, _ := doRequest(t, app, "/protected", "")
	if status != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", status)
	}
}

func TestGuardRoleCheck(t *testing.T) {
	tm := NewTokenManager("a", "r")
	app := newGateApp(tm)

	userToken, err := tm.Issue(Identity{UserID: 1, Role: domain.RoleUser}, domain.TokenClassAccess)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	adminToken, err := tm.Issue(Identity{UserID: 2, Role: domain.RoleAdmin}, domain.TokenClassAccess)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if status, _ := doRequest(t, app, "/admin", "Bearer "+userToken); status != http.StatusForbidden {
		t.Fatalf("user role: got %d, want 403", status)
	}
	if status, _ := doRequest(t, app, "/admin", "Bearer "+adminToken); status != http.StatusOK {
		t.Fatalf("admin role: got %d, want 200", status)
	}
	if status, _ := doRequest(t, app, "/admin", ""); status != http.StatusUnauthorized {
		t.Fatalf("anonymous: got %d, want 401", status)
	}
}
