package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/movie-catalog/internal/domain"
)

var testIdentity = Identity{UserID: 42, Role: domain.RolePaidUser}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret")

	token, err := tm.Issue(testIdentity, domain.TokenClassAccess)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := tm.Verify(token, domain.TokenClassAccess)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("unexpected subject: %d", claims.UserID)
	}
	if claims.Role != domain.RolePaidUser {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if claims.Class != domain.TokenClassAccess {
		t.Fatalf("unexpected class: %s", claims.Class)
	}
	if claims.ID == "" {
		t.Fatal("expected a token id")
	}
}

func TestVerifyRejectsCrossClassSecret(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret")

	token, err := tm.Issue(testIdentity, domain.TokenClassAccess)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Independent secrets: the signature check against the refresh secret
	// fails before the class claim is even consulted.
	if _, err := tm.Verify(token, domain.TokenClassRefresh); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsWrongClassWithSharedSecret(t *testing.T) {
	// Misconfigured deployment where both classes share one secret: the
	// class claim check is the remaining defense.
	tm := NewTokenManager("shared", "shared")

	token, err := tm.Issue(testIdentity, domain.TokenClassRefresh)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := tm.Verify(token, domain.TokenClassAccess); !errors.Is(err, ErrWrongTokenClass) {
		t.Fatalf("got %v, want ErrWrongTokenClass", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := NewTokenManager("access-secret", "refresh-secret")
	issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := issuer.Issue(testIdentity, domain.TokenClassAccess)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	verifier := NewTokenManager("access-secret", "refresh-secret")
	if _, err := verifier.Verify(token, domain.TokenClassAccess); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("got %v, want ErrTokenExpired", err)
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := tm.Verify(token, domain.TokenClassAccess); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: got %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret")

	token, err := tm.Issue(testIdentity, domain.TokenClassAccess)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := tm.Verify(tampered, domain.TokenClassAccess); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}
}

func TestDecodeClass(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret")

	for _, class := range []domain.TokenClass{domain.TokenClassAccess, domain.TokenClassRefresh} {
		token, err := tm.Issue(testIdentity, class)
		if err != nil {
			t.Fatalf("Issue %s: %v", class, err)
		}
		decoded, err := DecodeClass(token)
		if err != nil {
			t.Fatalf("DecodeClass %s: %v", class, err)
		}
		if decoded != class {
			t.Fatalf("got class %s, want %s", decoded, class)
		}
	}

	if _, err := DecodeClass("garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}
}
