package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/movie-catalog/internal/domain"
)

// Token lifetimes are fixed policy, not caller-supplied.
const (
	accessTokenTTL  = 300 * time.Second
	refreshTokenTTL = 24 * time.Hour
)

// Identity is the subject a token asserts.
type Identity struct {
	UserID int64
	Role   domain.Role
}

// Claims describes the signed JWT payload.
type Claims struct {
	UserID int64             `json:"sub"`
	Role   domain.Role       `json:"role"`
	Class  domain.TokenClass `json:"type"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies class-bound JWT tokens. Access and refresh
// tokens are signed with independent secrets, never interchangeable.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	now           func() time.Time
}

// NewTokenManager builds a manager around the two signing secrets.
func NewTokenManager(accessSecret, refreshSecret string) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		now:           time.Now,
	}
}

func (tm *TokenManager) secretFor(class domain.TokenClass) ([]byte, error) {
	switch class {
	case domain.TokenClassAccess:
		return tm.accessSecret, nil
	case domain.TokenClassRefresh:
		return tm.refreshSecret, nil
	}
	return nil, ErrInvalidToken
}

func (tm *TokenManager) ttlFor(class domain.TokenClass) time.Duration {
	if class == domain.TokenClassRefresh {
		return refreshTokenTTL
	}
	return accessTokenTTL
}

// Issue builds and signs a token of the given class for the identity.
func (tm *TokenManager) Issue(identity Identity, class domain.TokenClass) (string, error) {
	secret, err := tm.secretFor(class)
	if err != nil {
		return "", err
	}

	now := tm.now()
	claims := &Claims{
		UserID: identity.UserID,
		Role:   identity.Role,
		Class:  class,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttlFor(class))),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Verify validates signature, expiry and class against the expected class.
// The secret is selected by expectedClass, so a refresh token checked as
// access fails even when structurally well-formed. Signature and structural
// failures collapse into ErrInvalidToken.
func (tm *TokenManager) Verify(tokenStr string, expectedClass domain.TokenClass) (*Claims, error) {
	secret, err := tm.secretFor(expectedClass)
	if err != nil {
		return nil, err
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Class != expectedClass {
		return nil, ErrWrongTokenClass
	}
	return claims, nil
}

// DecodeClass reads the claimed token class without verifying the signature.
// Callers must re-verify the class after a full Verify pass.
func DecodeClass(tokenStr string) (domain.TokenClass, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, &claims); err != nil {
		return "", ErrInvalidToken
	}
	if !claims.Class.Valid() {
		return "", ErrInvalidToken
	}
	return claims.Class, nil
}
