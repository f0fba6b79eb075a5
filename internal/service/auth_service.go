package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/movie-catalog/internal/auth"
	"github.com/spec-kit/movie-catalog/internal/config"
	"github.com/spec-kit/movie-catalog/internal/domain"
	"github.com/spec-kit/movie-catalog/internal/repository"
)

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService coordinates registration, login and token rotation.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     auth.NewTokenManager(cfg.Auth.AccessTokenSecret, cfg.Auth.RefreshTokenSecret),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account from a basic credential header. The header
// is parsed before any store lookup; new accounts get the default role.
func (s *AuthService) Register(ctx context.Context, credentialHeader string) (*domain.User, error) {
	email, password, err := auth.ParseBasic(credentialHeader)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, auth.ErrDuplicateAccount
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies an email/password pair. An unknown email and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.ComparePassword(user.PasswordHash, password) {
		return nil, auth.ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates a basic credential header and issues an access/refresh
// token pair.
func (s *AuthService) Login(ctx context.Context, credentialHeader string) (*domain.User, TokenPair, error) {
	email, password, err := auth.ParseBasic(credentialHeader)
	if err != nil {
		return nil, TokenPair{}, err
	}

	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, TokenPair{}, err
	}

	identity := auth.Identity{UserID: user.ID, Role: user.Role}
	accessToken, err := s.tokens.Issue(identity, domain.TokenClassAccess)
	if err != nil {
		return nil, TokenPair{}, err
	}
	refreshToken, err := s.tokens.Issue(identity, domain.TokenClassRefresh)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return user, TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RotateAccessToken mints a new access token from a bearer header carrying a
// refresh token. Presenting an access token fails with ErrWrongTokenClass.
// The refresh token itself is not rotated.
func (s *AuthService) RotateAccessToken(ctx context.Context, credentialHeader string) (string, error) {
	tokenStr, err := auth.ParseBearer(credentialHeader)
	if err != nil {
		return "", err
	}

	claims, err := s.tokens.Verify(tokenStr, domain.TokenClassRefresh)
	if err != nil {
		return "", err
	}

	identity := auth.Identity{UserID: claims.UserID, Role: claims.Role}
	return s.tokens.Issue(identity, domain.TokenClassAccess)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
