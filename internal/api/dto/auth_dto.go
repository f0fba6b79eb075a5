package dto

import "github.com/spec-kit/movie-catalog/internal/domain"

// UserResponse is the public view of an account. The password hash is never
// serialized.
type UserResponse struct {
	ID    int64       `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// NewUserResponse maps a domain user to its public view.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{ID: user.ID, Email: user.Email, Role: user.Role}
}

// LoginResponse carries the issued token pair.
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AccessTokenResponse carries a freshly rotated access token.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}
