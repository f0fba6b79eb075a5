package auth

import "errors"

// Closed set of authentication failures. Callers match on these rather than
// inspecting messages; the HTTP boundary translates them to status codes.
var (
	ErrMalformedCredential = errors.New("malformed credential header")
	ErrWrongScheme         = errors.New("wrong credential scheme")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDuplicateAccount    = errors.New("account already registered")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrWrongTokenClass     = errors.New("wrong token class")
	ErrUnauthenticated     = errors.New("authentication required")
)
