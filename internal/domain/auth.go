package domain

// TokenClass differentiates access vs refresh tokens.
type TokenClass string

const (
	TokenClassAccess  TokenClass = "access"
	TokenClassRefresh TokenClass = "refresh"
)

// Valid reports whether the class is one of the known values.
func (c TokenClass) Valid() bool {
	return c == TokenClassAccess || c == TokenClassRefresh
}
