package domain

import "time"

// Role represents the access level of an account.
type Role string

const (
	RoleAdmin    Role = "admin"
	RolePaidUser Role = "paidUser"
	RoleUser     Role = "user"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePaidUser, RoleUser:
		return true
	}
	return false
}

// User is the domain model for registered accounts.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
