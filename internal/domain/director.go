package domain

import "time"

// Director is the domain model for movie directors.
type Director struct {
	ID          int64
	Name        string
	DateOfBirth time.Time
	Nationality string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
