package domain

import "time"

// Genre is the domain model for movie genres. Names are unique.
type Genre struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
