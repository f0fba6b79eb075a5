package domain

import "time"

// Movie is the domain model for catalog entries.
type Movie struct {
	ID        int64
	Title     string
	Detail    string
	Director  *Director
	Genres    []Genre
	CreatedAt time.Time
	UpdatedAt time.Time
}
