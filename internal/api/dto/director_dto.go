package dto

import (
	"time"

	"github.com/spec-kit/movie-catalog/internal/domain"
)

// CreateDirectorRequest payload for new directors.
type CreateDirectorRequest struct {
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"dob"`
	Nationality string    `json:"nationality"`
}

// UpdateDirectorRequest payload for partial director updates.
type UpdateDirectorRequest struct {
	Name        *string    `json:"name"`
	DateOfBirth *time.Time `json:"dob"`
	Nationality *string    `json:"nationality"`
}

// DirectorResponse is the public view of a director.
type DirectorResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"dob"`
	Nationality string    `json:"nationality"`
}

// NewDirectorResponse maps a domain director to its public view.
func NewDirectorResponse(director *domain.Director) DirectorResponse {
	return DirectorResponse{
		ID:          director.ID,
		Name:        director.Name,
		DateOfBirth: director.DateOfBirth,
		Nationality: director.Nationality,
	}
}
