package dto

import "github.com/spec-kit/movie-catalog/internal/domain"

// GenreRequest payload for genre create/update.
type GenreRequest struct {
	Name string `json:"name"`
}

// GenreResponse is the public view of a genre.
type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewGenreResponse maps a domain genre to its public view.
func NewGenreResponse(genre *domain.Genre) GenreResponse {
	return GenreResponse{ID: genre.ID, Name: genre.Name}
}
