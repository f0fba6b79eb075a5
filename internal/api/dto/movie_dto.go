package dto

import (
	"time"

	"github.com/spec-kit/movie-catalog/internal/domain"
)

// CreateMovieRequest payload for new movies.
type CreateMovieRequest struct {
	Title      string  `json:"title"`
	Detail     string  `json:"detail"`
	DirectorID int64   `json:"directorId"`
	GenreIDs   []int64 `json:"genreIds"`
}

// UpdateMovieRequest payload for partial movie updates. Absent fields are
// left unchanged.
type UpdateMovieRequest struct {
	Title      *string `json:"title"`
	Detail     *string `json:"detail"`
	DirectorID *int64  `json:"directorId"`
	GenreIDs   []int64 `json:"genreIds"`
}

// MovieResponse is the public view of a movie.
type MovieResponse struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	Detail    string            `json:"detail"`
	Director  *DirectorResponse `json:"director,omitempty"`
	Genres    []GenreResponse   `json:"genres"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewMovieResponse maps a domain movie to its public view.
func NewMovieResponse(movie *domain.Movie) MovieResponse {
	resp := MovieResponse{
		ID:        movie.ID,
		Title:     movie.Title,
		Detail:    movie.Detail,
		Genres:    make([]GenreResponse, 0, len(movie.Genres)),
		CreatedAt: movie.CreatedAt,
		UpdatedAt: movie.UpdatedAt,
	}
	if movie.Director != nil {
		director := NewDirectorResponse(movie.Director)
		resp.Director = &director
	}
	for i := range movie.Genres {
		resp.Genres = append(resp.Genres, NewGenreResponse(&movie.Genres[i]))
	}
	return resp
}

// NewMovieListResponse maps a slice of domain movies.
func NewMovieListResponse(movies []domain.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for i := range movies {
		out = append(out, NewMovieResponse(&movies[i]))
	}
	return out
}
