package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/movie-catalog/internal/domain"
	"github.com/spec-kit/movie-catalog/internal/repository"
)

// ErrGenreNameTaken is returned when creating or renaming a genre to a name
// already on file.
var ErrGenreNameTaken = errors.New("genre name already exists")

// GenreService coordinates genre CRUD.
type GenreService struct {
	genres repository.GenreRepository
}

// NewGenreService builds the service.
func NewGenreService(genres repository.GenreRepository) *GenreService {
	return &GenreService{genres: genres}
}

// List returns all genres.
func (s *GenreService) List(ctx context.Context) ([]domain.Genre, error) {
	return s.genres.List(ctx)
}

// Get returns a single genre.
func (s *GenreService) Get(ctx context.Context, id int64) (*domain.Genre, error) {
	return s.genres.GetByID(ctx, id)
}

// Create stores a new genre, enforcing name uniqueness.
func (s *GenreService) Create(ctx context.Context, name string) (*domain.Genre, error) {
	if _, err := s.genres.GetByName(ctx, name); err == nil {
		return nil, ErrGenreNameTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	genre := &domain.Genre{Name: name}
	if err := s.genres.Create(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

// Update renames a genre, enforcing name uniqueness.
func (s *GenreService) Update(ctx context.Context, id int64, name string) (*domain.Genre, error) {
	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.genres.GetByName(ctx, name); err == nil && existing.ID != id {
		return nil, ErrGenreNameTaken
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	genre.Name = name
	if err := s.genres.Update(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

// Delete removes a genre.
func (s *GenreService) Delete(ctx context.Context, id int64) error {
	return s.genres.Delete(ctx, id)
}
