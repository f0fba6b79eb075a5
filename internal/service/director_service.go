package service

import (
	"context"
	"time"

	"github.com/spec-kit/movie-catalog/internal/domain"
	"github.com/spec-kit/movie-catalog/internal/repository"
)

// DirectorService coordinates director CRUD.
type DirectorService struct {
	directors repository.DirectorRepository
}

// NewDirectorService builds the service.
func NewDirectorService(directors repository.DirectorRepository) *DirectorService {
	return &DirectorService{directors: directors}
}

// List returns all directors.
func (s *DirectorService) List(ctx context.Context) ([]domain.Director, error) {
	return s.directors.List(ctx)
}

// Get returns a single director.
func (s *DirectorService) Get(ctx context.Context, id int64) (*domain.Director, error) {
	return s.directors.GetByID(ctx, id)
}

// Create stores a new director.
func (s *DirectorService) Create(ctx context.Context, name string, dateOfBirth time.Time, nationality string) (*domain.Director, error) {
	director := &domain.Director{
		Name:        name,
		DateOfBirth: dateOfBirth,
		Nationality: nationality,
	}
	if err := s.directors.Create(ctx, director); err != nil {
		return nil, err
	}
	return director, nil
}

// Update applies changes to an existing director.
func (s *DirectorService) Update(ctx context.Context, id int64, name *string, dateOfBirth *time.Time, nationality *string) (*domain.Director, error) {
	director, err := s.directors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		director.Name = *name
	}
	if dateOfBirth != nil {
		director.DateOfBirth = *dateOfBirth
	}
	if nationality != nil {
		director.Nationality = *nationality
	}
	if err := s.directors.Update(ctx, director); err != nil {
		return nil, err
	}
	return director, nil
}

// Delete removes a director.
func (s *DirectorService) Delete(ctx context.Context, id int64) error {
	return s.directors.Delete(ctx, id)
}
