package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/movie-catalog/internal/domain"
	"github.com/spec-kit/movie-catalog/internal/events"
	"github.com/spec-kit/movie-catalog/internal/persistence"
	"github.com/spec-kit/movie-catalog/internal/repository"
)

// MovieService coordinates catalog reads and writes. List and detail reads go
// through the Redis cache; writes publish events that invalidate it.
type MovieService struct {
	movies     repository.MovieRepository
	cache      *persistence.MovieCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewMovieService builds the service.
func NewMovieService(movies repository.MovieRepository, cache *persistence.MovieCache, dispatcher events.Dispatcher, logger *zap.Logger) *MovieService {
	return &MovieService{movies: movies, cache: cache, dispatcher: dispatcher, logger: logger}
}

// List returns movies matching the optional title filter, with their count.
func (s *MovieService) List(ctx context.Context, title string) ([]domain.Movie, int64, error) {
	if movies, total, ok := s.cache.GetList(ctx, title); ok {
		return movies, total, nil
	}

	movies, total, err := s.movies.List(ctx, title)
	if err != nil {
		return nil, 0, err
	}
	s.cache.SetList(ctx, title, movies, total)
	return movies, total, nil
}

// Get returns a single movie with director and genres.
func (s *MovieService) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	if movie, ok := s.cache.GetMovie(ctx, id); ok {
		return movie, nil
	}

	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetMovie(ctx, movie)
	return movie, nil
}

// Create stores a new movie and publishes a created event.
func (s *MovieService) Create(ctx context.Context, params repository.MovieCreateParams) (*domain.Movie, error) {
	id, err := s.movies.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventMovieCreated, id)
	return s.movies.GetByID(ctx, id)
}

// Update applies partial changes and publishes an updated event.
func (s *MovieService) Update(ctx context.Context, id int64, params repository.MovieUpdateParams) (*domain.Movie, error) {
	if err := s.movies.Update(ctx, id, params); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventMovieUpdated, id)
	return s.movies.GetByID(ctx, id)
}

// Delete removes a movie and publishes a deleted event.
func (s *MovieService) Delete(ctx context.Context, id int64) error {
	if err := s.movies.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, events.EventMovieDeleted, id)
	return nil
}

func (s *MovieService) publish(ctx context.Context, eventType events.EventType, movieID int64) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		MovieID:   movieID,
		Timestamp: time.Now(),
	})
	if err != nil {
		s.logger.Warn("event publish failed",
			zap.String("event", string(eventType)),
			zap.Int64("movie_id", movieID),
			zap.Error(err),
		)
	}
}
