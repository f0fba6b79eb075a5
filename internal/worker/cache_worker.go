package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/movie-catalog/internal/events"
	"github.com/spec-kit/movie-catalog/internal/persistence"
)

// StartCacheWorker subscribes cache invalidation handlers to movie events.
func StartCacheWorker(dispatcher events.Dispatcher, cache *persistence.MovieCache, logger *zap.Logger) {
	if dispatcher == nil || cache == nil {
		return
	}

	handler := func(ctx context.Context, event events.Event) error {
		cache.InvalidateMovie(ctx, event.MovieID)
		cache.InvalidateLists(ctx)
		logger.Debug("movie cache invalidated",
			zap.String("event", string(event.Type)),
			zap.Int64("movie_id", event.MovieID),
		)
		return nil
	}

	dispatcher.Subscribe(events.EventMovieCreated, handler)
	dispatcher.Subscribe(events.EventMovieUpdated, handler)
	dispatcher.Subscribe(events.EventMovieDeleted, handler)
}
