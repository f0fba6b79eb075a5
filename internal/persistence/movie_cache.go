package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/movie-catalog/internal/domain"
)

const (
	movieKeyPrefix = "movies:id:"
	listKeyPrefix  = "movies:list:"
	listVersionKey = "movies:list:version"
)

// MovieCache is a cache-aside layer over Redis for movie reads. All methods
// degrade silently when Redis is unavailable; the catalog falls back to the
// database.
type MovieCache struct {
	redis *Redis
	ttl   time.Duration
}

// NewMovieCache builds the cache with the configured entry TTL.
func NewMovieCache(r *Redis, ttl time.Duration) *MovieCache {
	return &MovieCache{redis: r, ttl: ttl}
}

type cachedList struct {
	Movies []domain.Movie `json:"movies"`
	Total  int64          `json:"total"`
}

// GetMovie returns a cached movie, if present.
func (c *MovieCache) GetMovie(ctx context.Context, id int64) (*domain.Movie, bool) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil, false
	}
	raw, err := c.redis.Client.Get(ctx, movieKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var movie domain.Movie
	if err := json.Unmarshal(raw, &movie); err != nil {
		return nil, false
	}
	return &movie, true
}

// SetMovie stores a movie under its id key.
func (c *MovieCache) SetMovie(ctx context.Context, movie *domain.Movie) {
	if c == nil || c.redis == nil || c.redis.Client == nil || movie == nil {
		return
	}
	raw, err := json.Marshal(movie)
	if err != nil {
		return
	}
	c.redis.Client.Set(ctx, movieKey(movie.ID), raw, c.ttl)
}

// GetList returns a cached list page for the given title filter.
func (c *MovieCache) GetList(ctx context.Context, title string) ([]domain.Movie, int64, bool) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil, 0, false
	}
	raw, err := c.redis.Client.Get(ctx, c.listKey(ctx, title)).Bytes()
	if err != nil {
		return nil, 0, false
	}
	var list cachedList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, 0, false
	}
	return list.Movies, list.Total, true
}

// SetList stores a list result for the given title filter.
func (c *MovieCache) SetList(ctx context.Context, title string, movies []domain.Movie, total int64) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	raw, err := json.Marshal(cachedList{Movies: movies, Total: total})
	if err != nil {
		return
	}
	c.redis.Client.Set(ctx, c.listKey(ctx, title), raw, c.ttl)
}

// InvalidateMovie drops the cached entry for a single movie.
func (c *MovieCache) InvalidateMovie(ctx context.Context, id int64) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	c.redis.Client.Del(ctx, movieKey(id))
}

// InvalidateLists bumps the list version, orphaning all cached list pages.
// Orphaned entries expire via their TTL.
func (c *MovieCache) InvalidateLists(ctx context.Context) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	c.redis.Client.Incr(ctx, listVersionKey)
}

func (c *MovieCache) listKey(ctx context.Context, title string) string {
	version, err := c.redis.Client.Get(ctx, listVersionKey).Int64()
	if err != nil && err != redis.Nil {
		version = 0
	}
	return fmt.Sprintf("%sv%d:%s", listKeyPrefix, version, title)
}

func movieKey(id int64) string {
	return fmt.Sprintf("%s%d", movieKeyPrefix, id)
}
