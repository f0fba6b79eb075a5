package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMovieCreated EventType = "movie_created"
	EventMovieUpdated EventType = "movie_updated"
	EventMovieDeleted EventType = "movie_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	MovieID   int64     `json:"movie_id"`
	Timestamp time.Time `json:"timestamp"`
}
