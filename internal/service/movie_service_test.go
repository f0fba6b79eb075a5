package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/movie-catalog/internal/domain"
	"github.com/spec-kit/movie-catalog/internal/events"
	"github.com/spec-kit/movie-catalog/internal/repository"
)

// mockMovieRepository is an in-memory implementation of MovieRepository.
type mockMovieRepository struct {
	movies map[int64]*domain.Movie
	nextID int64
}

func newMockMovieRepository() *mockMovieRepository {
	return &mockMovieRepository{movies: make(map[int64]*domain.Movie), nextID: 1}
}

func (r *mockMovieRepository) List(ctx context.Context, title string) ([]domain.Movie, int64, error) {
	var out []domain.Movie
	for _, movie := range r.movies {
		if title == "" || strings.Contains(strings.ToLower(movie.Title), strings.ToLower(title)) {
			out = append(out, *movie)
		}
	}
	return out, int64(len(out)), nil
}

func (r *mockMovieRepository) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	movie, ok := r.movies[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return movie, nil
}

func (r *mockMovieRepository) Create(ctx context.Context, params repository.MovieCreateParams) (int64, error) {
	id := r.nextID
	r.nextID++
	r.movies[id] = &domain.Movie{ID: id, Title: params.Title, Detail: params.Detail}
	return id, nil
}

func (r *mockMovieRepository) Update(ctx context.Context, id int64, params repository.MovieUpdateParams) error {
	movie, ok := r.movies[id]
	if !ok {
		return pgx.ErrNoRows
	}
	if params.Title != nil {
		movie.Title = *params.Title
	}
	if params.Detail != nil {
		movie.Detail = *params.Detail
	}
	return nil
}

func (r *mockMovieRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := r.movies[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.movies, id)
	return nil
}

// recordingDispatcher captures published events.
type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func newTestMovieService(repo *mockMovieRepository, dispatcher events.Dispatcher) *MovieService {
	return NewMovieService(repo, nil, dispatcher, zap.NewNop())
}

func TestMovieCreatePublishesEvent(t *testing.T) {
	repo := newMockMovieRepository()
	dispatcher := &recordingDispatcher{}
	svc := newTestMovieService(repo, dispatcher)

	movie, err := svc.Create(context.Background(), repository.MovieCreateParams{Title: "Oldboy", DirectorID: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if movie.Title != "Oldboy" {
		t.Fatalf("unexpected movie: %+v", movie)
	}

	if len(dispatcher.published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(dispatcher.published))
	}
	event := dispatcher.published[0]
	if event.Type != events.EventMovieCreated || event.MovieID != movie.ID {
		t.Fatalf("unexpected event: %+v", event)
	}
	if event.ID == "" {
		t.Fatal("expected an event id")
	}
}

func TestMovieUpdateAndDeleteEvents(t *testing.T) {
	repo := newMockMovieRepository()
	dispatcher := &recordingDispatcher{}
	svc := newTestMovieService(repo, dispatcher)
	ctx := context.Background()

	movie, err := svc.Create(ctx, repository.MovieCreateParams{Title: "Oldboy", DirectorID: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newTitle := "Oldboy (2003)"
	updated, err := svc.Update(ctx, movie.ID, repository.MovieUpdateParams{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != newTitle {
		t.Fatalf("title not updated: %q", updated.Title)
	}

	if err := svc.Delete(ctx, movie.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, movie.ID); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected deleted movie lookup to fail, got %v", err)
	}

	types := make([]events.EventType, 0, len(dispatcher.published))
	for _, event := range dispatcher.published {
		types = append(types, event.Type)
	}
	want := []events.EventType{events.EventMovieCreated, events.EventMovieUpdated, events.EventMovieDeleted}
	if len(types) != len(want) {
		t.Fatalf("got events %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("got events %v, want %v", types, want)
		}
	}
}

func TestMovieUpdateMissing(t *testing.T) {
	svc := newTestMovieService(newMockMovieRepository(), &recordingDispatcher{})

	title := "x"
	if _, err := svc.Update(context.Background(), 99, repository.MovieUpdateParams{Title: &title}); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("got %v, want pgx.ErrNoRows", err)
	}
}

func TestMovieListFilter(t *testing.T) {
	repo := newMockMovieRepository()
	svc := newTestMovieService(repo, &recordingDispatcher{})
	ctx := context.Background()

	for _, title := range []string{"Oldboy", "The Handmaiden", "Decision to Leave"} {
		if _, err := svc.Create(ctx, repository.MovieCreateParams{Title: title, DirectorID: 1}); err != nil {
			t.Fatalf("Create %q: %v", title, err)
		}
	}

	movies, total, err := svc.List(ctx, "hand")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(movies) != 1 || movies[0].Title != "The Handmaiden" {
		t.Fatalf("unexpected result: total=%d movies=%+v", total, movies)
	}
}
