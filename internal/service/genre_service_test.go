package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/movie-catalog/internal/domain"
)

// mockGenreRepository is an in-memory implementation of GenreRepository.
type mockGenreRepository struct {
	genres    map[int64]*domain.Genre
	nameIndex map[string]*domain.Genre
	nextID    int64
}

func newMockGenreRepository() *mockGenreRepository {
	return &mockGenreRepository{
		genres:    make(map[int64]*domain.Genre),
		nameIndex: make(map[string]*domain.Genre),
		nextID:    1,
	}
}

func (r *mockGenreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	genre.ID = r.nextID
	r.nextID++
	genre.CreatedAt = time.Now()
	genre.UpdatedAt = genre.CreatedAt
	copied := *genre
	r.genres[genre.ID] = &copied
	r.nameIndex[genre.Name] = &copied
	return nil
}

func (r *mockGenreRepository) Update(ctx context.Context, genre *domain.Genre) error {
	existing, ok := r.genres[genre.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	delete(r.nameIndex, existing.Name)
	existing.Name = genre.Name
	r.nameIndex[genre.Name] = existing
	return nil
}

func (r *mockGenreRepository) GetByID(ctx context.Context, id int64) (*domain.Genre, error) {
	genre, ok := r.genres[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return genre, nil
}

func (r *mockGenreRepository) GetByName(ctx context.Context, name string) (*domain.Genre, error) {
	genre, ok := r.nameIndex[name]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return genre, nil
}

func (r *mockGenreRepository) List(ctx context.Context) ([]domain.Genre, error) {
	out := make([]domain.Genre, 0, len(r.genres))
	for _, genre := range r.genres {
		out = append(out, *genre)
	}
	return out, nil
}

func (r *mockGenreRepository) Delete(ctx context.Context, id int64) error {
	genre, ok := r.genres[id]
	if !ok {
		return pgx.ErrNoRows
	}
	delete(r.nameIndex, genre.Name)
	delete(r.genres, id)
	return nil
}

func TestGenreCreateUniqueName(t *testing.T) {
	svc := NewGenreService(newMockGenreRepository())
	ctx := context.Background()

	genre, err := svc.Create(ctx, "thriller")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if genre.ID == 0 {
		t.Fatal("expected generated id")
	}

	if _, err := svc.Create(ctx, "thriller"); !errors.Is(err, ErrGenreNameTaken) {
		t.Fatalf("got %v, want ErrGenreNameTaken", err)
	}
}

func TestGenreUpdate(t *testing.T) {
	svc := NewGenreService(newMockGenreRepository())
	ctx := context.Background()

	thriller, err := svc.Create(ctx, "thriller")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, "drama"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Renaming onto an existing name conflicts; renaming to itself is fine.
	if _, err := svc.Update(ctx, thriller.ID, "drama"); !errors.Is(err, ErrGenreNameTaken) {
		t.Fatalf("got %v, want ErrGenreNameTaken", err)
	}
	if _, err := svc.Update(ctx, thriller.ID, "thriller"); err != nil {
		t.Fatalf("self-rename: %v", err)
	}

	updated, err := svc.Update(ctx, thriller.ID, "noir")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "noir" {
		t.Fatalf("unexpected name: %q", updated.Name)
	}
}

func TestGenreDeleteMissing(t *testing.T) {
	svc := NewGenreService(newMockGenreRepository())

	if err := svc.Delete(context.Background(), 42); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("got %v, want pgx.ErrNoRows", err)
	}
}
