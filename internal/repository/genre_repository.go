package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/movie-catalog/internal/domain"
)

// GenreRepository defines persistence access for genres.
type GenreRepository interface {
	Create(ctx context.Context, genre *domain.Genre) error
	Update(ctx context.Context, genre *domain.Genre) error
	GetByID(ctx context.Context, id int64) (*domain.Genre, error)
	GetByName(ctx context.Context, name string) (*domain.Genre, error)
	List(ctx context.Context) ([]domain.Genre, error)
	Delete(ctx context.Context, id int64) error
}

type genreRepository struct {
	pool *pgxpool.Pool
}

// NewGenreRepository returns a Postgres-backed implementation.
func NewGenreRepository(pool *pgxpool.Pool) GenreRepository {
	return &genreRepository{pool: pool}
}

func (r *genreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	const query = `
        INSERT INTO genres (name)
        VALUES ($1)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query, genre.Name).
		Scan(&genre.ID, &genre.CreatedAt, &genre.UpdatedAt)
}

func (r *genreRepository) Update(ctx context.Context, genre *domain.Genre) error {
	const query = `
        UPDATE genres SET name=$1, updated_at=NOW()
        WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, genre.Name, genre.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *genreRepository) GetByID(ctx context.Context, id int64) (*domain.Genre, error) {
	const query = `
        SELECT id, name, created_at, updated_at
        FROM genres WHERE id=$1`

	var genre domain.Genre
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&genre.ID,
		&genre.Name,
		&genre.CreatedAt,
		&genre.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) GetByName(ctx context.Context, name string) (*domain.Genre, error) {
	const query = `
        SELECT id, name, created_at, updated_at
        FROM genres WHERE name=$1`

	var genre domain.Genre
	if err := r.pool.QueryRow(ctx, query, name).Scan(
		&genre.ID,
		&genre.Name,
		&genre.CreatedAt,
		&genre.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) List(ctx context.Context) ([]domain.Genre, error) {
	const query = `
        SELECT id, name, created_at, updated_at
        FROM genres ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []domain.Genre
	for rows.Next() {
		var genre domain.Genre
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.CreatedAt, &genre.UpdatedAt); err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	return genres, rows.Err()
}

func (r *genreRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
