package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/movie-catalog/internal/domain"
)

// DirectorRepository defines persistence access for directors.
type DirectorRepository interface {
	Create(ctx context.Context, director *domain.Director) error
	Update(ctx context.Context, director *domain.Director) error
	GetByID(ctx context.Context, id int64) (*domain.Director, error)
	List(ctx context.Context) ([]domain.Director, error)
	Delete(ctx context.Context, id int64) error
}

type directorRepository struct {
	pool *pgxpool.Pool
}

// NewDirectorRepository returns a Postgres-backed implementation.
func NewDirectorRepository(pool *pgxpool.Pool) DirectorRepository {
	return &directorRepository{pool: pool}
}

func (r *directorRepository) Create(ctx context.Context, director *domain.Director) error {
	const query = `
        INSERT INTO directors (name, date_of_birth, nationality)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		director.Name,
		director.DateOfBirth,
		director.Nationality,
	).Scan(&director.ID, &director.CreatedAt, &director.UpdatedAt)
}

func (r *directorRepository) Update(ctx context.Context, director *domain.Director) error {
	const query = `
        UPDATE directors SET name=$1, date_of_birth=$2, nationality=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		director.Name,
		director.DateOfBirth,
		director.Nationality,
		director.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *directorRepository) GetByID(ctx context.Context, id int64) (*domain.Director, error) {
	const query = `
        SELECT id, name, date_of_birth, nationality, created_at, updated_at
        FROM directors WHERE id=$1`

	var director domain.Director
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&director.ID,
		&director.Name,
		&director.DateOfBirth,
		&director.Nationality,
		&director.CreatedAt,
		&director.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &director, nil
}

func (r *directorRepository) List(ctx context.Context) ([]domain.Director, error) {
	const query = `
        SELECT id, name, date_of_birth, nationality, created_at, updated_at
        FROM directors ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var directors []domain.Director
	for rows.Next() {
		var director domain.Director
		if err := rows.Scan(
			&director.ID,
			&director.Name,
			&director.DateOfBirth,
			&director.Nationality,
			&director.CreatedAt,
			&director.UpdatedAt,
		); err != nil {
			return nil, err
		}
		directors = append(directors, director)
	}
	return directors, rows.Err()
}

func (r *directorRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM directors WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
