package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/movie-catalog/internal/domain"
)

// Referenced-entity failures surfaced by movie writes.
var (
	ErrDirectorNotFound = errors.New("director not found")
	ErrGenreNotFound    = errors.New("genre not found")
)

// MovieCreateParams carries the fields needed to create a movie.
type MovieCreateParams struct {
	Title      string
	Detail     string
	DirectorID int64
	GenreIDs   []int64
}

// MovieUpdateParams carries partial updates; nil fields are left unchanged.
// A nil GenreIDs slice leaves the genre links untouched.
type MovieUpdateParams struct {
	Title      *string
	Detail     *string
	DirectorID *int64
	GenreIDs   []int64
}

// MovieRepository defines persistence access for movies.
type MovieRepository interface {
	List(ctx context.Context, title string) ([]domain.Movie, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Movie, error)
	Create(ctx context.Context, params MovieCreateParams) (int64, error)
	Update(ctx context.Context, id int64, params MovieUpdateParams) error
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	pool *pgxpool.Pool
}

// NewMovieRepository returns a Postgres-backed implementation.
func NewMovieRepository(pool *pgxpool.Pool) MovieRepository {
	return &movieRepository{pool: pool}
}

func (r *movieRepository) List(ctx context.Context, title string) ([]domain.Movie, int64, error) {
	const query = `
        SELECT m.id, m.title, m.detail, m.created_at, m.updated_at,
               d.id, d.name, d.date_of_birth, d.nationality, d.created_at, d.updated_at
        FROM movies m
        JOIN directors d ON d.id = m.director_id
        WHERE ($1 = '' OR m.title ILIKE '%' || $1 || '%')
        ORDER BY m.id`

	rows, err := r.pool.Query(ctx, query, title)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var movies []domain.Movie
	for rows.Next() {
		var movie domain.Movie
		var director domain.Director
		if err := rows.Scan(
			&movie.ID, &movie.Title, &movie.Detail, &movie.CreatedAt, &movie.UpdatedAt,
			&director.ID, &director.Name, &director.DateOfBirth, &director.Nationality,
			&director.CreatedAt, &director.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		movie.Director = &director
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachGenres(ctx, movies); err != nil {
		return nil, 0, err
	}
	return movies, int64(len(movies)), nil
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	const query = `
        SELECT m.id, m.title, m.detail, m.created_at, m.updated_at,
               d.id, d.name, d.date_of_birth, d.nationality, d.created_at, d.updated_at
        FROM movies m
        JOIN directors d ON d.id = m.director_id
        WHERE m.id = $1`

	var movie domain.Movie
	var director domain.Director
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&movie.ID, &movie.Title, &movie.Detail, &movie.CreatedAt, &movie.UpdatedAt,
		&director.ID, &director.Name, &director.DateOfBirth, &director.Nationality,
		&director.CreatedAt, &director.UpdatedAt,
	); err != nil {
		return nil, err
	}
	movie.Director = &director

	movies := []domain.Movie{movie}
	if err := r.attachGenres(ctx, movies); err != nil {
		return nil, err
	}
	return &movies[0], nil
}

// Create inserts the movie and its genre links in one transaction, validating
// the referenced director and genres first.
func (r *movieRepository) Create(ctx context.Context, params MovieCreateParams) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := checkDirector(ctx, tx, params.DirectorID); err != nil {
		return 0, err
	}
	if err := checkGenres(ctx, tx, params.GenreIDs); err != nil {
		return 0, err
	}

	var movieID int64
	const insertMovie = `
        INSERT INTO movies (title, detail, director_id)
        VALUES ($1, $2, $3)
        RETURNING id`
	if err := tx.QueryRow(ctx, insertMovie, params.Title, params.Detail, params.DirectorID).Scan(&movieID); err != nil {
		return 0, err
	}

	if err := insertGenreLinks(ctx, tx, movieID, params.GenreIDs); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return movieID, nil
}

// Update applies partial field updates and optionally replaces genre links,
// all in one transaction.
func (r *movieRepository) Update(ctx context.Context, id int64, params MovieUpdateParams) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM movies WHERE id=$1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return pgx.ErrNoRows
	}

	if params.DirectorID != nil {
		if err := checkDirector(ctx, tx, *params.DirectorID); err != nil {
			return err
		}
	}
	if params.GenreIDs != nil {
		if err := checkGenres(ctx, tx, params.GenreIDs); err != nil {
			return err
		}
	}

	const update = `
        UPDATE movies
        SET title = COALESCE($1, title),
            detail = COALESCE($2, detail),
            director_id = COALESCE($3, director_id),
            updated_at = NOW()
        WHERE id = $4`
	if _, err := tx.Exec(ctx, update, params.Title, params.Detail, params.DirectorID, id); err != nil {
		return err
	}

	if params.GenreIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM movie_genres WHERE movie_id=$1`, id); err != nil {
			return err
		}
		if err := insertGenreLinks(ctx, tx, id, params.GenreIDs); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM movies WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *movieRepository) attachGenres(ctx context.Context, movies []domain.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(movies))
	index := make(map[int64]*domain.Movie, len(movies))
	for i := range movies {
		ids = append(ids, movies[i].ID)
		index[movies[i].ID] = &movies[i]
	}

	const query = `
        SELECT mg.movie_id, g.id, g.name, g.created_at, g.updated_at
        FROM movie_genres mg
        JOIN genres g ON g.id = mg.genre_id
        WHERE mg.movie_id = ANY($1)
        ORDER BY g.id`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var movieID int64
		var genre domain.Genre
		if err := rows.Scan(&movieID, &genre.ID, &genre.Name, &genre.CreatedAt, &genre.UpdatedAt); err != nil {
			return err
		}
		if movie, ok := index[movieID]; ok {
			movie.Genres = append(movie.Genres, genre)
		}
	}
	return rows.Err()
}

func checkDirector(ctx context.Context, tx pgx.Tx, directorID int64) error {
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM directors WHERE id=$1)`, directorID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrDirectorNotFound
	}
	return nil
}

func checkGenres(ctx context.Context, tx pgx.Tx, genreIDs []int64) error {
	if len(genreIDs) == 0 {
		return nil
	}
	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM genres WHERE id = ANY($1)`, genreIDs).Scan(&count); err != nil {
		return err
	}
	if count != len(genreIDs) {
		return ErrGenreNotFound
	}
	return nil
}

func insertGenreLinks(ctx context.Context, tx pgx.Tx, movieID int64, genreIDs []int64) error {
	for _, genreID := range genreIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2)`,
			movieID, genreID,
		); err != nil {
			return err
		}
	}
	return nil
}
