package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/movie-catalog/internal/api/dto"
	"github.com/spec-kit/movie-catalog/internal/repository"
	"github.com/spec-kit/movie-catalog/internal/service"
	apperrors "github.com/spec-kit/movie-catalog/pkg/util"
)

// MoviesHandler exposes catalog endpoints for movies.
type MoviesHandler struct {
	movies *service.MovieService
}

// NewMoviesHandler constructs handler.
func NewMoviesHandler(movieService *service.MovieService) *MoviesHandler {
	return &MoviesHandler{movies: movieService}
}

// List handles GET /movies with an optional title filter.
func (h *MoviesHandler) List(c *fiber.Ctx) error {
	movies, total, err := h.movies.List(c.UserContext(), c.Query("title"))
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(fiber.Map{
		"data":  dto.NewMovieListResponse(movies),
		"total": total,
	})
}

// Get handles GET /movies/:id.
func (h *MoviesHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid movie id", nil)
	}

	movie, err := h.movies.Get(c.UserContext(), int64(id))
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(fiber.Map{"data": dto.NewMovieResponse(movie)})
}

// Create handles POST /movies.
func (h *MoviesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" || req.DirectorID == 0 {
		return apperrors.NewValidationError("title and directorId required", nil)
	}

	movie, err := h.movies.Create(c.UserContext(), repository.MovieCreateParams{
		Title:      req.Title,
		Detail:     req.Detail,
		DirectorID: req.DirectorID,
		GenreIDs:   req.GenreIDs,
	})
	if err != nil {
		return mapMovieError(err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewMovieResponse(movie)})
}

// Update handles PATCH /movies/:id.
func (h *MoviesHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid movie id", nil)
	}

	var req dto.UpdateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	movie, err := h.movies.Update(c.UserContext(), int64(id), repository.MovieUpdateParams{
		Title:      req.Title,
		Detail:     req.Detail,
		DirectorID: req.DirectorID,
		GenreIDs:   req.GenreIDs,
	})
	if err != nil {
		return mapMovieError(err)
	}

	return c.JSON(fiber.Map{"data": dto.NewMovieResponse(movie)})
}

// Delete handles DELETE /movies/:id.
func (h *MoviesHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid movie id", nil)
	}

	if err := h.movies.Delete(c.UserContext(), int64(id)); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func mapMovieError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDirectorNotFound):
		return apperrors.NewNotFound("director", nil)
	case errors.Is(err, repository.ErrGenreNotFound):
		return apperrors.NewNotFound("genre", nil)
	}
	return apperrors.MapError(err)
}
