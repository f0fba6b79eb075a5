package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/movie-catalog/internal/api/dto"
	"github.com/spec-kit/movie-catalog/internal/service"
	apperrors "github.com/spec-kit/movie-catalog/pkg/util"
)

// GenresHandler exposes catalog endpoints for genres.
type GenresHandler struct {
	genres *service.GenreService
}

// NewGenresHandler constructs handler.
func NewGenresHandler(genreService *service.GenreService) *GenresHandler {
	return &GenresHandler{genres: genreService}
}

// List handles GET /genres.
func (h *GenresHandler) List(c *fiber.Ctx) error {
	genres, err := h.genres.List(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}

	out := make([]dto.GenreResponse, 0, len(genres))
	for i := range genres {
		out = append(out, dto.NewGenreResponse(&genres[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get handles GET /genres/:id.
func (h *GenresHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid genre id", nil)
	}

	genre, err := h.genres.Get(c.UserContext(), int64(id))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewGenreResponse(genre)})
}

// Create handles POST /genres.
func (h *GenresHandler) Create(c *fiber.Ctx) error {
	var req dto.GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	genre, err := h.genres.Create(c.UserContext(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrGenreNameTaken) {
			return apperrors.NewConflict(err.Error(), nil)
		}
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewGenreResponse(genre)})
}

// Update handles PATCH /genres/:id.
func (h *GenresHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid genre id", nil)
	}

	var req dto.GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	genre, err := h.genres.Update(c.UserContext(), int64(id), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrGenreNameTaken) {
			return apperrors.NewConflict(err.Error(), nil)
		}
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewGenreResponse(genre)})
}

// Delete handles DELETE /genres/:id.
func (h *GenresHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid genre id", nil)
	}

	if err := h.genres.Delete(c.UserContext(), int64(id)); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
