package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/movie-catalog/internal/api/dto"
	"github.com/spec-kit/movie-catalog/internal/service"
	apperrors "github.com/spec-kit/movie-catalog/pkg/util"
)

// DirectorsHandler exposes catalog endpoints for directors.
type DirectorsHandler struct {
	directors *service.DirectorService
}

// NewDirectorsHandler constructs handler.
func NewDirectorsHandler(directorService *service.DirectorService) *DirectorsHandler {
	return &DirectorsHandler{directors: directorService}
}

// List handles GET /directors.
func (h *DirectorsHandler) List(c *fiber.Ctx) error {
	directors, err := h.directors.List(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}

	out := make([]dto.DirectorResponse, 0, len(directors))
	for i := range directors {
		out = append(out, dto.NewDirectorResponse(&directors[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get handles GET /directors/:id.
func (h *DirectorsHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid director id", nil)
	}

	director, err := h.directors.Get(c.UserContext(), int64(id))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewDirectorResponse(director)})
}

// Create handles POST /directors.
func (h *DirectorsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDirectorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	director, err := h.directors.Create(c.UserContext(), req.Name, req.DateOfBirth, req.Nationality)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewDirectorResponse(director)})
}

// Update handles PATCH /directors/:id.
func (h *DirectorsHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid director id", nil)
	}

	var req dto.UpdateDirectorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	director, err := h.directors.Update(c.UserContext(), int64(id), req.Name, req.DateOfBirth, req.Nationality)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewDirectorResponse(director)})
}

// Delete handles DELETE /directors/:id.
func (h *DirectorsHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid director id", nil)
	}

	if err := h.directors.Delete(c.UserContext(), int64(id)); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
