package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/movie-catalog/internal/api/http/handlers"
	"github.com/spec-kit/movie-catalog/internal/auth"
	"github.com/spec-kit/movie-catalog/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Users     *handlers.UsersHandler
	Movies    *handlers.MoviesHandler
	Genres    *handlers.GenresHandler
	Directors *handlers.DirectorsHandler
	Gate      *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Health probes and the basic-credential
// endpoints are registered in front of the gate: register and login carry a
// Basic authorization header, which the gate would reject as a malformed
// bearer attempt. Everything below the gate runs through it; per-route
// guards decide which routes require an authenticated identity.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	app.Use(cfg.Gate.Handle)

	// Token rotation carries a bearer header, so it stays behind the gate.
	authGroup.Post("/token/access", cfg.Auth.RotateAccessToken)

	app.Get("/users/me", auth.RequireAuthenticated(), cfg.Users.Me)

	movies := app.Group("/movies")
	movies.Get("/", cfg.Movies.List)
	movies.Get("/:id", cfg.Movies.Get)
	movies.Post("/", auth.RequireRole(domain.RoleAdmin), cfg.Movies.Create)
	movies.Patch("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Movies.Update)
	movies.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Movies.Delete)

	genres := app.Group("/genres")
	genres.Get("/", cfg.Genres.List)
	genres.Get("/:id", cfg.Genres.Get)
	genres.Post("/", auth.RequireRole(domain.RoleAdmin), cfg.Genres.Create)
	genres.Patch("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Genres.Update)
	genres.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Genres.Delete)

	directors := app.Group("/directors")
	directors.Get("/", cfg.Directors.List)
	directors.Get("/:id", cfg.Directors.Get)
	directors.Post("/", auth.RequireRole(domain.RoleAdmin), cfg.Directors.Create)
	directors.Patch("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Directors.Update)
	directors.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Directors.Delete)
}
