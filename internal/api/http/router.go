package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rose-villa/complaint-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Complaints *handlers.ComplaintsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Check)
	app.Post("/submit-complaint", cfg.Complaints.Submit)
}
