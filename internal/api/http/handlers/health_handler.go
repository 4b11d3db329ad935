package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rose-villa/complaint-service/internal/api/dto"
)

// HealthHandler responds to liveness probes.
type HealthHandler struct {
	serviceName string
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName}
}

// Check reports service liveness.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:  "healthy",
		Service: h.serviceName,
	})
}
