package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rose-villa/complaint-service/internal/api/dto"
	"github.com/rose-villa/complaint-service/internal/domain"
	"github.com/rose-villa/complaint-service/internal/service"
)

const successMessage = "Your complaint has been submitted successfully! We will get back to you soon."

// ComplaintsHandler exposes the submission endpoint.
type ComplaintsHandler struct {
	complaints *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaintService *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{complaints: complaintService}
}

// Submit handles POST /submit-complaint.
func (h *ComplaintsHandler) Submit(c *fiber.Ctx) error {
	sub := domain.ComplaintSubmission{
		Name:      strings.TrimSpace(c.FormValue("name")),
		Email:     strings.TrimSpace(c.FormValue("email")),
		Phone:     strings.TrimSpace(c.FormValue("phone")),
		Floor:     strings.TrimSpace(c.FormValue("floor")),
		Room:      strings.TrimSpace(c.FormValue("room")),
		Complaint: strings.TrimSpace(c.FormValue("complaint")),
	}

	// A missing or non-multipart image part is treated as no attachment.
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	emailID, err := h.complaints.Submit(c.UserContext(), sub, image)
	if err != nil {
		return err
	}

	return c.JSON(dto.ComplaintResponse{
		Success: true,
		Message: successMessage,
		EmailID: emailID,
	})
}
