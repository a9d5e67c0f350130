package recognition

import (
	"icevision/core/errs"
	"icevision/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for recognition logs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the recognition routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/recognition_log", h.HandleLog)
}

// HandleLog records a recognition attempt.
// @Summary Record Recognition Attempt
// @Description Records one face recognition attempt for auditing. Unknown employee codes are logged with a null employee id.
// @Tags recognition
// @Accept json
// @Produce json
// @Param payload body LogInput true "Recognition attempt"
// @Success 200 {object} map[string]interface{} "Acknowledgement"
// @Failure 422 {object} map[string]string "Validation error"
// @Router /api/recognition_log [post]
func (h *Handler) HandleLog(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var input LogInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid request body"})
	}

	if _, err := h.service.Record(c.Context(), input); err != nil {
		l.Error("Recognition log failed", zap.Error(err))
		return c.Status(errs.StatusCode(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}
