package ledger

import (
	"icevision/core/errs"
	"icevision/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the consumption event ledger.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the ledger routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/consumption_events", h.HandleQuery)
}

// HandleQuery lists consumption events, optionally filtered.
// @Summary Query Consumption Events
// @Description Lists consumption events, newest first, optionally filtered by session or employee id.
// @Tags ledger
// @Produce json
// @Param session_id query int false "Session ID"
// @Param employee_id query int false "Employee ID"
// @Success 200 {object} map[string]interface{} "Event list"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/consumption_events [get]
func (h *Handler) HandleQuery(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	filter := Filter{
		SessionID:  int64(c.QueryInt("session_id")),
		EmployeeID: int64(c.QueryInt("employee_id")),
	}

	events, err := h.service.Query(c.Context(), filter)
	if err != nil {
		l.Error("Ledger query failed", zap.Error(err))
		return c.Status(errs.StatusCode(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"events":  events,
	})
}
