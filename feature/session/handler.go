package session

import (
	"icevision/core/errs"
	"icevision/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for fridge sessions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the session routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/session_start", h.HandleStart)
	app.Post("/session_close", h.HandleClose)
	app.Get("/sessions_list", h.HandleList)
}

// HandleStart opens a session for an employee on a device.
// @Summary Start Session
// @Description Opens a fridge session. Fails with 404 for an unknown employee code and 409 when the device already has an open session.
// @Tags session
// @Accept json
// @Produce json
// @Param payload body OpenInput true "Session payload"
// @Success 200 {object} map[string]interface{} "Opened session"
// @Failure 404 {object} map[string]string "Unknown employee"
// @Failure 409 {object} map[string]string "Device busy"
// @Failure 422 {object} map[string]string "Validation error"
// @Router /api/session_start [post]
func (h *Handler) HandleStart(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var input OpenInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid request body"})
	}

	sess, err := h.service.Open(c.Context(), input)
	if err != nil {
		l.Error("Session start failed", zap.Error(err))
		return c.Status(errs.StatusCode(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"session_id": sess.ID,
		"opened_at":  sess.OpenedAt,
	})
}

// HandleClose closes a session and reconciles its captures.
// @Summary Close Session
// @Description Closes a fridge session, diffs the before and after captures and records consumption events. Fails with 409 when the session is already closed.
// @Tags session
// @Accept json
// @Produce json
// @Param payload body CloseInput true "Close payload"
// @Success 200 {object} map[string]interface{} "Close result with consumed entries"
// @Failure 404 {object} map[string]string "Unknown session"
// @Failure 409 {object} map[string]string "Session already closed"
// @Router /api/session_close [post]
func (h *Handler) HandleClose(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var input CloseInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.Close(c.Context(), input)
	if err != nil {
		l.Error("Session close failed", zap.Error(err))
		return c.Status(errs.StatusCode(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"session_id": result.SessionID,
		"consumed":   result.Consumed,
	})
}

// HandleList lists sessions, optionally filtered by employee code.
// @Summary List Sessions
// @Description Lists fridge sessions newest first. Pass employee_code to restrict the listing to one employee.
// @Tags session
// @Produce json
// @Param employee_code query string false "Employee code filter"
// @Success 200 {object} map[string]interface{} "Session list"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/sessions_list [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	sessions, err := h.service.List(c.Context(), c.Query("employee_code"))
	if err != nil {
		l.Error("Session list failed", zap.Error(err))
		return c.Status(errs.StatusCode(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"sessions": sessions,
	})
}
