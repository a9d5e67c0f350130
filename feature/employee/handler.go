package employee

import (
	"icevision/core/errs"
	"icevision/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for employees.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the employee routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/employee_create", h.HandleCreate)
	app.Get("/employees_list", h.HandleList)
}

// HandleCreate enrolls a new employee.
// @Summary Create Employee
// @Description Enrolls a new employee with face-recognition metadata. Fails with 409 if the employee code already exists.
// @Tags employee
// @Accept json
// @Produce json
// @Param payload body CreateInput true "Employee payload"
// @Success 200 {object} map[string]interface{} "Created employee id and photo URL"
// @Failure 409 {object} map[string]string "Duplicate employee code"
// @Failure 422 {object} map[string]string "Validation error"
// @Router /api/employee_create [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid request body"})
	}

	emp, err := h.service.Create(c.Context(), input)
	if err != nil {
		l.Error("Employee create failed", zap.Error(err))
		return c.Status(errs.StatusCode(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"employee_id": emp.ID,
		"photo_url":   emp.FacePhotoURL,
	})
}

// HandleList returns all employees ordered by name.
// @Summary List Employees
// @Description Lists all enrolled employees ordered by name.
// @Tags employee
// @Produce json
// @Success 200 {object} map[string]interface{} "Employee list"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/employees_list [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	emps, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Employee list failed", zap.Error(err))
		return c.Status(errs.StatusCode(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"employees": emps,
	})
}
