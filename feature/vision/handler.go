package vision

import (
	"icevision/core/errs"
	"icevision/core/logger"
	"icevision/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the read-only reconciliation preview.
type Handler struct {
	source reconcile.SnapshotSource
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler. source is typically a SnapshotCache
// wrapping the store.
func NewHandler(source reconcile.SnapshotSource, logger *zap.Logger) *Handler {
	return &Handler{source: source, logger: logger}
}

// RegisterRoutes registers the vision routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/reconcile_preview", h.HandlePreview)
}

// HandlePreview diffs two captures without touching any session or the ledger.
// @Summary Reconcile Preview
// @Description Diffs a before and an after capture and returns the consumption entries that a session close with these captures would record. Writes nothing.
// @Tags vision
// @Produce json
// @Param before query int true "Before capture id"
// @Param after query int true "After capture id"
// @Success 200 {object} map[string]interface{} "Computed entries"
// @Failure 422 {object} map[string]string "Missing or malformed capture id"
// @Router /api/reconcile_preview [get]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	beforeID := int64(c.QueryInt("before", -1))
	afterID := int64(c.QueryInt("after", -1))
	if beforeID < 0 || afterID < 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "before and after capture ids are required"})
	}

	entries, err := reconcile.Preview(c.Context(), h.source, beforeID, afterID)
	if err != nil {
		l.Error("Reconcile preview failed", zap.Error(err))
		return c.Status(errs.StatusCode(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"entries": entries,
	})
}
