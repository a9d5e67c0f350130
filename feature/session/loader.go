package session

import (
	"icevision/feature/employee"
	"icevision/feature/ledger"
	"icevision/feature/vision"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the session feature.
func NewFeature(db *gorm.DB, employees *employee.Service, snapshots *vision.Store, events *ledger.Service, logger *zap.Logger) *Feature {
	svc := NewService(db, employees, snapshots, events, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "session"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
