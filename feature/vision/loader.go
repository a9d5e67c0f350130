package vision

import (
	"time"

	"icevision/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store   *Store
	handler *Handler
}

// NewFeature creates the vision feature. The preview endpoint reads through a
// snapshot cache configured by cfg.
func NewFeature(db *gorm.DB, cfg reconcile.Config, logger *zap.Logger) *Feature {
	store := NewStore(db)
	cache := reconcile.NewSnapshotCache(store, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	return &Feature{
		store:   store,
		handler: NewHandler(cache, logger),
	}
}

// Store exposes the snapshot store for other features (session close reads
// captures through it inside its transaction).
func (f *Feature) Store() *Store {
	return f.store
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "vision"
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
