package vision

import (
	"context"
	"fmt"

	"icevision/core/reconcile"

	"gorm.io/gorm"
)

// Store reads capture snapshots from the vision_items table. It implements
// reconcile.SnapshotSource.
type Store struct {
	db *gorm.DB
}

// NewStore creates a snapshot store on top of the given connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetItems returns all observations recorded for a capture id. An unknown
// capture id yields an empty slice, not an error.
func (s *Store) GetItems(ctx context.Context, captureID int64) ([]reconcile.Observation, error) {
	var items []Item
	if err := s.db.WithContext(ctx).Where("capture_id = ?", captureID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load vision items for capture %d: %w", captureID, err)
	}

	observations := make([]reconcile.Observation, 0, len(items))
	for _, item := range items {
		observations = append(observations, reconcile.Observation{
			Label:    item.Label,
			Quantity: item.Quantity,
		})
	}
	return observations, nil
}

// WithTx returns a store bound to the given transaction handle. Session close
// reads snapshots inside its transaction through this.
func (s *Store) WithTx(tx *gorm.DB) *Store {
	return &Store{db: tx}
}
