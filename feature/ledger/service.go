package ledger

import (
	"context"
	"fmt"

	"icevision/core/errs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service is the append-only consumption event ledger. It deliberately
// exposes no update or delete operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new ledger service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Append writes one event on the given handle. The handle is usually the
// session-close transaction so that events and the session update commit or
// roll back together.
func (s *Service) Append(ctx context.Context, tx *gorm.DB, event *Event) error {
	if event.Quantity <= 0 {
		return fmt.Errorf("%w: event quantity must be positive, got %d", errs.ErrValidation, event.Quantity)
	}
	if err := tx.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to append consumption event: %w", err)
	}
	return nil
}

// Query returns events matching the filter, newest first.
func (s *Service) Query(ctx context.Context, filter Filter) ([]Event, error) {
	q := s.db.WithContext(ctx).Model(&Event{})
	if filter.SessionID != 0 {
		q = q.Where("session_id = ?", filter.SessionID)
	}
	if filter.EmployeeID != 0 {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}

	var events []Event
	if err := q.Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to query consumption events: %w", err)
	}
	return events, nil
}
