package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"icevision/core/errs"
	"icevision/core/reconcile"
	"icevision/feature/employee"
	"icevision/feature/ledger"
	"icevision/feature/vision"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service manages the fridge session lifecycle: open, close with
// reconciliation, and listing.
type Service struct {
	db        *gorm.DB
	employees *employee.Service
	snapshots *vision.Store
	events    *ledger.Service
	logger    *zap.Logger
}

// NewService creates a new session service.
func NewService(db *gorm.DB, employees *employee.Service, snapshots *vision.Store, events *ledger.Service, logger *zap.Logger) *Service {
	return &Service{
		db:        db,
		employees: employees,
		snapshots: snapshots,
		events:    events,
		logger:    logger,
	}
}

// Open starts a session for the employee identified by code. A device can only
// host one open session at a time; a second open on the same device yields
// errs.ErrConflict.
func (s *Service) Open(ctx context.Context, input OpenInput) (*FridgeSession, error) {
	if input.EmployeeCode == "" || input.DeviceID == "" {
		return nil, fmt.Errorf("%w: employee_code and device_id are required", errs.ErrValidation)
	}

	emp, err := s.employees.FindByCode(ctx, input.EmployeeCode)
	if err != nil {
		return nil, err
	}

	var open int64
	err = s.db.WithContext(ctx).Model(&FridgeSession{}).
		Where("device_id = ? AND status = ?", input.DeviceID, StatusOpen).
		Count(&open).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check device for open sessions: %w", err)
	}
	if open > 0 {
		return nil, fmt.Errorf("%w: device %q already has an open session", errs.ErrConflict, input.DeviceID)
	}

	sess := FridgeSession{
		EmployeeID: emp.ID,
		DeviceID:   input.DeviceID,
		Status:     StatusOpen,
	}
	if err := s.db.WithContext(ctx).Create(&sess).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("Session opened",
		zap.Int64("session_id", sess.ID),
		zap.String("employee_code", emp.EmployeeCode),
		zap.String("device_id", sess.DeviceID),
	)
	return &sess, nil
}

// Close ends a session and reconciles its captures. The session update and all
// resulting consumption events commit in one transaction. Closing an already
// closed session yields errs.ErrConflict. When either capture id is absent the
// session still closes, with no events.
func (s *Service) Close(ctx context.Context, input CloseInput) (*CloseResult, error) {
	result := &CloseResult{
		SessionID: input.SessionID,
		Consumed:  []reconcile.Entry{},
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sess FridgeSession
		err := tx.Where("id = ?", input.SessionID).First(&sess).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: session %d", errs.ErrNotFound, input.SessionID)
		}
		if err != nil {
			return fmt.Errorf("failed to load session %d: %w", input.SessionID, err)
		}

		// The status guard in the WHERE clause makes concurrent closes lose
		// cleanly: exactly one update flips open to closed.
		now := time.Now()
		res := tx.Model(&FridgeSession{}).
			Where("id = ? AND status = ?", sess.ID, StatusOpen).
			Updates(map[string]interface{}{
				"status":            StatusClosed,
				"closed_at":         now,
				"capture_before_id": input.CaptureBeforeID,
				"capture_after_id":  input.CaptureAfterID,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to close session %d: %w", sess.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: session %d is already closed", errs.ErrConflict, sess.ID)
		}

		if input.CaptureBeforeID == nil || input.CaptureAfterID == nil {
			s.logger.Warn("Session closed without a full capture pair, skipping reconciliation",
				zap.Int64("session_id", sess.ID),
			)
			return nil
		}

		store := s.snapshots.WithTx(tx)
		entries, err := reconcile.Preview(ctx, store, *input.CaptureBeforeID, *input.CaptureAfterID)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			event := ledger.Event{
				SessionID:    sess.ID,
				EmployeeID:   sess.EmployeeID,
				ProductLabel: entry.Label,
				Quantity:     entry.Quantity,
			}
			if err := s.events.Append(ctx, tx, &event); err != nil {
				return err
			}
		}
		result.Consumed = entries
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Session closed",
		zap.Int64("session_id", result.SessionID),
		zap.Int("consumed_labels", len(result.Consumed)),
	)
	return result, nil
}

// List returns sessions newest first, with the owning employee joined in.
// A non-empty employeeCode restricts the listing to that employee.
func (s *Service) List(ctx context.Context, employeeCode string) ([]ListItem, error) {
	q := s.db.WithContext(ctx).Table("fridge_sessions").
		Select("fridge_sessions.id, fridge_sessions.employee_id, employees.employee_code, " +
			"employees.name AS employee_name, fridge_sessions.device_id, fridge_sessions.opened_at, " +
			"fridge_sessions.closed_at, fridge_sessions.capture_before_id, fridge_sessions.capture_after_id, " +
			"fridge_sessions.status, fridge_sessions.notes").
		Joins("JOIN employees ON employees.id = fridge_sessions.employee_id")
	if employeeCode != "" {
		q = q.Where("employees.employee_code = ?", employeeCode)
	}

	var items []ListItem
	if err := q.Order("fridge_sessions.opened_at DESC").Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return items, nil
}
