package recognition

import (
	"context"
	"fmt"

	"icevision/core/errs"
	"icevision/feature/employee"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service records face recognition attempts.
type Service struct {
	db        *gorm.DB
	employees *employee.Service
	logger    *zap.Logger
}

// NewService creates a new recognition service.
func NewService(db *gorm.DB, employees *employee.Service, logger *zap.Logger) *Service {
	return &Service{
		db:        db,
		employees: employees,
		logger:    logger,
	}
}

// Record persists one recognition attempt. The employee code is resolved
// best-effort: an unknown or empty code leaves employee_id null rather than
// failing, since failed recognitions are exactly what this log is for.
func (s *Service) Record(ctx context.Context, input LogInput) (*Log, error) {
	if input.DeviceID == "" {
		return nil, fmt.Errorf("%w: device_id is required", errs.ErrValidation)
	}

	var employeeID *int64
	if input.EmployeeCode != "" {
		if emp, err := s.employees.FindByCode(ctx, input.EmployeeCode); err == nil {
			employeeID = &emp.ID
		}
	}

	log := Log{
		EmployeeID:   employeeID,
		DeviceID:     input.DeviceID,
		Confidence:   input.Confidence,
		Success:      input.Success,
		ErrorMessage: input.ErrorMessage,
	}

	if err := s.db.WithContext(ctx).Create(&log).Error; err != nil {
		return nil, fmt.Errorf("failed to record recognition attempt: %w", err)
	}

	return &log, nil
}
