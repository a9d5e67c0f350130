package employee

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"icevision/core/errs"
	"icevision/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles employee enrollment and lookup.
type Service struct {
	db     *gorm.DB
	client storage.Client // nil when face photo storage is not configured
	bucket string
	logger *zap.Logger
}

// NewService creates a new employee service. client may be nil; in that case
// face photos are accepted but not stored.
func NewService(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Create enrolls a new employee. The employee code must be unique; a
// duplicate yields errs.ErrConflict. When storage is configured the face
// photo is decoded and uploaded, and its URL/key recorded on the row.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Employee, error) {
	if input.EmployeeCode == "" || input.Name == "" {
		return nil, fmt.Errorf("%w: employee_code and name are required", errs.ErrValidation)
	}

	var existing Employee
	err := s.db.WithContext(ctx).Where("employee_code = ?", input.EmployeeCode).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: employee code %q already exists", errs.ErrConflict, input.EmployeeCode)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check employee code: %w", err)
	}

	photoURL, photoKey, err := s.storePhoto(ctx, input.FacePhotoBase64)
	if err != nil {
		return nil, err
	}

	emp := Employee{
		EmployeeCode:   input.EmployeeCode,
		Name:           input.Name,
		Email:          input.Email,
		Department:     input.Department,
		FacePhotoURL:   photoURL,
		FacePhotoKey:   photoKey,
		FaceDescriptor: input.FaceDescriptor,
		IsActive:       true,
	}

	if err := s.db.WithContext(ctx).Create(&emp).Error; err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.logger.Info("Employee enrolled",
		zap.String("employee_code", emp.EmployeeCode),
		zap.Int64("employee_id", emp.ID),
	)

	return &emp, nil
}

// storePhoto decodes the base64 payload and uploads it to the face bucket.
// Returns empty strings when storage is disabled or no photo was provided.
func (s *Service) storePhoto(ctx context.Context, photoBase64 string) (url, key string, err error) {
	if s.client == nil || photoBase64 == "" {
		return "", "", nil
	}

	// Frontends commonly send data URIs; strip the prefix if present.
	if idx := strings.Index(photoBase64, ","); idx != -1 && strings.HasPrefix(photoBase64, "data:") {
		photoBase64 = photoBase64[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(photoBase64)
	if err != nil {
		return "", "", fmt.Errorf("%w: face_photo_base64 is not valid base64", errs.ErrValidation)
	}

	key = "faces/" + uuid.NewString() + ".jpg"
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to store face photo: %w", err)
	}

	return s.bucket + "/" + key, key, nil
}

// FindByCode looks up an employee by business key.
func (s *Service) FindByCode(ctx context.Context, code string) (*Employee, error) {
	var emp Employee
	err := s.db.WithContext(ctx).Where("employee_code = ?", code).First(&emp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: employee %q", errs.ErrNotFound, code)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return &emp, nil
}

// List returns all employees ordered by name.
func (s *Service) List(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	if err := s.db.WithContext(ctx).Order("name").Find(&emps).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return emps, nil
}
