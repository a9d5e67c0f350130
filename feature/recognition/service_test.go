package recognition

import (
	"context"
	"testing"
	"time"

	"icevision/core/errs"
	"icevision/feature/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func newService(db *gorm.DB) *Service {
	return NewService(db, employee.NewService(db, nil, "", zap.NewNop()), zap.NewNop())
}

func employeeColumns() []string {
	return []string{"id", "employee_code", "name", "email", "department", "face_photo_url", "face_photo_key", "face_descriptor", "is_active", "created_at", "updated_at"}
}

func TestRecord_KnownEmployee(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	svc := newService(db)

	rows := sqlmock.NewRows(employeeColumns()).
		AddRow(4, "E004", "Elisa Melo", "", "", "", "", "", true, time.Now(), time.Now())
	sqlMock.ExpectQuery("SELECT \\* FROM `employees` WHERE employee_code = \\?").
		WillReturnRows(rows)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `recognition_logs`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	sqlMock.ExpectCommit()

	log, err := svc.Record(context.Background(), LogInput{
		EmployeeCode: "E004",
		DeviceID:     "fridge-01",
		Confidence:   0.92,
		Success:      true,
	})
	require.NoError(t, err)
	require.NotNil(t, log.EmployeeID)
	assert.Equal(t, int64(4), *log.EmployeeID)
}

func TestRecord_UnknownEmployeeLogsAnyway(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	svc := newService(db)

	sqlMock.ExpectQuery("SELECT \\* FROM `employees` WHERE employee_code = \\?").
		WillReturnRows(sqlmock.NewRows(employeeColumns()))

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `recognition_logs`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	sqlMock.ExpectCommit()

	log, err := svc.Record(context.Background(), LogInput{
		EmployeeCode: "GHOST",
		DeviceID:     "fridge-01",
		Success:      false,
		ErrorMessage: "no match above threshold",
	})
	require.NoError(t, err)
	assert.Nil(t, log.EmployeeID)
}

func TestRecord_MissingDevice(t *testing.T) {
	db, _ := setupMockDB(t)
	svc := newService(db)

	_, err := svc.Record(context.Background(), LogInput{Success: true})
	assert.ErrorIs(t, err, errs.ErrValidation)
}
