package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestGetTableColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "INT", "NO", "PRI", nil, "auto_increment").
		AddRow("device_id", "varchar(255)", "NO", "", nil, "")

	mock.ExpectQuery("SHOW COLUMNS FROM `fridge_sessions`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "fridge_sessions")
	require.NoError(t, err)
	require.Len(t, columns, 2)

	// Names and types are normalized to lowercase
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "int", columns[0].Type)
	assert.Equal(t, "device_id", columns[1].Field)
}

func TestMissingColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "int", "NO", "PRI", nil, "").
		AddRow("label", "varchar(255)", "YES", "", nil, "")

	mock.ExpectQuery("SHOW COLUMNS FROM `vision_items`").WillReturnRows(rows)

	missing, err := MissingColumns(db, "vision_items", []string{"id", "label", "quantity", "capture_id"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"quantity", "capture_id"}, missing)
}
