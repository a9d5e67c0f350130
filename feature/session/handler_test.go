package session

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	app := fiber.New()
	db, sqlMock := setupMockDB(t)
	handler := NewHandler(newService(db))
	handler.RegisterRoutes(app)
	return app, sqlMock
}

func TestHandleStart(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	empRows := sqlmock.NewRows(employeeColumns()).
		AddRow(3, "E001", "Alice", "", "", "", "", "", true, time.Now(), time.Now())
	sqlMock.ExpectQuery("SELECT \\* FROM `employees` WHERE employee_code = \\?").
		WillReturnRows(empRows)
	sqlMock.ExpectQuery("SELECT count\\(\\*\\) FROM `fridge_sessions`").
		WithArgs("fridge-1", StatusOpen).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `fridge_sessions`").
		WillReturnResult(sqlmock.NewResult(10, 1))
	sqlMock.ExpectCommit()

	body := `{"employee_code":"E001","device_id":"fridge-1"}`
	req := httptest.NewRequest("POST", "/session_start", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out map[string]any
	json.NewDecoder(resp.Body).Decode(&out)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, float64(10), out["session_id"])
}

func TestHandleStart_UnknownEmployee(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	sqlMock.ExpectQuery("SELECT \\* FROM `employees` WHERE employee_code = \\?").
		WillReturnRows(sqlmock.NewRows(employeeColumns()))

	body := `{"employee_code":"NOPE","device_id":"fridge-1"}`
	req := httptest.NewRequest("POST", "/session_start", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleClose_AlreadyClosed(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	sqlMock.ExpectBegin()
	sessRows := sqlmock.NewRows(sessionColumns()).
		AddRow(10, 3, "fridge-1", time.Now(), time.Now(), nil, nil, StatusClosed, "")
	sqlMock.ExpectQuery("SELECT \\* FROM `fridge_sessions` WHERE id = \\?").
		WillReturnRows(sessRows)
	sqlMock.ExpectExec("UPDATE `fridge_sessions` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	sqlMock.ExpectRollback()

	body := `{"session_id":10}`
	req := httptest.NewRequest("POST", "/session_close", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)
}

func TestHandleList(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	rows := sqlmock.NewRows([]string{"id", "employee_id", "employee_code", "employee_name",
		"device_id", "opened_at", "closed_at", "capture_before_id", "capture_after_id", "status", "notes"}).
		AddRow(10, 3, "E001", "Alice", "fridge-1", time.Now(), nil, nil, nil, StatusOpen, "")
	sqlMock.ExpectQuery("SELECT .+ FROM `fridge_sessions` JOIN employees").
		WillReturnRows(rows)

	req := httptest.NewRequest("GET", "/sessions_list", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out map[string]any
	json.NewDecoder(resp.Body).Decode(&out)
	assert.Equal(t, true, out["success"])
	sessions, ok := out["sessions"].([]any)
	require.True(t, ok)
	assert.Len(t, sessions, 1)
}
