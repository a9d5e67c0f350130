package employee

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
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	app := fiber.New()
	db, sqlMock := setupMockDB(t)
	svc := NewService(db, nil, "", zap.NewNop())
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, sqlMock
}

func TestHandleCreate(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	sqlMock.ExpectQuery("SELECT \\* FROM `employees` WHERE employee_code = \\?").
		WillReturnRows(sqlmock.NewRows(employeeColumns()))
	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `employees`").
		WillReturnResult(sqlmock.NewResult(5, 1))
	sqlMock.ExpectCommit()

	body := `{"employee_code":"E005","name":"Diego Reis","face_descriptor":"[0.3]"}`
	req := httptest.NewRequest("POST", "/employee_create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out map[string]any
	json.NewDecoder(resp.Body).Decode(&out)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, float64(5), out["employee_id"])
}

func TestHandleCreate_Conflict(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	rows := sqlmock.NewRows(employeeColumns()).
		AddRow(1, "E005", "Diego Reis", "", "", "", "", "", true, time.Now(), time.Now())
	sqlMock.ExpectQuery("SELECT \\* FROM `employees` WHERE employee_code = \\?").
		WillReturnRows(rows)

	body := `{"employee_code":"E005","name":"Someone Else"}`
	req := httptest.NewRequest("POST", "/employee_create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)
}

func TestHandleList(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	rows := sqlmock.NewRows(employeeColumns()).
		AddRow(1, "E001", "Ana", "", "", "", "", "", true, time.Now(), time.Now())
	sqlMock.ExpectQuery("SELECT \\* FROM `employees` ORDER BY name").
		WillReturnRows(rows)

	resp, err := app.Test(httptest.NewRequest("GET", "/employees_list", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out map[string]any
	json.NewDecoder(resp.Body).Decode(&out)
	assert.Equal(t, true, out["success"])
	assert.Len(t, out["employees"], 1)
}
