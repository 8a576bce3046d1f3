package controllers

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"olympus-app/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionApp(controller *AuthController, userID float64, role string) *fiber.App {
	app := fiber.New()
	app.Get("/session", func(ctx *fiber.Ctx) error {
		ctx.Locals("userID", userID)
		ctx.Locals("role", role)
		return controller.GetSession(ctx)
	})
	return app
}

// A customer token must resolve against the customers table, not leak the
// staff account that happens to share the numeric id.
func TestGetSessionCustomerRole(t *testing.T) {
	db, mock := newMockDB(t)
	controller := NewAuthController(db)
	app := sessionApp(controller, 9, models.RoleCustomer)

	mock.ExpectQuery(`SELECT (.+) FROM "customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email"}).
			AddRow(9, "Helena", "Voss", "helena@example.com"))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/session", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)

	assert.Equal(t, "Helena", data["first_name"])
	assert.Equal(t, models.RoleCustomer, data["role"])
	assert.NotContains(t, data, "username")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSessionStaffRole(t *testing.T) {
	db, mock := newMockDB(t)
	controller := NewAuthController(db)
	app := sessionApp(controller, 2, models.RoleSuperadmin)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "full_name", "email"}).
			AddRow(2, "atelier", "Atelier Admin", "admin@olympuspens.com"))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/session", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)

	assert.Equal(t, "atelier", data["username"])
	assert.Equal(t, models.RoleSuperadmin, data["role"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGeneratePassword(t *testing.T) {
	first, err := generatePassword()
	require.NoError(t, err)
	assert.Len(t, first, 16)

	_, err = hex.DecodeString(first)
	assert.NoError(t, err)

	second, err := generatePassword()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
