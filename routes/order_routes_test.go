package routes

import (
	"net/http/httptest"
	"testing"
	"time"

	"olympus-app/config"
	"olympus-app/middleware"
	"olympus-app/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func customerToken(t *testing.T) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id":    float64(7),
		"role":       models.RoleCustomer,
		"session_id": "sess-customer-7",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.JWTSecret))
	require.NoError(t, err)
	return token
}

func expectActiveSession(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT (.+) FROM "user_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "session_id", "user_id", "role", "is_active", "expires_at", "last_activity_at",
		}).AddRow(1, "sess-customer-7", 7, models.RoleCustomer, true,
			time.Now().Add(time.Hour), time.Now()))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "user_sessions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

// A valid customer session must not reach the staff order-board actions.
func TestOrderBoardActionsForbiddenForCustomers(t *testing.T) {
	config.LoadConfig()
	db, mock := newMockDB(t)

	app := fiber.New()
	auth := middleware.NewAuthMiddleware(db)
	SetupOrderRoutes(app, db, auth)

	token := customerToken(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{fiber.MethodPatch, "/api/v1/orders/accept"},
		{fiber.MethodPatch, "/api/v1/orders/cancel"},
		{fiber.MethodGet, "/api/v1/orders/"},
		{fiber.MethodPatch, "/api/v1/orders/schedule"},
	} {
		expectActiveSession(mock)

		req := httptest.NewRequest(route.method, route.path, nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, route.path)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReturnsListForbiddenForCustomers(t *testing.T) {
	config.LoadConfig()
	db, mock := newMockDB(t)

	app := fiber.New()
	auth := middleware.NewAuthMiddleware(db)
	SetupShippingRoutes(app, db, auth)

	expectActiveSession(mock)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/returns/", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken(t))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
