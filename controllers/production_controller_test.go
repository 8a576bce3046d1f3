package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"olympus-app/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
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

func workOrderRow(id int, status string, count int, materialsTaken bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "order_no", "customer_id", "status", "count", "defective", "materials_taken", "material_wts",
	}).AddRow(id, "ORD-2026-0001", nil, status, count, 0, materialsTaken, `{"jade":2.5}`)
}

// A finish that raced a concurrent finish reads "in production" but matches
// zero rows on the guarded update. It must conflict, not run twice.
func TestFinishProductionLostRaceConflicts(t *testing.T) {
	db, mock := newMockDB(t)
	controller := NewProductionController(db)

	app := fiber.New()
	app.Put("/production/finish", controller.FinishProduction)

	mock.ExpectQuery(`SELECT (.+) FROM "work_orders"`).
		WillReturnRows(workOrderRow(1, models.StatusInProduction, 10, true))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "work_orders"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	req := httptest.NewRequest(fiber.MethodPut, "/production/finish",
		strings.NewReader(`{"work_order_id":1,"defective":0}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinishProductionHappyPath(t *testing.T) {
	db, mock := newMockDB(t)
	controller := NewProductionController(db)

	app := fiber.New()
	app.Put("/production/finish", controller.FinishProduction)

	mock.ExpectQuery(`SELECT (.+) FROM "work_orders"`).
		WillReturnRows(workOrderRow(1, models.StatusInProduction, 10, true))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "work_orders"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "quality_assurances"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	// audit trail entry lands outside the transaction
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	req := httptest.NewRequest(fiber.MethodPut, "/production/finish",
		strings.NewReader(`{"work_order_id":1,"defective":0}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinishProductionRejectsDefectiveOverCount(t *testing.T) {
	db, mock := newMockDB(t)
	controller := NewProductionController(db)

	app := fiber.New()
	app.Put("/production/finish", controller.FinishProduction)

	mock.ExpectQuery(`SELECT (.+) FROM "work_orders"`).
		WillReturnRows(workOrderRow(1, models.StatusInProduction, 3, true))

	req := httptest.NewRequest(fiber.MethodPut, "/production/finish",
		strings.NewReader(`{"work_order_id":1,"defective":5}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinishProductionRejectsCompletedOrder(t *testing.T) {
	db, mock := newMockDB(t)
	controller := NewProductionController(db)

	app := fiber.New()
	app.Put("/production/finish", controller.FinishProduction)

	mock.ExpectQuery(`SELECT (.+) FROM "work_orders"`).
		WillReturnRows(workOrderRow(1, models.StatusCompleted, 10, true))

	req := httptest.NewRequest(fiber.MethodPut, "/production/finish",
		strings.NewReader(`{"work_order_id":1,"defective":0}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
