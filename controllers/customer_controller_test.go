package controllers

import (
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

// The history view covers every order the customer ever placed, including
// completed and cancelled ones the pending list filters out.
func TestGetHistoryListsEveryState(t *testing.T) {
	db, mock := newMockDB(t)
	controller := NewCustomerController(db)

	app := fiber.New()
	app.Get("/history", func(ctx *fiber.Ctx) error {
		ctx.Locals("userID", float64(7))
		return controller.GetHistory(ctx)
	})

	mock.ExpectQuery(`SELECT (.+) FROM "work_orders"`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_no", "customer_id", "status", "count", "material_wts"}).
			AddRow(2, "ORD-2026-0002", 7, models.StatusCancelled, 1, `{}`).
			AddRow(1, "ORD-2026-0001", 7, models.StatusCompleted, 2, `{"jade":1}`))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/history", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body struct {
		Data []models.WorkOrder `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Data, 2)

	assert.Equal(t, models.StatusCancelled, body.Data[0].Status)
	assert.Equal(t, models.StatusCompleted, body.Data[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
