package repositories

import (
	"testing"

	"olympus-app/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowStock(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT id, material_name, weight").
		WithArgs(false, models.LowStockThresholdGrams).
		WillReturnRows(sqlmock.NewRows([]string{"id", "material_name", "weight"}).
			AddRow(3, "gold", 12.5).
			AddRow(8, "ruby", 40.0))

	rows, err := NewInventoryRepository(db).LowStock()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "gold", rows[0].MaterialName)
	assert.InDelta(t, 12.5, rows[0].Weight, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockSummary(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("select i.id, i.material_name").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "material_name", "weight", "cost_p_gram", "stock_value", "incoming_grams"}).
			AddRow(1, "obsidian", 500.0, 12.0, 6000.0, 250.0).
			AddRow(2, "marble", 80.0, 6.0, 480.0, 0.0))

	rows, err := NewInventoryRepository(db).StockSummary()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.InDelta(t, 6000, rows[0].StockValue, 0.001)
	assert.InDelta(t, 250, rows[0].IncomingGrams, 0.001)
	assert.Zero(t, rows[1].IncomingGrams)
}
