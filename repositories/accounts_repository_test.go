package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestPeriodTotals(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("select").
		WithArgs("2026-08-01", "2026-08-31").
		WillReturnRows(sqlmock.NewRows([]string{"revenue", "expenses"}).
			AddRow(12500.0, 4300.0))

	totals, err := NewAccountsRepository(db).PeriodTotals("2026-08-01", "2026-08-31")
	require.NoError(t, err)

	assert.InDelta(t, 12500, totals.Revenue, 0.001)
	assert.InDelta(t, 4300, totals.Expenses, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseBreakdownFillsPercentages(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("select category").
		WithArgs("2026-02-01", "2026-08-01").
		WillReturnRows(sqlmock.NewRows([]string{"category", "amount", "count"}).
			AddRow("materials", 300.0, 4).
			AddRow("labor", 100.0, 2))

	rows, err := NewAccountsRepository(db).ExpenseBreakdown("2026-02-01", "2026-08-01")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.InDelta(t, 75, rows[0].Percentage, 0.001)
	assert.InDelta(t, 25, rows[1].Percentage, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseBreakdownEmptyWindow(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("select category").
		WithArgs("2026-02-01", "2026-08-01").
		WillReturnRows(sqlmock.NewRows([]string{"category", "amount", "count"}))

	rows, err := NewAccountsRepository(db).ExpenseBreakdown("2026-02-01", "2026-08-01")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMonthlyTrendsComputesProfit(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("select to_char").
		WithArgs("2026-02-01").
		WillReturnRows(sqlmock.NewRows([]string{"month", "revenue", "expenses"}).
			AddRow("2026-02", 5000.0, 2000.0).
			AddRow("2026-03", 1000.0, 3000.0))

	rows, err := NewAccountsRepository(db).MonthlyTrends("2026-02-01")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.InDelta(t, 3000, rows[0].Profit, 0.001)
	assert.InDelta(t, -2000, rows[1].Profit, 0.001)
}

func TestPendingReceivables(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("select coalesce").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(9800.0))

	total, err := NewAccountsRepository(db).PendingReceivables()
	require.NoError(t, err)
	assert.InDelta(t, 9800, total, 0.001)
}

func TestTopCustomers(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("select t.customer_id").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(
			[]string{"customer_id", "customer_name", "total_amount", "transaction_count"}).
			AddRow(7, "Ada Lovelace", 42000.0, 3))

	rows, err := NewAccountsRepository(db).TopCustomers(5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ada Lovelace", rows[0].CustomerName)
	assert.InDelta(t, 42000, rows[0].TotalAmount, 0.001)
}
