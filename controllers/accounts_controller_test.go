package controllers

import (
	"testing"
	"time"

	"olympus-app/models"

	"github.com/stretchr/testify/assert"
)

func TestPeriodWindow(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	curStart, curEnd, prevStart, prevEnd := periodWindow("month", now)
	assert.Equal(t, now, curEnd)
	assert.Equal(t, now.AddDate(0, -1, 0), curStart)
	assert.Equal(t, curStart, prevEnd)
	// previous window covers the same span as the current one
	assert.Equal(t, curEnd.Sub(curStart), prevEnd.Sub(prevStart))

	curStart, _, _, _ = periodWindow("quarter", now)
	assert.Equal(t, now.AddDate(0, -3, 0), curStart)

	curStart, _, _, _ = periodWindow("year", now)
	assert.Equal(t, now.AddDate(-1, 0, 0), curStart)

	// unknown period falls back to month
	curStart, _, _, _ = periodWindow("fortnight", now)
	assert.Equal(t, now.AddDate(0, -1, 0), curStart)
}

func TestTransactionInputCheck(t *testing.T) {
	valid := transactionInput{
		TransactionDate: "2026-08-28",
		TransactionType: models.TxTypeExpense,
		Category:        "materials",
		Amount:          100,
		PaymentMethod:   "cash",
	}
	assert.NoError(t, valid.check())

	badType := valid
	badType.TransactionType = "refund"
	assert.Error(t, badType.check())

	badCategory := valid
	badCategory.Category = "misc"
	assert.Error(t, badCategory.check())

	badMethod := valid
	badMethod.PaymentMethod = "barter"
	assert.Error(t, badMethod.check())

	badDate := valid
	badDate.TransactionDate = "28-08-2026"
	assert.Error(t, badDate.check())

	noMethod := valid
	noMethod.PaymentMethod = ""
	assert.NoError(t, noMethod.check())
}
