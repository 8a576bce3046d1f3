package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePayableDefaults(t *testing.T) {
	LoadPricing(t.TempDir()) // no JSON files, built-in defaults

	payable := CalculatePayable(1000, 2, nil)

	// per item: 1000 cost + 1200 labour + 150 packaging + 250 shipping
	assert.InDelta(t, 5200, payable.Subtotal, 0.001)
	assert.InDelta(t, 936, payable.TaxAmount, 0.001)
	assert.InDelta(t, 6136, payable.TotalWithTax, 0.001)
}

func TestCalculatePayableCustomTax(t *testing.T) {
	LoadPricing(t.TempDir())

	zero := 0.0
	payable := CalculatePayable(1000, 1, &zero)
	assert.InDelta(t, 2600, payable.Subtotal, 0.001)
	assert.InDelta(t, 0, payable.TaxAmount, 0.001)
	assert.InDelta(t, 2600, payable.TotalWithTax, 0.001)
}

func TestCalculatePayableZeroQuantity(t *testing.T) {
	LoadPricing(t.TempDir())

	// quantity is clamped to 1
	one := CalculatePayable(500, 1, nil)
	zero := CalculatePayable(500, 0, nil)
	assert.Equal(t, one, zero)
}

func TestManufacturingDays(t *testing.T) {
	LoadPricing(t.TempDir())

	// production 7 + qc 2
	assert.Equal(t, 9, ManufacturingDays(false, 0))
	// + ordering 5 when material must be purchased
	assert.Equal(t, 14, ManufacturingDays(true, 0))
	// + backlog 4 only above the limit
	assert.Equal(t, 9, ManufacturingDays(false, BacklogOrderLimit))
	assert.Equal(t, 13, ManufacturingDays(false, BacklogOrderLimit+1))
	assert.Equal(t, 18, ManufacturingDays(true, 10))
}

func TestStonePricePerGram(t *testing.T) {
	LoadPricing(t.TempDir())

	assert.InDelta(t, 5400, StonePricePerGram("gold"), 0.001)
	assert.InDelta(t, 5400, StonePricePerGram("Gold"), 0.001)
	assert.Zero(t, StonePricePerGram("unobtainium"))
}

func TestGetAmountSummary(t *testing.T) {
	LoadPricing(t.TempDir())

	summary := GetAmountSummary()
	assert.Equal(t, "INR", summary.Currency)
	assert.InDelta(t, 1200, summary.LabourTotal, 0.001)
	assert.InDelta(t, 250, summary.ShippingTotal, 0.001)
	assert.InDelta(t, 18, summary.TaxPercent, 0.001)
}
