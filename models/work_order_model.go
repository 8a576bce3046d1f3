package models

import (
	"time"

	"olympus-app/types"

	"golang.org/x/exp/slices"
)

const (
	StatusAwaitingConfirmation = "awaiting confirmation"
	StatusInProduction         = "in production"
	StatusCompleted            = "completed"
	StatusCancelled            = "cancelled"
)

// statusFlow lists the transitions a staff action may trigger. The flow is
// linear; cancelled is reachable from both pre-completion states.
var statusFlow = map[string][]string{
	StatusAwaitingConfirmation: {StatusInProduction, StatusCancelled},
	StatusInProduction:         {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to string) bool {
	return slices.Contains(statusFlow[from], to)
}

type WorkOrder struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"created_at"`
	OrderNo    string    `json:"order_no" gorm:"uniqueIndex"`
	CustomerID *uint     `json:"customer_id"`
	PenID      uint      `json:"pen" gorm:"column:pen"`
	Status     string    `json:"status"`
	Count      int       `json:"count"`
	Defective  int       `json:"defective"`
	StartDate  string    `json:"start_date" gorm:"type:date"`
	EndDate    string    `json:"end_date" gorm:"type:date"`

	UnitCost   float64 `json:"unit_cost"`
	Subtotal   float64 `json:"subtotal"`
	TaxAmt     float64 `json:"tax_amt"`
	GrandTotal float64 `json:"grand_total"`

	IsPaid     bool `json:"isPaid" gorm:"column:is_paid"`
	IsAccepted bool `json:"isAccepted" gorm:"column:is_accepted"`
	IsFinished bool `json:"isFinished" gorm:"column:is_finished"`
	IsBusiness bool `json:"is_business"`

	// MaterialsTaken flips exactly once, when production start deducts the
	// BOM grams from inventory.
	MaterialsTaken bool `json:"materials_taken" gorm:"column:materials_taken"`

	// Bill of materials snapshot taken at order time, material name -> grams
	// per unit.
	MaterialWts types.GramMap `json:"material_wts" gorm:"type:text"`
}

// Successful returns the unit count that survived production.
func (w *WorkOrder) Successful() int {
	return w.Count - w.Defective
}
