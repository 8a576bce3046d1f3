package models

import "time"

// PurchaseOrder requests raw material from a vendor. TotalCost snapshots
// quantity x cost_p_gram at order time; receiving increments inventory once.
type PurchaseOrder struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	CreatedAt  time.Time  `json:"created_at"`
	MaterialID uint       `json:"material" gorm:"column:material"`
	Quantity   float64    `json:"quantity"` // grams
	Name       string     `json:"name"`
	TotalCost  float64    `json:"total_cost"`
	IsReceived bool       `json:"isReceived" gorm:"column:is_received"`
	ReceivedAt *time.Time `json:"received_at"`
	VendorID   *uint      `json:"vendor" gorm:"column:vendor"`
	CreatedBy  int        `json:"-"`
}
