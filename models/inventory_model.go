package models

import "time"

// InventoryMaterial rows are either raw stone stock (isPen = false, weight in
// grams) or finished pens ready for sale (isPen = true).
type InventoryMaterial struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time `json:"created_at"`
	IsPen        bool      `json:"isPen" gorm:"column:is_pen"`
	PenID        *uint     `json:"pen_id"`
	MaterialName string    `json:"material_name"`
	CostPGram    float64   `json:"cost_p_gram" gorm:"column:cost_p_gram"`
	Weight       float64   `json:"weight"`
	VendorID     *uint     `json:"vendor" gorm:"column:vendor"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LowStockThresholdGrams is the reorder line for raw materials.
const LowStockThresholdGrams = 100.0
