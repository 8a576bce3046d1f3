package models

import "time"

// ShippingRecord is created exactly once per passed QA record. The arrival
// column keeps its original misspelled name from the storefront schema.
type ShippingRecord struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	CreatedAt      time.Time `json:"created_at"`
	CustomerID     uint      `json:"customer" gorm:"column:customer"`
	PenID          uint      `json:"pen" gorm:"column:pen"`
	WorkOrderID    uint      `json:"work_order_id"`
	TotalCount     int       `json:"total_count"`
	DefectiveCount int       `json:"defective_count"`
	ShippedCount   int       `json:"shipped_count"`
	ArrivalDate    string    `json:"arival_date" gorm:"column:arival_date;type:date"`
}

const (
	ReturnStatusRequested = "requested"
	ReturnStatusApproved  = "approved"
	ReturnStatusRejected  = "rejected"
)

type Return struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	OrderID     uint      `json:"order_id"`
	Reason      string    `json:"reason"`
	Items       string    `json:"items"`
	RequestedAt string    `json:"requested_at" gorm:"type:date"`
	Status      string    `json:"status" gorm:"default:requested"`
	Notes       string    `json:"notes"`
}
