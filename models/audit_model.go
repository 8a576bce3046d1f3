package models

import "time"

// AuditLog records every staff-triggered state change (order accepted,
// production finished, QA passed, PO received).
type AuditLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	RefNo     string    `json:"ref_no"`
	Entity    string    `json:"entity"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedBy int       `json:"created_by"`
}
