package models

import "time"

const (
	QAStatusPending = "pending"
	QAStatusPassed  = "passed"
	QAStatusFailed  = "failed"
)

// QARecord gates shipment of a finished work order.
type QARecord struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	CreatedAt         time.Time `json:"created_at"`
	WorkOrderID       uint      `json:"work_order_id"`
	InspectorName     string    `json:"inspector_name"`
	InspectionDate    string    `json:"inspection_date" gorm:"type:date"`
	Status            string    `json:"status" gorm:"default:pending"`
	DefectsFound      int       `json:"defects_found"`
	DefectDescription string    `json:"defect_description"`
	Notes             string    `json:"notes"`
}

func (QARecord) TableName() string {
	return "quality_assurances"
}
