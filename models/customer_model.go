package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" gorm:"unique"`
	Phone     string `json:"phone"`
	Password  string `json:"-"`
}

// Business marks corporate buyers that order in bulk.
type Business struct {
	gorm.Model
	BusinessName string `json:"business_name"`
	ContactName  string `json:"contact_name"`
	Email        string `json:"email" gorm:"unique"`
	Phone        string `json:"phone"`
	GSTNumber    string `json:"gst_number"`
	CustomerID   *uint  `json:"customer_id"`
}

type Cart struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"created_at"`
	CustomerID uint      `json:"customer" gorm:"column:customer"`
	PenID      uint      `json:"pen" gorm:"column:pen"`
	Count      int       `json:"count" gorm:"default:1"`
	IsActive   bool      `json:"isActive" gorm:"default:true"`
}

type Grievance struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	CreatedAt      time.Time `json:"created_at"`
	CustomerID     uint      `json:"customer" gorm:"column:customer"`
	Message        string    `json:"message" gorm:"type:text"`
	DefectiveCount int       `json:"defective_count"`
	Status         string    `json:"status" gorm:"default:open"`
}
