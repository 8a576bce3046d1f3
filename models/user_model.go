package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a back-office superadmin account.
type User struct {
	gorm.Model
	Username  string     `json:"username" gorm:"unique"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email" gorm:"unique"`
	Password  string     `json:"-"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	LastLogin *time.Time `json:"last_login"`
	CreatedBy int        `json:"created_by"`
	UpdatedBy int        `json:"-"`
}

type UserSession struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	SessionID      string    `json:"session_id" gorm:"uniqueIndex"`
	UserID         uint      `json:"user_id"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	CreatedAt      time.Time `json:"created_at"`
}

const (
	RoleSuperadmin = "superadmin"
	RoleCustomer   = "customer"
)
