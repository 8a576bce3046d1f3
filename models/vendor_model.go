package models

import "time"

type Address struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	State       string    `json:"state"`
	City        string    `json:"city"`
	Pincode     string    `json:"pincode"`
	AddressLine string    `json:"address_line"`
}

type Vendor struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	CreatedAt       time.Time `json:"created_at"`
	VendorName      string    `json:"vendor_name"`
	VendorEmail     string    `json:"vendor_email"`
	VendorPhone     string    `json:"vendor_phone"`
	VendorAddressID *uint     `json:"vendor_address" gorm:"column:vendor_address"`
	Address         *Address  `json:"address,omitempty" gorm:"foreignKey:VendorAddressID"`
}
