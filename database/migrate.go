package database

import (
	"olympus-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.Customer{},
		&models.Business{},

		&models.Material{},
		&models.Design{},
		&models.Engraving{},
		&models.Coating{},
		&models.ClipDesign{},
		&models.CapConfig{},
		&models.BarrelConfig{},
		&models.NibConfig{},
		&models.InkConfig{},
		&models.Pen{},

		&models.Address{},
		&models.Vendor{},
		&models.InventoryMaterial{},
		&models.WorkOrder{},
		&models.PurchaseOrder{},
		&models.QARecord{},
		&models.ShippingRecord{},
		&models.Return{},
		&models.Grievance{},
		&models.Cart{},
		&models.Transaction{},
		&models.AuditLog{},
	)
}
