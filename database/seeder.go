package database

import (
	"log"

	"olympus-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunSeeders fills an empty database with the stock the workshop opens with
// and a bootstrap superadmin. Every seeder is idempotent.
func RunSeeders(db *gorm.DB) {
	seedSuperadmin(db)
	seedInventory(db)
	seedInkConfigs(db)
}

func seedSuperadmin(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash bootstrap password: %v", err)
		return
	}

	admin := models.User{
		Username: "admin",
		FullName: "Workshop Admin",
		Email:    "admin@olympuspens.com",
		Password: string(hashed),
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed superadmin: %v", err)
		return
	}
	log.Println("Seeded bootstrap superadmin (admin@olympuspens.com)")
}

func seedInventory(db *gorm.DB) {
	var count int64
	db.Model(&models.InventoryMaterial{}).Where("is_pen = ?", false).Count(&count)
	if count > 0 {
		return
	}

	stones := []models.InventoryMaterial{
		{MaterialName: "obsidian", Weight: 5000, CostPGram: 12},
		{MaterialName: "marble", Weight: 8000, CostPGram: 6},
		{MaterialName: "gold", Weight: 400, CostPGram: 5400},
		{MaterialName: "silver", Weight: 1200, CostPGram: 80},
		{MaterialName: "titanium", Weight: 2500, CostPGram: 30},
		{MaterialName: "ruby", Weight: 150, CostPGram: 900},
		{MaterialName: "sapphire", Weight: 150, CostPGram: 850},
		{MaterialName: "onyx", Weight: 3000, CostPGram: 9},
		{MaterialName: "pearl", Weight: 500, CostPGram: 120},
		{MaterialName: "ebony", Weight: 4000, CostPGram: 4},
	}
	for i := range stones {
		stones[i].IsPen = false
	}
	if err := db.Create(&stones).Error; err != nil {
		log.Printf("Failed to seed inventory: %v", err)
	}
}

func seedInkConfigs(db *gorm.DB) {
	var count int64
	db.Model(&models.InkConfig{}).Count(&count)
	if count > 0 {
		return
	}

	inks := []models.InkConfig{
		{TypeName: "midnight blue", Description: "Deep blue iron-gall ink", HexCode: "#191970", Cost: 450},
		{TypeName: "imperial black", Description: "Carbon black document ink", HexCode: "#0a0a0a", Cost: 400},
		{TypeName: "oxblood", Description: "Dark red ceremonial ink", HexCode: "#4a0000", Cost: 520},
		{TypeName: "emerald", Description: "Green shimmer ink", HexCode: "#046307", Cost: 560},
	}
	if err := db.Create(&inks).Error; err != nil {
		log.Printf("Failed to seed ink configs: %v", err)
	}
}
