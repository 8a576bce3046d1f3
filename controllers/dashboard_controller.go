package controllers

import (
	"olympus-app/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetSummary is the landing-page widget feed.
func (c *DashboardController) GetSummary(ctx *fiber.Ctx) error {
	repo := repositories.NewDashboardRepository(c.DB)
	summary, err := repo.Summary()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Dashboard summary", "data": summary})
}
