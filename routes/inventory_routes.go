package routes

import (
	"olympus-app/config"
	"olympus-app/controllers"
	"olympus-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupInventoryRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	inventoryController := controllers.NewInventoryController(db)

	api := app.Group(config.MAIN_ROUTES+"/inventory", auth.RequireAuth, auth.RequireSuperadmin)
	api.Get("/", inventoryController.GetInventory)
	api.Get("/materials", inventoryController.GetMaterials)
	api.Get("/export", inventoryController.ExportExcel)
	api.Post("/", inventoryController.CreateMaterial)
	api.Put("/:id", inventoryController.UpdateMaterial)
}
