package routes

import (
	"olympus-app/config"
	"olympus-app/controllers"
	"olympus-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupVendorRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	vendorController := controllers.NewVendorController(db)

	api := app.Group(config.MAIN_ROUTES+"/vendors", auth.RequireAuth, auth.RequireSuperadmin)
	api.Post("/", vendorController.CreateVendor)
	api.Get("/", vendorController.ListVendors)
	api.Get("/:id", vendorController.GetVendor)
	api.Put("/:id", vendorController.UpdateVendor)
	api.Delete("/:id", vendorController.DeleteVendor)
}
