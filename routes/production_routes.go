package routes

import (
	"olympus-app/config"
	"olympus-app/controllers"
	"olympus-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProductionRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	productionController := controllers.NewProductionController(db)

	api := app.Group(config.MAIN_ROUTES+"/production", auth.RequireAuth, auth.RequireSuperadmin)
	api.Post("/start", productionController.StartProduction)
	api.Post("/finish", productionController.FinishProduction)
	api.Get("/work_order", productionController.GetWorkOrder)
	api.Get("/availability", productionController.GetAvailability)
}
