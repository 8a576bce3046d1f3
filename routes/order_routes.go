package routes

import (
	"olympus-app/config"
	"olympus-app/controllers"
	"olympus-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOrderRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	orderController := controllers.NewOrderController(db)

	api := app.Group(config.MAIN_ROUTES+"/orders", auth.RequireAuth)
	api.Post("/generate", orderController.GenerateOrder)
	api.Get("/bill_of_material", orderController.GetBillOfMaterial)
	api.Get("/quote", orderController.GetQuote)

	// Status transitions and the order board are staff actions.
	api.Patch("/accept", auth.RequireSuperadmin, orderController.AcceptOrder)
	api.Patch("/cancel", auth.RequireSuperadmin, orderController.CancelOrder)
	api.Get("/", auth.RequireSuperadmin, orderController.ListOrders)
	api.Patch("/schedule", auth.RequireSuperadmin, orderController.UpdateSchedule)
}
