package routes

import (
	"olympus-app/config"
	"olympus-app/controllers"
	"olympus-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCustomerRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	customerController := controllers.NewCustomerController(db)

	api := app.Group(config.MAIN_ROUTES + "/customers")
	api.Post("/signup", customerController.Signup)
	api.Post("/login", customerController.Login)
	api.Get("/pens", customerController.GetAvailablePens)

	api.Get("/workorders", auth.RequireAuth, customerController.GetWorkOrders)
	api.Get("/history", auth.RequireAuth, customerController.GetHistory)
	api.Put("/pay", auth.RequireAuth, customerController.Pay)
	api.Get("/grievances", auth.RequireAuth, customerController.GetGrievances)
	api.Post("/cart", auth.RequireAuth, customerController.AddToCart)
	api.Get("/cart", auth.RequireAuth, customerController.GetCart)
}
