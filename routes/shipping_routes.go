package routes

import (
	"olympus-app/config"
	"olympus-app/controllers"
	"olympus-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupShippingRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	shippingController := controllers.NewShippingController(db)

	api := app.Group(config.MAIN_ROUTES+"/shipping", auth.RequireAuth, auth.RequireSuperadmin)
	api.Get("/", shippingController.ListShipments)
	api.Get("/:id", shippingController.GetShipment)
	api.Get("/:id/packing-slip", shippingController.GetPackingSlip)

	returns := app.Group(config.MAIN_ROUTES+"/returns", auth.RequireAuth)
	returns.Post("/", shippingController.CreateReturn)
	returns.Get("/", auth.RequireSuperadmin, shippingController.ListReturns)
	returns.Patch("/:id", auth.RequireSuperadmin, shippingController.UpdateReturn)
}
