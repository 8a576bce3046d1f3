package routes

import (
	"olympus-app/config"
	"olympus-app/controllers"
	"olympus-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPurchaseOrderRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	purchaseOrderController := controllers.NewPurchaseOrderController(db)

	api := app.Group(config.MAIN_ROUTES+"/purchase-orders", auth.RequireAuth, auth.RequireSuperadmin)
	api.Post("/", purchaseOrderController.CreatePurchaseOrders)
	api.Get("/", purchaseOrderController.ListPurchaseOrders)
	api.Patch("/receive", purchaseOrderController.ReceivePurchaseOrder)
}
