package routes

import (
	"olympus-app/config"
	"olympus-app/controllers"
	"olympus-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAccountsRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	accountsController := controllers.NewAccountsController(db)

	api := app.Group(config.MAIN_ROUTES+"/accounts", auth.RequireAuth, auth.RequireSuperadmin)
	api.Get("/transactions", accountsController.ListTransactions)
	api.Post("/transactions", accountsController.CreateTransaction)
	api.Put("/transactions/:id", accountsController.UpdateTransaction)
	api.Delete("/transactions/:id", accountsController.DeleteTransaction)
	api.Get("/summary", accountsController.GetSummary)
	api.Get("/analytics", accountsController.GetAnalytics)
	api.Post("/payments", accountsController.RecordPayment)
	api.Get("/export", accountsController.ExportExcel)
}
