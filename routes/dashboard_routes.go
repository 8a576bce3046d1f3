package routes

import (
	"olympus-app/config"
	"olympus-app/controllers"
	"olympus-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	dashboardController := controllers.NewDashboardController(db)

	api := app.Group(config.MAIN_ROUTES+"/dashboard", auth.RequireAuth, auth.RequireSuperadmin)
	api.Get("/summary", dashboardController.GetSummary)
}
