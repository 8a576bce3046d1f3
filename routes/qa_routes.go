package routes

import (
	"olympus-app/config"
	"olympus-app/controllers"
	"olympus-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupQARoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	qaController := controllers.NewQAController(db)

	api := app.Group(config.MAIN_ROUTES+"/qa", auth.RequireAuth, auth.RequireSuperadmin)
	api.Get("/", qaController.ListRecords)
	api.Post("/", qaController.CreateRecord)
	api.Post("/pass", qaController.PassRecord)
	api.Put("/:id", qaController.UpdateRecord)
	api.Delete("/:id", qaController.DeleteRecord)
}
