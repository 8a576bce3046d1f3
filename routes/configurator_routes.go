package routes

import (
	"olympus-app/config"
	"olympus-app/controllers"
	"olympus-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupConfiguratorRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	configuratorController := controllers.NewConfiguratorController(db)

	pens := app.Group(config.MAIN_ROUTES+"/pens", auth.RequireAuth)
	pens.Post("/", configuratorController.CreatePen)
	pens.Get("/details", configuratorController.GetPenDetails)

	configure := app.Group(config.MAIN_ROUTES+"/configure", auth.RequireAuth)
	configure.Post("/cap", configuratorController.ConfigureCap)
	configure.Post("/barrel", configuratorController.ConfigureBarrel)
	configure.Post("/nib", configuratorController.ConfigureNib)
	configure.Post("/ink", configuratorController.ConfigureInk)
	configure.Post("/coating", configuratorController.ConfigureCoating)
}
