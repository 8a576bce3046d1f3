package routes

import (
	"olympus-app/config"
	"olympus-app/controllers"
	"olympus-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddleware) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)
	api.Get("/session", auth.RequireAuth, authController.GetSession)
	api.Post("/logout", auth.RequireAuth, authController.Logout)

	users := app.Group(config.MAIN_ROUTES+"/users", auth.RequireAuth, auth.RequireSuperadmin)
	users.Get("/", authController.ListUsers)
	users.Post("/", authController.CreateUser)
	users.Put("/:id", authController.UpdateUser)
	users.Delete("/:id", authController.DeleteUser)
}
