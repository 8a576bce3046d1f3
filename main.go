package main

import (
	"fmt"
	"log"

	"olympus-app/config"
	"olympus-app/controllers/idgen"
	"olympus-app/database"
	"olympus-app/routes"
	"olympus-app/services"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	app := fiber.New()

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
	database.RunSeeders(db)

	idgen.Init()
	services.LoadPricing(config.DataDir)

	config.SetupCORS(app)
	routes.SetupRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
