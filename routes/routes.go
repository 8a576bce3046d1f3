package routes

import (
	"olympus-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires every domain group onto the app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	auth := middleware.NewAuthMiddleware(db)

	SetupAuthRoutes(app, db, auth)
	SetupCustomerRoutes(app, db, auth)
	SetupConfiguratorRoutes(app, db, auth)
	SetupOrderRoutes(app, db, auth)
	SetupProductionRoutes(app, db, auth)
	SetupInventoryRoutes(app, db, auth)
	SetupPurchaseOrderRoutes(app, db, auth)
	SetupQARoutes(app, db, auth)
	SetupShippingRoutes(app, db, auth)
	SetupVendorRoutes(app, db, auth)
	SetupAccountsRoutes(app, db, auth)
	SetupDashboardRoutes(app, db, auth)
}
