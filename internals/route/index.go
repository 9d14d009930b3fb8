package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes mounts the three route groups:
//
//	/api/auth   login + token verification (public except verify)
//	/api/admin  management surface, admin tokens only
//	/api/user   student surface, user tokens only
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")
	AuthRoutes(api, db)
	AdminRoutes(api, db)
	UserRoutes(api, db)
}
