package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "pathshala_backend/internals/helpers"
)

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.Success(c, "Pathshala backend is running", fiber.Map{
			"service": "pathshala_backend",
			"version": "1.0.0",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			return helper.Error(c, fiber.StatusServiceUnavailable, "Database unreachable")
		}
		return helper.Success(c, "OK", fiber.Map{"database": "up"})
	})
}
