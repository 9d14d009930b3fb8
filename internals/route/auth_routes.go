package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "pathshala_backend/internals/features/users/auth/controller"
	middlewares "pathshala_backend/internals/middlewares"
	authMw "pathshala_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/admin/login", middlewares.LoginRateLimiter(), ctrl.AdminLogin)
	auth.Post("/user/login", middlewares.LoginRateLimiter(), ctrl.UserLogin)
	auth.Get("/verify-token", authMw.AuthMiddleware(db), ctrl.VerifyToken)
	auth.Post("/logout", authMw.AuthMiddleware(db), ctrl.Logout)
}
