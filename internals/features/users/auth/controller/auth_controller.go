package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pathshala_backend/internals/features/users/auth/dto"
	"pathshala_backend/internals/features/users/auth/service"
	helper "pathshala_backend/internals/helpers"
	authMw "pathshala_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/admin/login
func (ac *AuthController) AdminLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := service.AdminLogin(ac.DB, req.Name, req.Password)
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] Admin login: %s", req.Name)
	result["success"] = true
	result["message"] = "Login successful"
	return c.Status(fiber.StatusOK).JSON(result)
}

// POST /api/auth/user/login
func (ac *AuthController) UserLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := service.UserLogin(ac.DB, req.Name, req.Password)
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] User login: %s", req.Name)
	result["success"] = true
	result["message"] = "Login successful"
	return c.Status(fiber.StatusOK).JSON(result)
}

// GET /api/auth/verify-token
func (ac *AuthController) VerifyToken(c *fiber.Ctx) error {
	userType, _ := c.Locals(authMw.LocUserType).(string)
	id, _ := c.Locals(authMw.LocUserID).(string)

	result, err := service.VerifyPrincipal(ac.DB, userType, id)
	if err != nil {
		return err
	}

	result["success"] = true
	result["message"] = "Token is valid"
	return c.Status(fiber.StatusOK).JSON(result)
}

// POST /api/auth/logout — stateless; there is no server-side revocation list.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return helper.Success(c, "Logged out successfully", nil)
}
