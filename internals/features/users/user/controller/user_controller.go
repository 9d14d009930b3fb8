package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pathshala_backend/internals/features/users/user/dto"
	"pathshala_backend/internals/features/users/user/service"
	helper "pathshala_backend/internals/helpers"
	authMw "pathshala_backend/internals/middlewares/auth"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/admin/users
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	q := service.ListUsersQuery{
		Search:  strings.TrimSpace(c.Query("search")),
		GroupID: strings.TrimSpace(c.Query("groupId")),
		Paging:  helper.ResolvePaging(c, 100),
	}
	switch c.Query("isActive") {
	case "true":
		v := true
		q.IsActive = &v
	case "false":
		v := false
		q.IsActive = &v
	}

	users, total, err := service.ListUsers(uc.DB, q)
	if err != nil {
		log.Println("[ERROR] Failed to fetch users:", err)
		return err
	}
	return helper.SuccessList(c, users, total, q.Paging.Page, q.Paging.Limit)
}

// GET /api/admin/users/:id
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	user, err := service.GetUserByID(uc.DB, id)
	if err != nil {
		return err
	}
	return helper.Success(c, "User fetched successfully", user)
}

// POST /api/admin/users
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var adminID *uuid.UUID
	if raw, ok := c.Locals(authMw.LocUserID).(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			adminID = &id
		}
	}

	user, err := service.CreateUser(uc.DB, &req, adminID)
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] Created user %s", user.Name)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created successfully", user)
}

// PUT /api/admin/users/:id
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.UpdateUser(uc.DB, id, &req)
	if err != nil {
		return err
	}
	return helper.Success(c, "User updated successfully", user)
}

// DELETE /api/admin/users/:id
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	user, err := service.DeleteUser(uc.DB, id)
	if err != nil {
		return err
	}
	log.Printf("[SUCCESS] Deactivated user %s", user.ID)
	return helper.Success(c, "User deleted successfully", user)
}

// GET /api/admin/users/:id/credentials
func (uc *UserController) GetCredentials(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	creds, err := service.GetCredentials(uc.DB, id)
	if err != nil {
		return err
	}
	return helper.Success(c, "Credentials fetched successfully", creds)
}

// GET /api/admin/users/without-group
func (uc *UserController) GetUsersWithoutGroup(c *fiber.Ctx) error {
	users, err := service.ListUsersWithoutGroup(uc.DB)
	if err != nil {
		return err
	}
	return helper.Success(c, "Users fetched successfully", users)
}
