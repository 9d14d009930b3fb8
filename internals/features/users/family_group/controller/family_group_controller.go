package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pathshala_backend/internals/features/users/family_group/dto"
	"pathshala_backend/internals/features/users/family_group/service"
	helper "pathshala_backend/internals/helpers"
	authMw "pathshala_backend/internals/middlewares/auth"
)

var validate = validator.New()

type FamilyGroupController struct {
	DB *gorm.DB
}

func NewFamilyGroupController(db *gorm.DB) *FamilyGroupController {
	return &FamilyGroupController{DB: db}
}

// GET /api/admin/groups
func (gc *FamilyGroupController) GetGroups(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10)
	groups, total, err := service.ListGroups(gc.DB, strings.TrimSpace(c.Query("search")), paging)
	if err != nil {
		log.Println("[ERROR] Failed to fetch groups:", err)
		return err
	}
	return helper.SuccessList(c, groups, total, paging.Page, paging.Limit)
}

// GET /api/admin/groups/:id
func (gc *FamilyGroupController) GetGroup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid group ID")
	}
	group, err := service.GetGroupByID(gc.DB, id)
	if err != nil {
		return err
	}
	return helper.Success(c, "Group fetched successfully", group)
}

// POST /api/admin/groups
func (gc *FamilyGroupController) CreateGroup(c *fiber.Ctx) error {
	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	adminIDStr, _ := c.Locals(authMw.LocUserID).(string)
	adminID, err := uuid.Parse(adminIDStr)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	group, err := service.CreateGroup(gc.DB, &req, adminID)
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] Created group %s", group.GroupName)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Group created successfully", group)
}

// PUT /api/admin/groups/:id
func (gc *FamilyGroupController) UpdateGroup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid group ID")
	}

	var req dto.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	group, err := service.UpdateGroup(gc.DB, id, &req)
	if err != nil {
		return err
	}
	return helper.Success(c, "Group updated successfully", group)
}

// DELETE /api/admin/groups/:id
func (gc *FamilyGroupController) DeleteGroup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid group ID")
	}
	group, err := service.DeleteGroup(gc.DB, id)
	if err != nil {
		return err
	}
	log.Printf("[SUCCESS] Deactivated group %s", group.ID)
	return helper.Success(c, "Group deleted successfully", group)
}

// POST /api/admin/groups/:id/members
func (gc *FamilyGroupController) AddMember(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid group ID")
	}

	var req dto.AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	userID, _ := uuid.Parse(req.UserID)

	group, err := service.AddMember(gc.DB, groupID, userID)
	if err != nil {
		return err
	}
	return helper.Success(c, "Member added successfully", group)
}

// DELETE /api/admin/groups/:id/members/:userId
func (gc *FamilyGroupController) RemoveMember(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid group ID")
	}
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	group, err := service.RemoveMember(gc.DB, groupID, userID)
	if err != nil {
		return err
	}
	return helper.Success(c, "Member removed successfully", group)
}
