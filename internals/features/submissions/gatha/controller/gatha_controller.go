package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pathshala_backend/internals/features/submissions/gatha/dto"
	"pathshala_backend/internals/features/submissions/gatha/service"
	helper "pathshala_backend/internals/helpers"
	authMw "pathshala_backend/internals/middlewares/auth"
)

var validate = validator.New()

type GathaController struct {
	DB *gorm.DB
}

func NewGathaController(db *gorm.DB) *GathaController {
	return &GathaController{DB: db}
}

// POST /api/user/gatha
func (gc *GathaController) SubmitGatha(c *fiber.Ctx) error {
	var req dto.SubmitGathaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	submitterID, err := principalID(c)
	if err != nil {
		return err
	}

	created, targetErrs, err := service.SubmitBatch(gc.DB, &req, submitterID, authMw.FamilyMemberIDs(c))
	if err != nil {
		log.Println("[ERROR] Failed to submit gatha:", err)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Gatha submitted",
		"data":    created,
		"errors":  targetErrs,
	})
}

// GET /api/user/gatha
func (gc *GathaController) GetOwnGatha(c *fiber.Ctx) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}
	return gc.listFor(c, []string{userID.String()})
}

// GET /api/user/family-gatha
func (gc *GathaController) GetFamilyGatha(c *fiber.Ctx) error {
	return gc.listFor(c, authMw.FamilyMemberIDs(c))
}

func (gc *GathaController) listFor(c *fiber.Ctx, userIDs []string) error {
	q := service.ListQuery{
		Status:    c.Query("status"),
		GathaType: c.Query("gathaType"),
		Paging:    helper.ResolvePaging(c, 10),
	}
	q.Start, q.End, q.HasRange = helper.ParseDateRangeQuery(c.Query("startDate"), c.Query("endDate"))

	records, total, err := service.ListForUsers(gc.DB, userIDs, q)
	if err != nil {
		log.Println("[ERROR] Failed to fetch gatha records:", err)
		return err
	}
	return helper.SuccessList(c, records, total, q.Paging.Page, q.Paging.Limit)
}

// GET /api/admin/gatha/pending
func (gc *GathaController) GetPendingGatha(c *fiber.Ctx) error {
	q := service.ListQuery{
		GathaType: c.Query("gathaType"),
		Paging:    helper.ResolvePaging(c, 10),
	}
	q.Start, q.End, q.HasRange = helper.ParseDateRangeQuery(c.Query("startDate"), c.Query("endDate"))

	records, total, err := service.ListPending(gc.DB, q)
	if err != nil {
		log.Println("[ERROR] Failed to fetch pending gatha:", err)
		return err
	}
	return helper.SuccessList(c, records, total, q.Paging.Page, q.Paging.Limit)
}

// PUT /api/admin/gatha/:id/approve
func (gc *GathaController) ApproveGatha(c *fiber.Ctx) error {
	recordID, adminID, err := recordAndAdminIDs(c)
	if err != nil {
		return err
	}
	record, err := service.Approve(gc.DB, recordID, adminID)
	if err != nil {
		return err
	}
	return helper.Success(c, "Gatha approved successfully", record)
}

// PUT /api/admin/gatha/:id/reject
func (gc *GathaController) RejectGatha(c *fiber.Ctx) error {
	recordID, adminID, err := recordAndAdminIDs(c)
	if err != nil {
		return err
	}

	var req dto.RejectRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	record, err := service.Reject(gc.DB, recordID, adminID, req.Remarks)
	if err != nil {
		return err
	}
	return helper.Success(c, "Gatha rejected successfully", record)
}

// POST /api/admin/gatha/bulk-approve
func (gc *GathaController) BulkApproveGatha(c *fiber.Ctx) error {
	var req dto.BulkApproveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	adminID, err := principalID(c)
	if err != nil {
		return err
	}

	modified, err := service.BulkApprove(gc.DB, req.IDs, adminID)
	if err != nil {
		log.Println("[ERROR] Bulk approve failed:", err)
		return err
	}
	return helper.Success(c, "Gatha records approved", fiber.Map{"modifiedCount": modified})
}

// POST /api/admin/gatha
func (gc *GathaController) AddGathaForUser(c *fiber.Ctx) error {
	var req dto.AdminAddGathaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	adminID, err := principalID(c)
	if err != nil {
		return err
	}

	record, err := service.AddForUser(gc.DB, &req, adminID)
	if err != nil {
		return err
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Gatha added successfully", record)
}

func principalID(c *fiber.Ctx) (uuid.UUID, error) {
	idStr, _ := c.Locals(authMw.LocUserID).(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}

func recordAndAdminIDs(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid record ID")
	}
	adminID, err := principalID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return recordID, adminID, nil
}
