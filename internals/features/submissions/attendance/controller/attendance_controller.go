package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pathshala_backend/internals/features/submissions/attendance/dto"
	"pathshala_backend/internals/features/submissions/attendance/service"
	helper "pathshala_backend/internals/helpers"
	authMw "pathshala_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// POST /api/user/attendance
//
// Batch submit. The response is 201 even when some targets fail; callers
// read the errors list for the ones that did.
func (ac *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := helper.ParseISODate(req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date")
	}

	submitterID, err := principalID(c)
	if err != nil {
		return err
	}

	created, targetErrs, err := service.MarkBatch(ac.DB, date, req.UserIDs, submitterID, authMw.FamilyMemberIDs(c))
	if err != nil {
		log.Println("[ERROR] Failed to mark attendance:", err)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Attendance submitted",
		"data":    created,
		"errors":  targetErrs,
	})
}

// GET /api/user/attendance
func (ac *AttendanceController) GetOwnAttendance(c *fiber.Ctx) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}
	return ac.listFor(c, []string{userID.String()})
}

// GET /api/user/family-attendance
func (ac *AttendanceController) GetFamilyAttendance(c *fiber.Ctx) error {
	return ac.listFor(c, authMw.FamilyMemberIDs(c))
}

func (ac *AttendanceController) listFor(c *fiber.Ctx, userIDs []string) error {
	q := service.ListQuery{
		Status: c.Query("status"),
		Paging: helper.ResolvePaging(c, 10),
	}
	q.Start, q.End, q.HasRange = helper.ParseDateRangeQuery(c.Query("startDate"), c.Query("endDate"))

	records, total, err := service.ListForUsers(ac.DB, userIDs, q)
	if err != nil {
		log.Println("[ERROR] Failed to fetch attendance:", err)
		return err
	}
	return helper.SuccessList(c, records, total, q.Paging.Page, q.Paging.Limit)
}

// GET /api/admin/attendance/pending
func (ac *AttendanceController) GetPendingAttendance(c *fiber.Ctx) error {
	q := service.ListQuery{Paging: helper.ResolvePaging(c, 10)}
	q.Start, q.End, q.HasRange = helper.ParseDateRangeQuery(c.Query("startDate"), c.Query("endDate"))

	records, total, err := service.ListPending(ac.DB, q)
	if err != nil {
		log.Println("[ERROR] Failed to fetch pending attendance:", err)
		return err
	}
	return helper.SuccessList(c, records, total, q.Paging.Page, q.Paging.Limit)
}

// PUT /api/admin/attendance/:id/approve
func (ac *AttendanceController) ApproveAttendance(c *fiber.Ctx) error {
	recordID, adminID, err := recordAndAdminIDs(c)
	if err != nil {
		return err
	}
	record, err := service.Approve(ac.DB, recordID, adminID)
	if err != nil {
		return err
	}
	return helper.Success(c, "Attendance approved successfully", record)
}

// PUT /api/admin/attendance/:id/reject
func (ac *AttendanceController) RejectAttendance(c *fiber.Ctx) error {
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

	record, err := service.Reject(ac.DB, recordID, adminID, req.Remarks)
	if err != nil {
		return err
	}
	return helper.Success(c, "Attendance rejected successfully", record)
}

// POST /api/admin/attendance/bulk-approve
func (ac *AttendanceController) BulkApproveAttendance(c *fiber.Ctx) error {
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

	modified, err := service.BulkApprove(ac.DB, req.IDs, adminID)
	if err != nil {
		log.Println("[ERROR] Bulk approve failed:", err)
		return err
	}
	return helper.Success(c, "Attendance records approved", fiber.Map{"modifiedCount": modified})
}

// POST /api/admin/attendance
func (ac *AttendanceController) AddAttendanceForUser(c *fiber.Ctx) error {
	var req dto.AdminAddAttendanceRequest
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

	record, err := service.AddForUser(ac.DB, &req, adminID)
	if err != nil {
		return err
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attendance added successfully", record)
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
