package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"pathshala_backend/internals/features/submissions/approvals/dto"
	attendanceService "pathshala_backend/internals/features/submissions/attendance/service"
	gathaService "pathshala_backend/internals/features/submissions/gatha/service"
	helper "pathshala_backend/internals/helpers"
	authMw "pathshala_backend/internals/middlewares/auth"
)

var validate = validator.New()

// ApprovalsController is the cross-type review surface: one queue and one
// bulk action spanning both attendance and gatha submissions.
type ApprovalsController struct {
	DB *gorm.DB
}

func NewApprovalsController(db *gorm.DB) *ApprovalsController {
	return &ApprovalsController{DB: db}
}

// GET /api/admin/pending-approvals?type=attendance|gatha|all
func (pc *ApprovalsController) GetPendingApprovals(c *fiber.Ctx) error {
	kind := c.Query("type", "all")
	if kind != "all" && kind != "attendance" && kind != "gatha" {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid submission type")
	}
	paging := helper.ResolvePaging(c, 10)
	start, end, hasRange := helper.ParseDateRangeQuery(c.Query("startDate"), c.Query("endDate"))

	var (
		attendance      []attendanceService.PendingRecord
		attendanceTotal int64
		gatha           []gathaService.PendingRecord
		gathaTotal      int64
	)

	g := new(errgroup.Group)
	if kind == "all" || kind == "attendance" {
		g.Go(func() error {
			q := attendanceService.ListQuery{Start: start, End: end, HasRange: hasRange, Paging: paging}
			var err error
			attendance, attendanceTotal, err = attendanceService.ListPending(pc.DB, q)
			return err
		})
	}
	if kind == "all" || kind == "gatha" {
		g.Go(func() error {
			q := gathaService.ListQuery{Start: start, End: end, HasRange: hasRange, Paging: paging}
			var err error
			gatha, gathaTotal, err = gathaService.ListPending(pc.DB, q)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Println("[ERROR] Failed to fetch pending approvals:", err)
		return err
	}

	if attendance == nil {
		attendance = []attendanceService.PendingRecord{}
	}
	if gatha == nil {
		gatha = []gathaService.PendingRecord{}
	}
	return helper.Success(c, "Pending approvals fetched successfully", fiber.Map{
		"attendance":      attendance,
		"attendanceTotal": attendanceTotal,
		"gatha":           gatha,
		"gathaTotal":      gathaTotal,
		"totalPending":    attendanceTotal + gathaTotal,
		"page":            paging.Page,
		"limit":           paging.Limit,
	})
}

// POST /api/admin/bulk-approve
//
// Already-decided ids are skipped, never failed; modifiedCount reports what
// actually changed.
func (pc *ApprovalsController) BulkApprove(c *fiber.Ctx) error {
	var req dto.BulkApproveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	adminIDStr, _ := c.Locals(authMw.LocUserID).(string)
	adminID, err := uuid.Parse(adminIDStr)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var modified int64
	switch req.Type {
	case "attendance":
		modified, err = attendanceService.BulkApprove(pc.DB, req.IDs, adminID)
	case "gatha":
		modified, err = gathaService.BulkApprove(pc.DB, req.IDs, adminID)
	}
	if err != nil {
		log.Println("[ERROR] Bulk approve failed:", err)
		return err
	}

	log.Printf("[SUCCESS] Bulk approved %d %s record(s)", modified, req.Type)
	return helper.Success(c, "Records approved successfully", fiber.Map{"modifiedCount": modified})
}
