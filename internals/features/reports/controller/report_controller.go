package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pathshala_backend/internals/features/reports/service"
	helper "pathshala_backend/internals/helpers"
	authMw "pathshala_backend/internals/middlewares/auth"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// GET /api/admin/dashboard
func (rc *ReportController) GetAdminDashboard(c *fiber.Ctx) error {
	dash, err := service.GetAdminDashboard(c.Context(), rc.DB)
	if err != nil {
		log.Println("[ERROR] Failed to build admin dashboard:", err)
		return err
	}
	return helper.Success(c, "Dashboard fetched successfully", dash)
}

// GET /api/user/dashboard
func (rc *ReportController) GetUserDashboard(c *fiber.Ctx) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}
	dash, err := service.GetUserDashboard(rc.DB, userID.String(), authMw.FamilyMemberIDs(c))
	if err != nil {
		log.Println("[ERROR] Failed to build user dashboard:", err)
		return err
	}
	return helper.Success(c, "Dashboard fetched successfully", dash)
}

// GET /api/admin/reports/student/:id
func (rc *ReportController) GetStudentReport(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	start, end := service.ResolveRange(c.Query("startDate"), c.Query("endDate"))

	report, err := service.BuildStudentReport(rc.DB, userID, start, end)
	if err != nil {
		return err
	}
	return helper.Success(c, "Student report fetched successfully", report)
}

// GET /api/admin/reports/group/:id
func (rc *ReportController) GetGroupReport(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid group ID")
	}
	start, end := service.ResolveRange(c.Query("startDate"), c.Query("endDate"))

	report, err := service.BuildGroupReport(rc.DB, groupID, start, end)
	if err != nil {
		return err
	}
	return helper.Success(c, "Group report fetched successfully", report)
}

// GET /api/admin/reports/students
func (rc *ReportController) GetAllStudentsReports(c *fiber.Ctx) error {
	start, end := service.ResolveRange(c.Query("startDate"), c.Query("endDate"))

	reports, err := service.BuildAllStudentsReport(rc.DB, start, end)
	if err != nil {
		log.Println("[ERROR] Failed to build students report:", err)
		return err
	}
	return helper.Success(c, "Students report fetched successfully", reports)
}

// GET /api/admin/reports/groups
func (rc *ReportController) GetAllGroupsReports(c *fiber.Ctx) error {
	start, end := service.ResolveRange(c.Query("startDate"), c.Query("endDate"))

	reports, err := service.BuildAllGroupsReport(rc.DB, start, end)
	if err != nil {
		log.Println("[ERROR] Failed to build groups report:", err)
		return err
	}
	return helper.Success(c, "Groups report fetched successfully", reports)
}

// GET /api/admin/reports/top-performers
func (rc *ReportController) GetTopPerformers(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}
	start, end := service.ResolveRange(c.Query("startDate"), c.Query("endDate"))

	byAttendance, err := service.TopPerformers(rc.DB, start, end, limit, nil, service.RankByAttendance)
	if err != nil {
		log.Println("[ERROR] Failed to fetch top performers:", err)
		return err
	}
	byGatha, err := service.TopPerformers(rc.DB, start, end, limit, nil, service.RankByGatha)
	if err != nil {
		log.Println("[ERROR] Failed to fetch top performers:", err)
		return err
	}
	return helper.Success(c, "Top performers fetched successfully", fiber.Map{
		"byAttendance": byAttendance,
		"byGatha":      byGatha,
	})
}

// GET /api/admin/reports/student/:id/detail
func (rc *ReportController) GetStudentDetail(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	start, end := service.ResolveRange(c.Query("startDate"), c.Query("endDate"))

	detail, err := service.BuildStudentDetail(rc.DB, userID, start, end)
	if err != nil {
		return err
	}
	return helper.Success(c, "Student detail fetched successfully", detail)
}

// GET /api/admin/reports/analytics
func (rc *ReportController) GetAnalytics(c *fiber.Ctx) error {
	start, end := service.ResolveRange(c.Query("startDate"), c.Query("endDate"))
	report, err := service.BuildAnalytics(rc.DB, start, end)
	if err != nil {
		log.Println("[ERROR] Failed to build analytics:", err)
		return err
	}
	return helper.Success(c, "Analytics fetched successfully", report)
}

// GET /api/user/report
func (rc *ReportController) GetOwnReport(c *fiber.Ctx) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}
	start, end := service.ResolveRange(c.Query("startDate"), c.Query("endDate"))

	report, err := service.BuildStudentReport(rc.DB, userID, start, end)
	if err != nil {
		return err
	}
	return helper.Success(c, "Report fetched successfully", report)
}

// GET /api/user/family-report
func (rc *ReportController) GetFamilyReport(c *fiber.Ctx) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}
	start, end := service.ResolveRange(c.Query("startDate"), c.Query("endDate"))

	report, err := service.BuildFamilyReport(rc.DB, userID, start, end)
	if err != nil {
		return err
	}
	if report == nil {
		// not an error state: the client renders an empty family view
		return helper.Success(c, "User is not in a family group", nil)
	}
	return helper.Success(c, "Family report fetched successfully", report)
}

// GET /api/user/family-leaderboard
func (rc *ReportController) GetFamilyLeaderboard(c *fiber.Ctx) error {
	start, end := service.ResolveRange(c.Query("startDate"), c.Query("endDate"))
	performers, err := service.TopPerformers(rc.DB, start, end, 100, authMw.FamilyMemberIDs(c), service.RankByAttendance)
	if err != nil {
		log.Println("[ERROR] Failed to fetch family leaderboard:", err)
		return err
	}
	return helper.Success(c, "Family leaderboard fetched successfully", performers)
}

func principalID(c *fiber.Ctx) (uuid.UUID, error) {
	idStr, _ := c.Locals(authMw.LocUserID).(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}
