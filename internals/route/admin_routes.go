package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "pathshala_backend/internals/features/reports/controller"
	approvalsController "pathshala_backend/internals/features/submissions/approvals/controller"
	attendanceController "pathshala_backend/internals/features/submissions/attendance/controller"
	gathaController "pathshala_backend/internals/features/submissions/gatha/controller"
	groupController "pathshala_backend/internals/features/users/family_group/controller"
	userController "pathshala_backend/internals/features/users/user/controller"
	authMw "pathshala_backend/internals/middlewares/auth"
)

func AdminRoutes(api fiber.Router, db *gorm.DB) {
	users := userController.NewUserController(db)
	groups := groupController.NewFamilyGroupController(db)
	attendance := attendanceController.NewAttendanceController(db)
	gatha := gathaController.NewGathaController(db)
	approvals := approvalsController.NewApprovalsController(db)
	reports := reportController.NewReportController(db)

	admin := api.Group("/admin", authMw.AuthMiddleware(db), authMw.AdminOnly())

	admin.Get("/dashboard", reports.GetAdminDashboard)
	admin.Get("/dashboard/stats", reports.GetAdminDashboard)
	admin.Get("/dashboard/top-performers", reports.GetTopPerformers)

	// static segment before the :id routes
	admin.Get("/users/without-group", users.GetUsersWithoutGroup)
	admin.Get("/users", users.GetUsers)
	admin.Post("/users", users.CreateUser)
	admin.Get("/users/:id", users.GetUser)
	admin.Put("/users/:id", users.UpdateUser)
	admin.Delete("/users/:id", users.DeleteUser)
	admin.Get("/users/:id/credentials", authMw.SuperAdminOnly(), users.GetCredentials)

	admin.Get("/groups", groups.GetGroups)
	admin.Post("/groups", groups.CreateGroup)
	admin.Get("/groups/:id", groups.GetGroup)
	admin.Put("/groups/:id", groups.UpdateGroup)
	admin.Delete("/groups/:id", groups.DeleteGroup)
	admin.Post("/groups/:id/members", groups.AddMember)
	admin.Delete("/groups/:id/members/:userId", groups.RemoveMember)

	admin.Get("/attendance/pending", attendance.GetPendingAttendance)
	admin.Post("/attendance", attendance.AddAttendanceForUser)
	admin.Put("/attendance/:id/approve", attendance.ApproveAttendance)
	admin.Put("/attendance/:id/reject", attendance.RejectAttendance)
	admin.Post("/attendance/bulk-approve", attendance.BulkApproveAttendance)

	admin.Get("/gatha/pending", gatha.GetPendingGatha)
	admin.Post("/gatha", gatha.AddGathaForUser)
	admin.Put("/gatha/:id/approve", gatha.ApproveGatha)
	admin.Put("/gatha/:id/reject", gatha.RejectGatha)
	admin.Post("/gatha/bulk-approve", gatha.BulkApproveGatha)

	admin.Get("/pending-approvals", approvals.GetPendingApprovals)
	admin.Post("/bulk-approve", approvals.BulkApprove)

	admin.Get("/reports/students", reports.GetAllStudentsReports)
	admin.Get("/reports/groups", reports.GetAllGroupsReports)
	admin.Get("/reports/student/:id", reports.GetStudentReport)
	admin.Get("/reports/student/:id/detail", reports.GetStudentDetail)
	admin.Get("/reports/group/:id", reports.GetGroupReport)
	admin.Get("/reports/top-performers", reports.GetTopPerformers)
	admin.Get("/reports/analytics", reports.GetAnalytics)
}
