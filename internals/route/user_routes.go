package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "pathshala_backend/internals/features/reports/controller"
	attendanceController "pathshala_backend/internals/features/submissions/attendance/controller"
	gathaController "pathshala_backend/internals/features/submissions/gatha/controller"
	authMw "pathshala_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	attendance := attendanceController.NewAttendanceController(db)
	gatha := gathaController.NewGathaController(db)
	reports := reportController.NewReportController(db)

	user := api.Group("/user", authMw.AuthMiddleware(db), authMw.UserOnly())

	user.Get("/dashboard", reports.GetUserDashboard)

	user.Post("/attendance", attendance.MarkAttendance)
	user.Get("/attendance", attendance.GetOwnAttendance)
	user.Get("/family-attendance", attendance.GetFamilyAttendance)

	user.Post("/gatha", gatha.SubmitGatha)
	user.Get("/gatha", gatha.GetOwnGatha)
	user.Get("/family-gatha", gatha.GetFamilyGatha)

	user.Get("/report", reports.GetOwnReport)
	user.Get("/family-report", reports.GetFamilyReport)
	user.Get("/family-leaderboard", reports.GetFamilyLeaderboard)
}
