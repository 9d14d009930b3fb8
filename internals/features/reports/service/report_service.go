package service

import (
	"errors"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pathshala_backend/internals/constants"
	attendanceModel "pathshala_backend/internals/features/submissions/attendance/model"
	gathaModel "pathshala_backend/internals/features/submissions/gatha/model"
	groupModel "pathshala_backend/internals/features/users/family_group/model"
	groupService "pathshala_backend/internals/features/users/family_group/service"
	userModel "pathshala_backend/internals/features/users/user/model"
	helper "pathshala_backend/internals/helpers"
)

// StudentReport summarises one student's approved records over a date range.
type StudentReport struct {
	UserID         uuid.UUID `json:"userId"`
	UserName       string    `json:"userName"`
	AttendanceDays int64     `json:"attendanceDays"`
	GathaNew       int64     `json:"gathaNew"`
	GathaRevision  int64     `json:"gathaRevision"`
	LongestStreak  int       `json:"longestStreak"`
	CurrentStreak  int       `json:"currentStreak"`
}

// GroupReport aggregates member summaries. AvgAttendance is the mean
// approved-attendance count per member, rounded to two decimals.
type GroupReport struct {
	GroupID         uuid.UUID       `json:"groupId"`
	GroupName       string          `json:"groupName"`
	Members         []StudentReport `json:"members"`
	TotalAttendance int64           `json:"totalAttendance"`
	AvgAttendance   float64         `json:"avgAttendance"`
}

// GroupSummary is one row of the all-groups rollup. The averages are per
// member, rounded to two decimals.
type GroupSummary struct {
	GroupID         uuid.UUID `json:"groupId"`
	GroupName       string    `json:"groupName"`
	MemberCount     int       `json:"memberCount"`
	TotalAttendance int64     `json:"totalAttendance"`
	AvgAttendance   float64   `json:"avgAttendance"`
	TotalGatha      int64     `json:"totalGatha"`
	AvgGatha        float64   `json:"avgGatha"`
}

// StudentDetail pairs the summary with the full approved-record listing.
type StudentDetail struct {
	Summary    StudentReport                     `json:"summary"`
	Attendance []attendanceModel.AttendanceModel `json:"attendance"`
	Gatha      []gathaModel.GathaModel           `json:"gatha"`
}

type DailyCount struct {
	Date       time.Time `json:"date"`
	Attendance int64     `json:"attendance"`
	Gatha      int64     `json:"gatha"`
}

// AnalyticsReport is the admin range-analytics rollup. AttendanceRate is
// approved attendance over (active users x days in range), as a percentage
// rounded to two decimals.
type AnalyticsReport struct {
	Daily           []DailyCount   `json:"daily"`
	UniqueAttendees int64          `json:"uniqueAttendees"`
	AttendanceRate  float64        `json:"attendanceRate"`
	GathaNew        int64          `json:"gathaNew"`
	GathaRevision   int64          `json:"gathaRevision"`
	TopPerformers   []TopPerformer `json:"topPerformers"`
}

// BuildStudentReport computes the per-student summary; start/end default to
// the current month at the controller.
func BuildStudentReport(db *gorm.DB, userID uuid.UUID, start, end time.Time) (*StudentReport, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}
	return studentReportFor(db, &user, start, end)
}

func studentReportFor(db *gorm.DB, user *userModel.UserModel, start, end time.Time) (*StudentReport, error) {
	report := &StudentReport{
		UserID:   user.ID,
		UserName: user.Name,
	}
	s, e := datatypes.Date(start), datatypes.Date(end)

	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("user_id = ? AND status = ? AND date >= ? AND date <= ?",
			user.ID, constants.StatusApproved, s, e).
		Count(&report.AttendanceDays).Error; err != nil {
		return nil, err
	}

	type typeSum struct {
		GathaType string
		Total     int64
	}
	var sums []typeSum
	if err := db.Model(&gathaModel.GathaModel{}).
		Select("gatha_type, COALESCE(SUM(gatha_count), 0) AS total").
		Where("user_id = ? AND status = ? AND date >= ? AND date <= ?",
			user.ID, constants.StatusApproved, s, e).
		Group("gatha_type").
		Scan(&sums).Error; err != nil {
		return nil, err
	}
	for _, ts := range sums {
		switch ts.GathaType {
		case constants.GathaTypeNew:
			report.GathaNew = ts.Total
		case constants.GathaTypeRevision:
			report.GathaRevision = ts.Total
		}
	}

	longest, current, err := attendanceStreaks(db, user.ID.String())
	if err != nil {
		return nil, err
	}
	report.LongestStreak = longest
	report.CurrentStreak = current
	return report, nil
}

// BuildGroupReport aggregates member reports into the group rollup.
func BuildGroupReport(db *gorm.DB, groupID uuid.UUID, start, end time.Time) (*GroupReport, error) {
	group, err := groupService.GetGroupByID(db, groupID)
	if err != nil {
		return nil, err
	}

	report := &GroupReport{
		GroupID:   group.ID,
		GroupName: group.GroupName,
		Members:   []StudentReport{},
	}
	for i := range group.Members {
		member, err := studentReportFor(db, &group.Members[i], start, end)
		if err != nil {
			return nil, err
		}
		report.Members = append(report.Members, *member)
		report.TotalAttendance += member.AttendanceDays
	}
	if len(report.Members) > 0 {
		report.AvgAttendance = Round2(float64(report.TotalAttendance) / float64(len(report.Members)))
	}
	return report, nil
}

// BuildAllStudentsReport rolls up every active student over the range.
func BuildAllStudentsReport(db *gorm.DB, start, end time.Time) ([]StudentReport, error) {
	var users []userModel.UserModel
	if err := db.Where("is_active = ?", true).Order("name ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	reports := make([]StudentReport, 0, len(users))
	for i := range users {
		report, err := studentReportFor(db, &users[i], start, end)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

// BuildAllGroupsReport rolls up every active group over the range.
func BuildAllGroupsReport(db *gorm.DB, start, end time.Time) ([]GroupSummary, error) {
	var groups []groupModel.FamilyGroupModel
	if err := db.Preload("Members", "is_active = ?", true).
		Where("is_active = ?", true).
		Order("group_name ASC").
		Find(&groups).Error; err != nil {
		return nil, err
	}

	summaries := make([]GroupSummary, 0, len(groups))
	for i := range groups {
		members := make([]StudentReport, 0, len(groups[i].Members))
		for j := range groups[i].Members {
			member, err := studentReportFor(db, &groups[i].Members[j], start, end)
			if err != nil {
				return nil, err
			}
			members = append(members, *member)
		}
		summaries = append(summaries, summarizeGroup(&groups[i], members))
	}
	return summaries, nil
}

func summarizeGroup(group *groupModel.FamilyGroupModel, members []StudentReport) GroupSummary {
	summary := GroupSummary{
		GroupID:     group.ID,
		GroupName:   group.GroupName,
		MemberCount: len(members),
	}
	for _, m := range members {
		summary.TotalAttendance += m.AttendanceDays
		summary.TotalGatha += m.GathaNew + m.GathaRevision
	}
	if len(members) > 0 {
		summary.AvgAttendance = Round2(float64(summary.TotalAttendance) / float64(len(members)))
		summary.AvgGatha = Round2(float64(summary.TotalGatha) / float64(len(members)))
	}
	return summary
}

// BuildStudentDetail returns the summary plus every approved record in the
// range, newest first.
func BuildStudentDetail(db *gorm.DB, userID uuid.UUID, start, end time.Time) (*StudentDetail, error) {
	summary, err := BuildStudentReport(db, userID, start, end)
	if err != nil {
		return nil, err
	}
	s, e := datatypes.Date(start), datatypes.Date(end)

	detail := &StudentDetail{Summary: *summary}
	if err := db.Where("user_id = ? AND status = ? AND date >= ? AND date <= ?",
		userID, constants.StatusApproved, s, e).
		Order("date DESC").
		Find(&detail.Attendance).Error; err != nil {
		return nil, err
	}
	if err := db.Where("user_id = ? AND status = ? AND date >= ? AND date <= ?",
		userID, constants.StatusApproved, s, e).
		Order("date DESC").
		Find(&detail.Gatha).Error; err != nil {
		return nil, err
	}
	return detail, nil
}

// BuildFamilyReport returns member reports for the user's family group, or
// (nil, nil) when the user has no group. The caller turns the nil into a
// 200 with a null payload rather than an error.
func BuildFamilyReport(db *gorm.DB, userID uuid.UUID, start, end time.Time) (*GroupReport, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}
	if user.FamilyGroupID == nil {
		return nil, nil
	}
	return BuildGroupReport(db, *user.FamilyGroupID, start, end)
}

// BuildAnalytics assembles the admin range analytics: per-day submission
// counts plus range-wide attendance and gatha rollups.
func BuildAnalytics(db *gorm.DB, start, end time.Time) (*AnalyticsReport, error) {
	daily, err := dailyCounts(db, start, end)
	if err != nil {
		return nil, err
	}
	report := &AnalyticsReport{Daily: daily}
	s, e := datatypes.Date(start), datatypes.Date(end)

	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("status = ? AND date >= ? AND date <= ?", constants.StatusApproved, s, e).
		Distinct("user_id").
		Count(&report.UniqueAttendees).Error; err != nil {
		return nil, err
	}

	var approvedDays, activeUsers int64
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("status = ? AND date >= ? AND date <= ?", constants.StatusApproved, s, e).
		Count(&approvedDays).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&userModel.UserModel{}).
		Where("is_active = ?", true).
		Count(&activeUsers).Error; err != nil {
		return nil, err
	}
	if denom := activeUsers * int64(daysBetween(start, end)); denom > 0 {
		report.AttendanceRate = Round2(float64(approvedDays) / float64(denom) * 100)
	}

	type typeSum struct {
		GathaType string
		Total     int64
	}
	var sums []typeSum
	if err := db.Model(&gathaModel.GathaModel{}).
		Select("gatha_type, COALESCE(SUM(gatha_count), 0) AS total").
		Where("status = ? AND date >= ? AND date <= ?", constants.StatusApproved, s, e).
		Group("gatha_type").
		Scan(&sums).Error; err != nil {
		return nil, err
	}
	for _, ts := range sums {
		switch ts.GathaType {
		case constants.GathaTypeNew:
			report.GathaNew = ts.Total
		case constants.GathaTypeRevision:
			report.GathaRevision = ts.Total
		}
	}

	top, err := TopPerformers(db, start, end, 5, nil, RankByAttendance)
	if err != nil {
		return nil, err
	}
	report.TopPerformers = top
	return report, nil
}

func dailyCounts(db *gorm.DB, start, end time.Time) ([]DailyCount, error) {
	s, e := datatypes.Date(start), datatypes.Date(end)

	type row struct {
		Date  time.Time
		Total int64
	}
	counts := map[time.Time]*DailyCount{}

	var attendance []row
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Select("date, COUNT(*) AS total").
		Where("date >= ? AND date <= ?", s, e).
		Group("date").
		Scan(&attendance).Error; err != nil {
		return nil, err
	}
	for _, r := range attendance {
		day := truncateDay(r.Date)
		counts[day] = &DailyCount{Date: day, Attendance: r.Total}
	}

	var gatha []row
	if err := db.Model(&gathaModel.GathaModel{}).
		Select("date, COUNT(*) AS total").
		Where("date >= ? AND date <= ?", s, e).
		Group("date").
		Scan(&gatha).Error; err != nil {
		return nil, err
	}
	for _, r := range gatha {
		day := truncateDay(r.Date)
		if c, ok := counts[day]; ok {
			c.Gatha = r.Total
		} else {
			counts[day] = &DailyCount{Date: day, Gatha: r.Total}
		}
	}

	out := make([]DailyCount, 0, len(counts))
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if c, ok := counts[truncateDay(day)]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

// ResolveRange applies the current-month default used by every report
// endpoint.
func ResolveRange(startStr, endStr string) (time.Time, time.Time) {
	if start, end, ok := helper.ParseDateRangeQuery(startStr, endStr); ok {
		return start, end
	}
	return helper.CurrentMonthRange()
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func daysBetween(start, end time.Time) int {
	s := truncateDay(start)
	e := truncateDay(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
