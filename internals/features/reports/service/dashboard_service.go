package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pathshala_backend/internals/constants"
	attendanceModel "pathshala_backend/internals/features/submissions/attendance/model"
	gathaModel "pathshala_backend/internals/features/submissions/gatha/model"
	groupModel "pathshala_backend/internals/features/users/family_group/model"
	userModel "pathshala_backend/internals/features/users/user/model"
	helper "pathshala_backend/internals/helpers"
)

type AdminDashboard struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalGroups       int64 `json:"totalGroups"`
	PendingAttendance int64 `json:"pendingAttendance"`
	PendingGatha      int64 `json:"pendingGatha"`
	PendingApprovals  int64 `json:"pendingApprovals"`
	TodayAttendance   int64 `json:"todayAttendance"`
	MonthAttendance   int64 `json:"monthAttendance"`
	MonthGathaCount   int64 `json:"monthGathaCount"`
}

// rollup fills the derived counters once the per-table counts are in.
func (d *AdminDashboard) rollup() {
	d.PendingApprovals = d.PendingAttendance + d.PendingGatha
}

type UserDashboard struct {
	MonthAttendance       int64 `json:"monthAttendance"`
	MonthGathaCount       int64 `json:"monthGathaCount"`
	FamilyMonthAttendance int64 `json:"familyMonthAttendance"`
	FamilyMonthGathaCount int64 `json:"familyMonthGathaCount"`
	PendingSubmissions    int64 `json:"pendingSubmissions"`
	CurrentStreak         int   `json:"currentStreak"`
	LongestStreak         int   `json:"longestStreak"`
}

// GetAdminDashboard collects the headline counters concurrently; each
// query is independent so the whole screen costs one round-trip latency.
func GetAdminDashboard(ctx context.Context, db *gorm.DB) (*AdminDashboard, error) {
	dash := &AdminDashboard{}
	monthStart, monthEnd := helper.CurrentMonthRange()
	today := datatypes.Date(time.Now())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.WithContext(gctx).Model(&userModel.UserModel{}).
			Where("is_active = ?", true).Count(&dash.TotalUsers).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).Model(&groupModel.FamilyGroupModel{}).
			Where("is_active = ?", true).Count(&dash.TotalGroups).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).Model(&attendanceModel.AttendanceModel{}).
			Where("status = ?", constants.StatusPending).Count(&dash.PendingAttendance).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).Model(&gathaModel.GathaModel{}).
			Where("status = ?", constants.StatusPending).Count(&dash.PendingGatha).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).Model(&attendanceModel.AttendanceModel{}).
			Where("date = ? AND status = ?", today, constants.StatusApproved).
			Count(&dash.TodayAttendance).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).Model(&attendanceModel.AttendanceModel{}).
			Where("status = ? AND date >= ? AND date <= ?",
				constants.StatusApproved, datatypes.Date(monthStart), datatypes.Date(monthEnd)).
			Count(&dash.MonthAttendance).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).Model(&gathaModel.GathaModel{}).
			Select("COALESCE(SUM(gatha_count), 0)").
			Where("status = ? AND date >= ? AND date <= ?",
				constants.StatusApproved, datatypes.Date(monthStart), datatypes.Date(monthEnd)).
			Scan(&dash.MonthGathaCount).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	dash.rollup()
	return dash, nil
}

func GetUserDashboard(db *gorm.DB, userID string, familyMemberIDs []string) (*UserDashboard, error) {
	dash := &UserDashboard{}
	monthStart, monthEnd := helper.CurrentMonthRange()
	ms, me := datatypes.Date(monthStart), datatypes.Date(monthEnd)

	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("user_id = ? AND status = ? AND date >= ? AND date <= ?",
			userID, constants.StatusApproved, ms, me).
		Count(&dash.MonthAttendance).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&gathaModel.GathaModel{}).
		Select("COALESCE(SUM(gatha_count), 0)").
		Where("user_id = ? AND status = ? AND date >= ? AND date <= ?",
			userID, constants.StatusApproved, ms, me).
		Scan(&dash.MonthGathaCount).Error; err != nil {
		return nil, err
	}

	if len(familyMemberIDs) == 0 {
		familyMemberIDs = []string{userID}
	}
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("user_id IN ? AND status = ? AND date >= ? AND date <= ?",
			familyMemberIDs, constants.StatusApproved, ms, me).
		Count(&dash.FamilyMonthAttendance).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&gathaModel.GathaModel{}).
		Select("COALESCE(SUM(gatha_count), 0)").
		Where("user_id IN ? AND status = ? AND date >= ? AND date <= ?",
			familyMemberIDs, constants.StatusApproved, ms, me).
		Scan(&dash.FamilyMonthGathaCount).Error; err != nil {
		return nil, err
	}

	var pendingAttendance, pendingGatha int64
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("user_id = ? AND status = ?", userID, constants.StatusPending).
		Count(&pendingAttendance).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&gathaModel.GathaModel{}).
		Where("user_id = ? AND status = ?", userID, constants.StatusPending).
		Count(&pendingGatha).Error; err != nil {
		return nil, err
	}
	dash.PendingSubmissions = pendingAttendance + pendingGatha

	longest, current, err := attendanceStreaks(db, userID)
	if err != nil {
		return nil, err
	}
	dash.LongestStreak = longest
	dash.CurrentStreak = current
	return dash, nil
}

func attendanceStreaks(db *gorm.DB, userID string) (longest, current int, err error) {
	var dates []time.Time
	err = db.Model(&attendanceModel.AttendanceModel{}).
		Where("user_id = ? AND status = ?", userID, constants.StatusApproved).
		Order("date ASC").
		Pluck("date", &dates).Error
	if err != nil {
		return 0, 0, err
	}
	longest, current = ComputeStreaks(dates, time.Now())
	return longest, current, nil
}
