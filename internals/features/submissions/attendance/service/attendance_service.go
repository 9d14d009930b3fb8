package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pathshala_backend/internals/constants"
	"pathshala_backend/internals/features/submissions/attendance/dto"
	"pathshala_backend/internals/features/submissions/attendance/model"
	"pathshala_backend/internals/features/submissions/shared"
	userModel "pathshala_backend/internals/features/users/user/model"
	helper "pathshala_backend/internals/helpers"
)

const (
	denyMsg     = "Not authorized to mark attendance for this user"
	conflictMsg = "Attendance already marked for this date"
)

type ListQuery struct {
	Status   string
	Start    time.Time
	End      time.Time
	HasRange bool
	Paging   helper.Paging
}

// PendingRecord decorates an attendance row with the student's name for the
// admin review screen.
type PendingRecord struct {
	model.AttendanceModel
	UserName string `json:"userName"`
}

// MarkBatch creates pending attendance records for every target the
// submitter may act for. Per-target failures (not in family, already
// marked) are collected instead of aborting the batch.
func MarkBatch(db *gorm.DB, date time.Time, targetIDs []string, submitterID uuid.UUID, familyMemberIDs []string) ([]model.AttendanceModel, []shared.TargetError, error) {
	allowed, errs := shared.SplitTargets(targetIDs, submitterID.String(), familyMemberIDs, denyMsg)

	day := datatypes.Date(date)
	created := []model.AttendanceModel{}
	for _, idStr := range allowed {
		userID, err := uuid.Parse(idStr)
		if err != nil {
			errs = append(errs, shared.TargetError{UserID: idStr, Message: "Invalid user ID"})
			continue
		}

		var count int64
		if err := db.Model(&model.AttendanceModel{}).
			Where("user_id = ? AND date = ?", userID, day).
			Count(&count).Error; err != nil {
			return nil, nil, err
		}
		if count > 0 {
			errs = append(errs, shared.TargetError{UserID: idStr, Message: conflictMsg})
			continue
		}

		record := model.AttendanceModel{
			Date:     day,
			UserID:   userID,
			MarkedBy: submitterID,
			Status:   constants.StatusPending,
		}
		if err := db.Create(&record).Error; err != nil {
			// the unique index is the real gate; a concurrent submit for
			// the same (user, date) lands here
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				errs = append(errs, shared.TargetError{UserID: idStr, Message: conflictMsg})
				continue
			}
			return nil, nil, err
		}
		created = append(created, record)
	}
	return created, errs, nil
}

// ListForUsers powers both the own-history and family-history reads; the
// caller decides which user ids are in scope.
func ListForUsers(db *gorm.DB, userIDs []string, q ListQuery) ([]model.AttendanceModel, int64, error) {
	tx := db.Model(&model.AttendanceModel{}).Where("user_id IN ?", userIDs)
	tx = applyFilters(tx, q)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []model.AttendanceModel
	err := tx.Order("date DESC, created_at DESC").
		Offset(q.Paging.Offset).Limit(q.Paging.Limit).
		Find(&records).Error
	return records, total, err
}

func ListPending(db *gorm.DB, q ListQuery) ([]PendingRecord, int64, error) {
	q.Status = constants.StatusPending
	tx := applyFilters(db.Model(&model.AttendanceModel{}), q)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []model.AttendanceModel
	if err := tx.Order("created_at DESC").
		Offset(q.Paging.Offset).Limit(q.Paging.Limit).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return withUserNames(db, records), total, nil
}

func Approve(db *gorm.DB, id, adminID uuid.UUID) (*model.AttendanceModel, error) {
	record, err := findByID(db, id)
	if err != nil {
		return nil, err
	}
	if record.Status != constants.StatusPending {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Only pending records can be approved")
	}

	now := time.Now()
	record.Status = constants.StatusApproved
	record.ApprovedBy = &adminID
	record.ApprovedAt = &now
	if err := db.Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func Reject(db *gorm.DB, id, adminID uuid.UUID, remarks string) (*model.AttendanceModel, error) {
	record, err := findByID(db, id)
	if err != nil {
		return nil, err
	}
	if record.Status != constants.StatusPending {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Only pending records can be rejected")
	}

	now := time.Now()
	record.Status = constants.StatusRejected
	record.ApprovedBy = &adminID
	record.RejectedAt = &now
	record.Remarks = remarks
	if err := db.Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// BulkApprove flips only records still pending; already-decided ids are
// silently skipped, and the returned count reflects actual flips.
func BulkApprove(db *gorm.DB, ids []string, adminID uuid.UUID) (int64, error) {
	now := time.Now()
	res := db.Model(&model.AttendanceModel{}).
		Where("id IN ? AND status = ?", ids, constants.StatusPending).
		Updates(map[string]interface{}{
			"status":      constants.StatusApproved,
			"approved_by": adminID,
			"approved_at": now,
		})
	return res.RowsAffected, res.Error
}

func AddForUser(db *gorm.DB, req *dto.AdminAddAttendanceRequest, adminID uuid.UUID) (*model.AttendanceModel, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID")
	}
	date, err := helper.ParseISODate(req.Date)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid date")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ? AND is_active = ?", userID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}

	record := model.AttendanceModel{
		Date:          datatypes.Date(date),
		UserID:        userID,
		MarkedBy:      adminID,
		MarkedByAdmin: true,
		Status:        constants.StatusPending,
		Remarks:       req.Remarks,
	}
	if req.Approved() {
		now := time.Now()
		record.Status = constants.StatusApproved
		record.ApprovedBy = &adminID
		record.ApprovedAt = &now
	}

	if err := db.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict, conflictMsg)
		}
		return nil, err
	}
	return &record, nil
}

func findByID(db *gorm.DB, id uuid.UUID) (*model.AttendanceModel, error) {
	var record model.AttendanceModel
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
		}
		return nil, err
	}
	return &record, nil
}

func applyFilters(tx *gorm.DB, q ListQuery) *gorm.DB {
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.HasRange {
		tx = tx.Where("date >= ? AND date <= ?", datatypes.Date(q.Start), datatypes.Date(q.End))
	}
	return tx
}

func withUserNames(db *gorm.DB, records []model.AttendanceModel) []PendingRecord {
	ids := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.UserID)
	}

	names := map[uuid.UUID]string{}
	if len(ids) > 0 {
		var users []userModel.UserModel
		if err := db.Select("id", "name").Where("id IN ?", ids).Find(&users).Error; err == nil {
			for _, u := range users {
				names[u.ID] = u.Name
			}
		}
	}

	out := make([]PendingRecord, 0, len(records))
	for _, r := range records {
		out = append(out, PendingRecord{AttendanceModel: r, UserName: names[r.UserID]})
	}
	return out
}
