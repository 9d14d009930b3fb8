package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pathshala_backend/internals/constants"
	"pathshala_backend/internals/features/submissions/gatha/dto"
	"pathshala_backend/internals/features/submissions/gatha/model"
	"pathshala_backend/internals/features/submissions/shared"
	userModel "pathshala_backend/internals/features/users/user/model"
	helper "pathshala_backend/internals/helpers"
)

const denyMsg = "Not authorized to submit gatha for this user"

type ListQuery struct {
	Status    string
	GathaType string
	Start     time.Time
	End       time.Time
	HasRange  bool
	Paging    helper.Paging
}

type PendingRecord struct {
	model.GathaModel
	UserName string `json:"userName"`
}

// SubmitBatch creates one pending gatha record per allowed target. There is
// no per-day uniqueness for gathas, so the only per-target failures are
// authorization and malformed ids.
func SubmitBatch(db *gorm.DB, req *dto.SubmitGathaRequest, submitterID uuid.UUID, familyMemberIDs []string) ([]model.GathaModel, []shared.TargetError, error) {
	date, err := helper.ParseISODate(req.Date)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid date")
	}
	allowed, errs := shared.SplitTargets(req.UserIDs, submitterID.String(), familyMemberIDs, denyMsg)

	day := datatypes.Date(date)
	created := []model.GathaModel{}
	for _, idStr := range allowed {
		userID, err := uuid.Parse(idStr)
		if err != nil {
			errs = append(errs, shared.TargetError{UserID: idStr, Message: "Invalid user ID"})
			continue
		}

		record := model.GathaModel{
			Date:         day,
			UserID:       userID,
			GathaType:    req.GathaType,
			GathaCount:   req.GathaCount,
			GathaDetails: req.GathaDetails,
			MarkedBy:     submitterID,
			Status:       constants.StatusPending,
		}
		if err := db.Create(&record).Error; err != nil {
			return nil, nil, err
		}
		created = append(created, record)
	}
	return created, errs, nil
}

func ListForUsers(db *gorm.DB, userIDs []string, q ListQuery) ([]model.GathaModel, int64, error) {
	tx := db.Model(&model.GathaModel{}).Where("user_id IN ?", userIDs)
	tx = applyFilters(tx, q)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []model.GathaModel
	err := tx.Order("date DESC, created_at DESC").
		Offset(q.Paging.Offset).Limit(q.Paging.Limit).
		Find(&records).Error
	return records, total, err
}

func ListPending(db *gorm.DB, q ListQuery) ([]PendingRecord, int64, error) {
	q.Status = constants.StatusPending
	tx := applyFilters(db.Model(&model.GathaModel{}), q)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []model.GathaModel
	if err := tx.Order("created_at DESC").
		Offset(q.Paging.Offset).Limit(q.Paging.Limit).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return withUserNames(db, records), total, nil
}

func Approve(db *gorm.DB, id, adminID uuid.UUID) (*model.GathaModel, error) {
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

func Reject(db *gorm.DB, id, adminID uuid.UUID, remarks string) (*model.GathaModel, error) {
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

func BulkApprove(db *gorm.DB, ids []string, adminID uuid.UUID) (int64, error) {
	now := time.Now()
	res := db.Model(&model.GathaModel{}).
		Where("id IN ? AND status = ?", ids, constants.StatusPending).
		Updates(map[string]interface{}{
			"status":      constants.StatusApproved,
			"approved_by": adminID,
			"approved_at": now,
		})
	return res.RowsAffected, res.Error
}

func AddForUser(db *gorm.DB, req *dto.AdminAddGathaRequest, adminID uuid.UUID) (*model.GathaModel, error) {
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

	record := model.GathaModel{
		Date:          datatypes.Date(date),
		UserID:        userID,
		GathaType:     req.GathaType,
		GathaCount:    req.GathaCount,
		GathaDetails:  req.GathaDetails,
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
		return nil, err
	}
	return &record, nil
}

func findByID(db *gorm.DB, id uuid.UUID) (*model.GathaModel, error) {
	var record model.GathaModel
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Gatha record not found")
		}
		return nil, err
	}
	return &record, nil
}

func applyFilters(tx *gorm.DB, q ListQuery) *gorm.DB {
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.GathaType != "" {
		tx = tx.Where("gatha_type = ?", q.GathaType)
	}
	if q.HasRange {
		tx = tx.Where("date >= ? AND date <= ?", datatypes.Date(q.Start), datatypes.Date(q.End))
	}
	return tx
}

func withUserNames(db *gorm.DB, records []model.GathaModel) []PendingRecord {
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
		out = append(out, PendingRecord{GathaModel: r, UserName: names[r.UserID]})
	}
	return out
}
