package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pathshala_backend/internals/features/users/user/dto"
	userModel "pathshala_backend/internals/features/users/user/model"
	helper "pathshala_backend/internals/helpers"
)

type ListUsersQuery struct {
	Search   string
	GroupID  string
	IsActive *bool
	Paging   helper.Paging
}

func ListUsers(db *gorm.DB, q ListUsersQuery) ([]userModel.UserModel, int64, error) {
	tx := db.Model(&userModel.UserModel{})

	if q.IsActive != nil {
		tx = tx.Where("is_active = ?", *q.IsActive)
	} else {
		tx = tx.Where("is_active = ?", true)
	}
	if q.Search != "" {
		tx = tx.Where("name ILIKE ?", "%"+q.Search+"%")
	}
	if q.GroupID != "" {
		tx = tx.Where("family_group_id = ?", q.GroupID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []userModel.UserModel
	err := tx.Order("created_at DESC").
		Offset(q.Paging.Offset).Limit(q.Paging.Limit).
		Find(&users).Error
	return users, total, err
}

func GetUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser enforces the (name, password) pair uniqueness: the pair is the
// login credential, so a duplicate pair would make two accounts
// indistinguishable at login.
func CreateUser(db *gorm.DB, req *dto.CreateUserRequest, adminID *uuid.UUID) (*userModel.UserModel, error) {
	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("LOWER(name) = LOWER(?) AND password = ?", req.Name, req.Password).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict,
			"This name and password combination already exists. Please use a different password.")
	}

	user := req.ToModel(adminID)
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict,
				"This name and password combination already exists. Please use a different password.")
		}
		return nil, err
	}
	return GetUserByID(db, user.ID)
}

func UpdateUser(db *gorm.DB, id uuid.UUID, req *dto.UpdateUserRequest) (*userModel.UserModel, error) {
	user, err := GetUserByID(db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		user.Password = *req.Password
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}

	// re-check credential uniqueness when either half of the pair changes
	if req.Name != nil || req.Password != nil {
		var count int64
		if err := db.Model(&userModel.UserModel{}).
			Where("id <> ? AND LOWER(name) = LOWER(?) AND password = ?", id, user.Name, user.Password).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fiber.NewError(fiber.StatusConflict, "This name and password combination already exists.")
		}
	}

	if changed, target := req.FamilyGroupChange(); changed {
		user.FamilyGroupID = target
	}

	if err := db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict, "This name and password combination already exists.")
		}
		return nil, err
	}
	return GetUserByID(db, user.ID)
}

// DeleteUser is a soft delete: the account is deactivated and detached from
// its family group so it no longer appears in any member list.
func DeleteUser(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	user, err := GetUserByID(db, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = false
	user.FamilyGroupID = nil
	if err := db.Model(user).Select("is_active", "family_group_id").Updates(map[string]interface{}{
		"is_active":       false,
		"family_group_id": nil,
	}).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetCredentials reveals the stored login pair (admin-only; passwords are
// plain by design so admins can hand them out).
func GetCredentials(db *gorm.DB, id uuid.UUID) (fiber.Map, error) {
	user, err := GetUserByID(db, id)
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"name":     user.Name,
		"password": user.Password,
	}, nil
}

func ListUsersWithoutGroup(db *gorm.DB) ([]userModel.UserModel, error) {
	var users []userModel.UserModel
	err := db.Where("family_group_id IS NULL AND is_active = ?", true).
		Order("name ASC").
		Find(&users).Error
	return users, err
}
