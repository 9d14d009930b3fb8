package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pathshala_backend/internals/features/users/family_group/dto"
	groupModel "pathshala_backend/internals/features/users/family_group/model"
	userModel "pathshala_backend/internals/features/users/user/model"
	helper "pathshala_backend/internals/helpers"
)

// Membership is the users.family_group_id back-reference; every mutation
// here rewrites that column for the affected users, and reads resolve the
// member list from it. A user can therefore belong to at most one group by
// construction.

func ListGroups(db *gorm.DB, search string, paging helper.Paging) ([]groupModel.FamilyGroupModel, int64, error) {
	tx := db.Model(&groupModel.FamilyGroupModel{}).Where("is_active = ?", true)
	if search != "" {
		tx = tx.Where("group_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var groups []groupModel.FamilyGroupModel
	err := tx.Preload("Members", "is_active = ?", true).
		Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&groups).Error
	return groups, total, err
}

func GetGroupByID(db *gorm.DB, id uuid.UUID) (*groupModel.FamilyGroupModel, error) {
	var group groupModel.FamilyGroupModel
	err := db.Preload("Members", "is_active = ?", true).First(&group, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Group not found")
		}
		return nil, err
	}
	return &group, nil
}

func CreateGroup(db *gorm.DB, req *dto.CreateGroupRequest, adminID uuid.UUID) (*groupModel.FamilyGroupModel, error) {
	group := &groupModel.FamilyGroupModel{
		GroupName:     req.GroupName,
		GroupPassword: req.GroupPassword,
		Description:   req.Description,
		CreatedBy:     adminID,
		IsActive:      true,
	}
	if err := db.Create(group).Error; err != nil {
		return nil, err
	}

	if len(req.Members) > 0 {
		if err := attachMembers(db, group.ID, req.Members); err != nil {
			return nil, err
		}
	}
	return GetGroupByID(db, group.ID)
}

func UpdateGroup(db *gorm.DB, id uuid.UUID, req *dto.UpdateGroupRequest) (*groupModel.FamilyGroupModel, error) {
	group, err := GetGroupByID(db, id)
	if err != nil {
		return nil, err
	}

	if req.GroupName != nil {
		group.GroupName = *req.GroupName
	}
	if req.GroupPassword != nil {
		group.GroupPassword = *req.GroupPassword
	}
	if req.Description != nil {
		group.Description = *req.Description
	}

	if req.Members != nil {
		newSet := make(map[string]struct{}, len(*req.Members))
		for _, m := range *req.Members {
			newSet[m] = struct{}{}
		}

		// detach members no longer in the list
		removed := []string{}
		for _, m := range group.Members {
			if _, keep := newSet[m.ID.String()]; !keep {
				removed = append(removed, m.ID.String())
			}
		}
		if len(removed) > 0 {
			if err := db.Model(&userModel.UserModel{}).
				Where("id IN ?", removed).
				Update("family_group_id", nil).Error; err != nil {
				return nil, err
			}
		}

		if err := attachMembers(db, group.ID, *req.Members); err != nil {
			return nil, err
		}
	}

	if err := db.Model(&groupModel.FamilyGroupModel{}).Where("id = ?", group.ID).Updates(map[string]interface{}{
		"group_name":     group.GroupName,
		"group_password": group.GroupPassword,
		"description":    group.Description,
	}).Error; err != nil {
		return nil, err
	}
	return GetGroupByID(db, group.ID)
}

// DeleteGroup soft-deletes: the group is deactivated and every member's
// back-reference is nulled in the same call.
func DeleteGroup(db *gorm.DB, id uuid.UUID) (*groupModel.FamilyGroupModel, error) {
	group, err := GetGroupByID(db, id)
	if err != nil {
		return nil, err
	}

	if err := db.Model(&userModel.UserModel{}).
		Where("family_group_id = ?", id).
		Update("family_group_id", nil).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&groupModel.FamilyGroupModel{}).
		Where("id = ?", id).
		Update("is_active", false).Error; err != nil {
		return nil, err
	}

	group.IsActive = false
	group.Members = nil
	return group, nil
}

// AddMember attaches a user, implicitly detaching them from any prior group
// because the back-reference is a single column.
func AddMember(db *gorm.DB, groupID, userID uuid.UUID) (*groupModel.FamilyGroupModel, error) {
	if _, err := GetGroupByID(db, groupID); err != nil {
		return nil, err
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}

	if err := db.Model(&user).Update("family_group_id", groupID).Error; err != nil {
		return nil, err
	}
	return GetGroupByID(db, groupID)
}

func RemoveMember(db *gorm.DB, groupID, userID uuid.UUID) (*groupModel.FamilyGroupModel, error) {
	if _, err := GetGroupByID(db, groupID); err != nil {
		return nil, err
	}

	if err := db.Model(&userModel.UserModel{}).
		Where("id = ? AND family_group_id = ?", userID, groupID).
		Update("family_group_id", nil).Error; err != nil {
		return nil, err
	}
	return GetGroupByID(db, groupID)
}

func attachMembers(db *gorm.DB, groupID uuid.UUID, memberIDs []string) error {
	return db.Model(&userModel.UserModel{}).
		Where("id IN ?", memberIDs).
		Update("family_group_id", groupID).Error
}
