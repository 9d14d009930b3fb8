package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pathshala_backend/internals/configs"
	"pathshala_backend/internals/constants"
	adminModel "pathshala_backend/internals/features/users/admin/model"
	groupModel "pathshala_backend/internals/features/users/family_group/model"
	userModel "pathshala_backend/internals/features/users/user/model"
)

// The login error is deliberately constant so names cannot be enumerated.
const invalidCredentialsMsg = "Invalid name or password"

// AdminLogin matches by username or name case-insensitively; an exact
// username match wins when both fields could resolve to different admins.
func AdminLogin(db *gorm.DB, name, password string) (fiber.Map, error) {
	var admin adminModel.AdminModel
	err := db.Where("LOWER(username) = LOWER(?)", name).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.Where("LOWER(name) = LOWER(?)", name).First(&admin).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, invalidCredentialsMsg)
		}
		return nil, err
	}

	if !admin.IsActive {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Your account is inactive")
	}

	if !ComparePassword(admin.Password, password) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, invalidCredentialsMsg)
	}

	claims := BuildAdminClaims(admin.ID, admin.Role, time.Now(), configs.JWTExpiry)
	token, err := SignToken(claims)
	if err != nil {
		return nil, err
	}

	return fiber.Map{
		"admin": admin,
		"token": token,
	}, nil
}

// UserLogin matches name case-insensitively with an exact password; on
// success the user's active family members are resolved and embedded in the
// token as the authorization scope for this session.
func UserLogin(db *gorm.DB, name, password string) (fiber.Map, error) {
	var user userModel.UserModel
	err := db.Where("LOWER(name) = LOWER(?) AND password = ?", name, password).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, invalidCredentialsMsg)
		}
		return nil, err
	}

	familyMembers := []userModel.UserModel{user}
	if user.FamilyGroupID != nil {
		var group groupModel.FamilyGroupModel
		if err := db.Preload("Members", "is_active = ?", true).
			First(&group, "id = ?", *user.FamilyGroupID).Error; err == nil && len(group.Members) > 0 {
			familyMembers = group.Members
		}
	}

	memberIDs := make([]string, 0, len(familyMembers))
	memberRefs := make([]fiber.Map, 0, len(familyMembers))
	for _, m := range familyMembers {
		memberIDs = append(memberIDs, m.ID.String())
		memberRefs = append(memberRefs, fiber.Map{"_id": m.ID, "name": m.Name})
	}

	claims := BuildUserClaims(user.ID, user.FamilyGroupID, memberIDs, time.Now(), configs.JWTExpiry)
	token, err := SignToken(claims)
	if err != nil {
		return nil, err
	}

	return fiber.Map{
		"user": fiber.Map{
			"_id":           user.ID,
			"name":          user.Name,
			"phone":         user.Phone,
			"address":       user.Address,
			"familyGroupId": user.FamilyGroupID,
		},
		"familyMembers": memberRefs,
		"familyGroupId": user.FamilyGroupID,
		"token":         token,
	}, nil
}

// VerifyPrincipal echoes the already-authenticated principal back.
func VerifyPrincipal(db *gorm.DB, userType, id string) (fiber.Map, error) {
	if userType == "admin" {
		var admin adminModel.AdminModel
		if err := db.First(&admin, "id = ?", id).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}
		return fiber.Map{"userType": "admin", "data": admin}, nil
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	return fiber.Map{"userType": constants.RoleUser, "data": user}, nil
}
