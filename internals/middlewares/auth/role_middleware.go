package auth

import (
	"github.com/gofiber/fiber/v2"

	"pathshala_backend/internals/constants"
)

// AdminOnly allows admin and super_admin principals.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userType, _ := c.Locals(LocUserType).(string); userType != "admin" {
			return fiber.NewError(fiber.StatusForbidden, "Access denied. Admin only.")
		}
		return c.Next()
	}
}

// UserOnly allows user principals.
func UserOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userType, _ := c.Locals(LocUserType).(string); userType != "user" {
			return fiber.NewError(fiber.StatusForbidden, "Access denied. User only.")
		}
		return c.Next()
	}
}

// SuperAdminOnly allows admin principals whose stored role is super_admin.
func SuperAdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userType, _ := c.Locals(LocUserType).(string)
		role, _ := c.Locals(LocRole).(string)
		if userType != "admin" || role != constants.RoleSuperAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Access denied. Super admin only.")
		}
		return c.Next()
	}
}

// FamilyMemberIDs returns the family scope snapshot attached at login time
// (always contains at least the caller for user principals).
func FamilyMemberIDs(c *fiber.Ctx) []string {
	ids, _ := c.Locals(LocFamilyMembers).([]string)
	if len(ids) == 0 {
		if self, ok := c.Locals(LocUserID).(string); ok && self != "" {
			return []string{self}
		}
	}
	return ids
}
