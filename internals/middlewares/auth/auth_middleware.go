// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pathshala_backend/internals/configs"
	"pathshala_backend/internals/constants"
	adminModel "pathshala_backend/internals/features/users/admin/model"
	userModel "pathshala_backend/internals/features/users/user/model"
	helper "pathshala_backend/internals/helpers"
)

// Locals keys set for downstream handlers.
const (
	LocUserID        = "user_id"
	LocUserType      = "user_type" // "admin" | "user"
	LocRole          = "role"      // admin|super_admin|user
	LocFamilyGroupID = "family_group_id"
	LocFamilyMembers = "family_members"
)

// AuthMiddleware verifies the bearer token and re-loads the principal so a
// deactivated account is denied even while its token is still valid. Family
// scope for user tokens is taken from the token body (login-time snapshot),
// not re-resolved per request.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authorized to access this route")
		}

		if configs.JWTSecret == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT secret")
		}

		// Parse signature first, validate exp separately so the log (and
		// message) can distinguish invalid from expired.
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			log.Println("[ERROR] Token parse failed:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		if err := validateExpiry(claims); err != nil {
			log.Println("[ERROR] Token expired:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Token expired")
		}

		id, err := extractID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}
		role, _ := claims["role"].(string)

		c.Locals(LocUserID, id.String())
		c.Locals(LocRole, role)

		if role == constants.RoleAdmin || role == constants.RoleSuperAdmin {
			var admin adminModel.AdminModel
			if err := db.First(&admin, "id = ?", id).Error; err != nil || !admin.IsActive {
				return fiber.NewError(fiber.StatusUnauthorized, "Admin not found or inactive")
			}
			c.Locals(LocUserType, "admin")
			c.Locals(LocRole, admin.Role)
			return c.Next()
		}

		var user userModel.UserModel
		if err := db.First(&user, "id = ?", id).Error; err != nil || !user.IsActive {
			return fiber.NewError(fiber.StatusUnauthorized, "User not found or inactive")
		}
		c.Locals(LocUserType, "user")
		c.Locals(LocFamilyGroupID, extractString(claims, "familyGroupId"))
		c.Locals(LocFamilyMembers, extractStringSlice(claims, "familyMembers"))
		return c.Next()
	}
}

func validateExpiry(claims jwt.MapClaims) error {
	exp, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	var expUnix int64
	switch v := exp.(type) {
	case float64:
		expUnix = int64(v)
	case int64:
		expUnix = v
	default:
		return errors.New("invalid exp claim")
	}
	if time.Now().Unix() > expUnix {
		return errors.New("token is expired")
	}
	return nil
}

func extractID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, _ := claims["id"].(string)
	if raw == "" {
		raw, _ = claims["sub"].(string)
	}
	return uuid.Parse(raw)
}

func extractString(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}

func extractStringSlice(claims jwt.MapClaims, key string) []string {
	out := []string{}
	raw, ok := claims[key].([]interface{})
	if !ok {
		return out
	}
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
