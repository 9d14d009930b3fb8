package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"pathshala_backend/internals/configs"
	"pathshala_backend/internals/constants"
)

/* ==========================
   JWT claims & signing
========================== */

func BuildAdminClaims(adminID uuid.UUID, role string, now time.Time, ttl time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":  "access",
		"sub":  adminID.String(),
		"id":   adminID.String(),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
}

// BuildUserClaims embeds the family scope resolved at login. The snapshot is
// intentionally fixed for the token's lifetime; membership changes take
// effect on the next login.
func BuildUserClaims(userID uuid.UUID, familyGroupID *uuid.UUID, familyMemberIDs []string, now time.Time, ttl time.Duration) jwt.MapClaims {
	claims := jwt.MapClaims{
		"typ":           "access",
		"sub":           userID.String(),
		"id":            userID.String(),
		"role":          constants.RoleUser,
		"familyMembers": familyMemberIDs,
		"iat":           now.Unix(),
		"exp":           now.Add(ttl).Unix(),
	}
	if familyGroupID != nil {
		claims["familyGroupId"] = familyGroupID.String()
	}
	return claims
}

func SignToken(claims jwt.MapClaims) (string, error) {
	if configs.JWTSecret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}
