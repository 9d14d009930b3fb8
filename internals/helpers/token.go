package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetRawAccessToken returns the bearer token from the Authorization header.
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}
