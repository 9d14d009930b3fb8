package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appWithPrincipal(userType, role string, guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/guarded", func(c *fiber.Ctx) error {
		if userType != "" {
			c.Locals(LocUserType, userType)
		}
		if role != "" {
			c.Locals(LocRole, role)
		}
		return c.Next()
	}, guard, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func statusFor(t *testing.T, app *fiber.App) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAdminOnly(t *testing.T) {
	assert.Equal(t, fiber.StatusOK, statusFor(t, appWithPrincipal("admin", "admin", AdminOnly())))
	assert.Equal(t, fiber.StatusOK, statusFor(t, appWithPrincipal("admin", "super_admin", AdminOnly())))
	assert.Equal(t, fiber.StatusForbidden, statusFor(t, appWithPrincipal("user", "user", AdminOnly())))
	assert.Equal(t, fiber.StatusForbidden, statusFor(t, appWithPrincipal("", "", AdminOnly())))
}

func TestUserOnly(t *testing.T) {
	assert.Equal(t, fiber.StatusOK, statusFor(t, appWithPrincipal("user", "user", UserOnly())))
	assert.Equal(t, fiber.StatusForbidden, statusFor(t, appWithPrincipal("admin", "admin", UserOnly())))
	assert.Equal(t, fiber.StatusForbidden, statusFor(t, appWithPrincipal("", "", UserOnly())))
}

func TestSuperAdminOnly(t *testing.T) {
	assert.Equal(t, fiber.StatusOK, statusFor(t, appWithPrincipal("admin", "super_admin", SuperAdminOnly())))
	assert.Equal(t, fiber.StatusForbidden, statusFor(t, appWithPrincipal("admin", "admin", SuperAdminOnly())))
	assert.Equal(t, fiber.StatusForbidden, statusFor(t, appWithPrincipal("user", "super_admin", SuperAdminOnly())))
}

func TestFamilyMemberIDs(t *testing.T) {
	app := fiber.New()
	var got []string
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals(LocUserID, "self-id")
		c.Locals(LocFamilyMembers, []string{"self-id", "sibling-id"})
		got = FamilyMemberIDs(c)
		return c.SendStatus(fiber.StatusOK)
	})
	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"self-id", "sibling-id"}, got)
}

// Without a snapshot the scope collapses to the caller alone.
func TestFamilyMemberIDsFallsBackToSelf(t *testing.T) {
	app := fiber.New()
	var got []string
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals(LocUserID, "self-id")
		got = FamilyMemberIDs(c)
		return c.SendStatus(fiber.StatusOK)
	})
	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"self-id"}, got)
}
