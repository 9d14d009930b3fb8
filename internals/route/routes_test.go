package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	app := fiber.New()
	SetupRoutes(app, db)
	return app
}

// Protected routes answer 401 without a token; a 404 would mean the path
// never got registered.
func TestAdminPathsResolve(t *testing.T) {
	app := testApp(t)

	paths := []string{
		"/api/admin/dashboard",
		"/api/admin/dashboard/stats",
		"/api/admin/dashboard/top-performers",
		"/api/admin/users",
		"/api/admin/groups",
		"/api/admin/attendance/pending",
		"/api/admin/gatha/pending",
		"/api/admin/pending-approvals",
		"/api/admin/reports/students",
		"/api/admin/reports/groups",
		"/api/admin/reports/top-performers",
		"/api/admin/reports/analytics",
	}
	for _, path := range paths {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err, path)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/admin/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRootRouteIsPublic(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
