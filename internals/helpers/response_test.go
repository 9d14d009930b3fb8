package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bodyOf(t *testing.T, app *fiber.App) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestSuccessEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Success(c, "done", fiber.Map{"value": 42})
	})

	status, body := bodyOf(t, app)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "done", body["message"])
	assert.NotNil(t, body["data"])
}

func TestErrorEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Error(c, fiber.StatusNotFound, "missing")
	})

	status, body := bodyOf(t, app)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "missing", body["message"])
}

func TestSuccessListTotalPages(t *testing.T) {
	tests := []struct {
		total     int64
		limit     int
		wantPages float64
	}{
		{total: 0, limit: 10, wantPages: 0},
		{total: 10, limit: 10, wantPages: 1},
		{total: 11, limit: 10, wantPages: 2},
		{total: 95, limit: 10, wantPages: 10},
	}

	for _, tt := range tests {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			return SuccessList(c, []string{}, tt.total, 1, tt.limit)
		})
		status, body := bodyOf(t, app)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, tt.wantPages, body["totalPages"], "total=%d limit=%d", tt.total, tt.limit)
	}
}
