package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string, defaultLimit int) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultLimit)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolveFor(t, "/", 10)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestResolvePagingClampsLimit(t *testing.T) {
	p := resolveFor(t, "/?limit=500", 10)
	assert.Equal(t, 100, p.Limit)

	p = resolveFor(t, "/?limit=0", 25)
	assert.Equal(t, 25, p.Limit)

	p = resolveFor(t, "/?limit=-5", 25)
	assert.Equal(t, 25, p.Limit)
}

func TestResolvePagingClampsPage(t *testing.T) {
	p := resolveFor(t, "/?page=0", 10)
	assert.Equal(t, 1, p.Page)

	p = resolveFor(t, "/?page=-3", 10)
	assert.Equal(t, 1, p.Page)

	p = resolveFor(t, "/?page=abc", 10)
	assert.Equal(t, 1, p.Page)
}

func TestResolvePagingOffset(t *testing.T) {
	p := resolveFor(t, "/?page=3&limit=20", 10)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 40, p.Offset)
}
