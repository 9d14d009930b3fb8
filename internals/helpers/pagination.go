package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pathshala_backend/internals/constants"
)

type Paging struct {
	Page   int
	Limit  int
	Offset int
}

// ResolvePaging reads ?page= and ?limit= and normalizes them.
// limit is clamped to [1, MaxLimit]; defaultLimit is the per-endpoint
// fallback (10–100 depending on the listing).
func ResolvePaging(c *fiber.Ctx, defaultLimit int) Paging {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if page < 1 {
		page = constants.DefaultPage
	}

	limit, _ := strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}

	return Paging{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
