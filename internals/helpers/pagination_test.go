package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsePageVia(t *testing.T, query string, perPage int) Params {
	t.Helper()

	var got Params
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParsePage(c, perPage)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/"+query, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParsePageDefaults(t *testing.T) {
	assert.Equal(t, Params{Page: 1, PerPage: 9}, parsePageVia(t, "", 9))
	assert.Equal(t, Params{Page: 1, PerPage: 9}, parsePageVia(t, "?page=abc", 9))
	assert.Equal(t, Params{Page: 1, PerPage: 9}, parsePageVia(t, "?page=0", 9))
	assert.Equal(t, Params{Page: 1, PerPage: 9}, parsePageVia(t, "?page=-3", 9))
	assert.Equal(t, Params{Page: 7, PerPage: 9}, parsePageVia(t, "?page=7", 9))
}

func TestClampToTotal(t *testing.T) {
	// 3 items at 10 per page: only page 1 exists
	p := Params{Page: 999, PerPage: 10}
	p.ClampToTotal(3)
	assert.Equal(t, 1, p.Page)

	// 25 items at 10 per page: pages 1..3
	p = Params{Page: 99, PerPage: 10}
	p.ClampToTotal(25)
	assert.Equal(t, 3, p.Page)

	// in-range page untouched
	p = Params{Page: 2, PerPage: 10}
	p.ClampToTotal(25)
	assert.Equal(t, 2, p.Page)

	// empty store still serves page 1
	p = Params{Page: 5, PerPage: 10}
	p.ClampToTotal(0)
	assert.Equal(t, 1, p.Page)
}

func TestLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 9}
	assert.Equal(t, 9, p.Limit())
	assert.Equal(t, 18, p.Offset())
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(25, Params{Page: 2, PerPage: 10})
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	require.NotNil(t, meta.NextPage)
	require.NotNil(t, meta.PrevPage)
	assert.Equal(t, 3, *meta.NextPage)
	assert.Equal(t, 1, *meta.PrevPage)

	meta = BuildMeta(0, Params{Page: 1, PerPage: 10})
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
	assert.Nil(t, meta.NextPage)
	assert.Nil(t, meta.PrevPage)
}
