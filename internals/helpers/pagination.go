package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

// Params carries 1-indexed paging state for list endpoints.
// Per-page sizes are fixed per listing type, so only the page
// number comes from the query string.
type Params struct {
	Page    int
	PerPage int
}

// ParsePage reads ?page= from the Fiber ctx. Anything non-numeric
// or below 1 falls back to page 1.
func ParsePage(c *fiber.Ctx, perPage int) Params {
	page := atoiDefault(strings.TrimSpace(c.Query("page")), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = 1
	}
	return Params{Page: page, PerPage: perPage}
}

// ClampToTotal pulls an out-of-range page back to the last valid
// page instead of serving an empty one. A page past the end of a
// 3-item store lands on page 1, not on an empty page N.
func (p *Params) ClampToTotal(total int64) {
	totalPages := int(math.Ceil(float64(total) / float64(p.PerPage)))
	if totalPages < 1 {
		totalPages = 1
	}
	if p.Page > totalPages {
		p.Page = totalPages
	}
}

func (p Params) Limit() int  { return p.PerPage }
func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }

// Meta for list responses
type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	NextPage   *int  `json:"next_page,omitempty"`
	PrevPage   *int  `json:"prev_page,omitempty"`
}

func BuildMeta(total int64, p Params) Meta {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.PerPage)))
	}
	meta := Meta{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    p.Page > 1,
		HasNext:    totalPages > 0 && p.Page < totalPages,
	}
	if meta.HasPrev {
		prev := p.Page - 1
		meta.PrevPage = &prev
	}
	if meta.HasNext {
		next := p.Page + 1
		meta.NextPage = &next
	}
	return meta
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
