package helper

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type PageParams struct {
	Page  int
	Limit int
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePage reads ?page= & ?limit= with sane bounds.
func ParsePage(c *fiber.Ctx) PageParams {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}
	limit := atoiDefault(c.Query("limit"), DefaultLimit)
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PageParams{Page: page, Limit: limit}
}

// PagedResponse is the list envelope shared by the admin list endpoints.
type PagedResponse struct {
	Data        interface{} `json:"data"`
	TotalCount  int64       `json:"total_count"`
	TotalPages  int         `json:"total_pages"`
	CurrentPage int         `json:"current_page"`
}

func NewPagedResponse(data interface{}, total int64, p PageParams) PagedResponse {
	return PagedResponse{
		Data:        data,
		TotalCount:  total,
		TotalPages:  int(math.Ceil(float64(total) / float64(p.Limit))),
		CurrentPage: p.Page,
	}
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
