package dto

import "math"

// DefaultLimit and MaxLimit bound every paginated listing. MaxPage keeps
// (page-1)*limit inside int32, so the offset never wraps.
const (
	DefaultLimit = 10
	MaxLimit     = 100
	MaxPage      = math.MaxInt32 / MaxLimit
)

// PageRequest page-based pagination (1-based).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize applies defaults: page 1, limit 10, limit capped at 100, page capped at MaxPage.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset rows to skip for the current page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination metadata returned with a page.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination total_pages = ceil(total / limit).
func NewPagination(p PageRequest, total int) Pagination {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return Pagination{Page: p.Page, Limit: p.Limit, Total: total, TotalPages: pages}
}

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse body for operations that only confirm.
type MessageResponse struct {
	Message string `json:"message"`
}
