package query

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination is a normalized page/limit pair. Page and Limit are always
// positive.
type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination coerces raw query parameters. Missing, non-numeric or
// non-positive values fall back to the defaults instead of failing.
func ParsePagination(page, limit string) Pagination {
	return NewPagination(atoiOr(page, DefaultPage), atoiOr(limit, DefaultLimit))
}

func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Pagination{Page: page, Limit: limit}
}

// Offset is the number of records skipped: (page-1)*limit.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p Pagination) TotalPages(total int64) int {
	if total <= 0 || p.Limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(p.Limit)))
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// Result is the list envelope returned by every list endpoint.
type Result[T any] struct {
	Items       []T   `json:"items"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Total       int64 `json:"total"`
}

func NewResult[T any](items []T, total int64, p Pagination) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{
		Items:       items,
		TotalPages:  p.TotalPages(total),
		CurrentPage: p.Page,
		Total:       total,
	}
}
