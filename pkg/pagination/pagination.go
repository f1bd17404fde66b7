// Package pagination pages in-memory result sets for list views.
package pagination

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// PageRequest is a client request for one page of a list, optionally
// narrowed by a search term.
type PageRequest struct {
	Page     int
	PageSize int
	Search   string
}

// Normalize clamps the request to cfg.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	if r.PageSize > cfg.MaxPageSize {
		r.PageSize = cfg.MaxPageSize
	}
	if r.PageSize > 0 && r.Page > math.MaxInt/r.PageSize {
		r.Page = math.MaxInt / r.PageSize
	}
}

// Offset returns the number of items before the requested page.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PageRequestFromQuery reads page, page_size, and search from values and
// normalizes the result.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	page, _ := strconv.Atoi(values.Get("page"))
	pageSize, _ := strconv.Atoi(values.Get("page_size"))

	req := PageRequest{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(values.Get("search")),
	}
	req.Normalize(cfg)
	return req
}

// Query encodes the request for page, keeping the page size and search.
func (r PageRequest) Query(page int) string {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	v.Set("page_size", strconv.Itoa(r.PageSize))
	if r.Search != "" {
		v.Set("search", r.Search)
	}
	return "?" + v.Encode()
}

// PageResult is one page of data with its position in the whole set.
type PageResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// HasPrev reports whether a page precedes this one.
func (p PageResult[T]) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a page follows this one.
func (p PageResult[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// Filter returns the items accepted by match for search. An empty search
// or nil match returns items unchanged.
func Filter[T any](items []T, search string, match func(T, string) bool) []T {
	if search == "" || match == nil {
		return items
	}
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if match(item, search) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Apply filters items with match when the request carries a search term,
// then slices out the requested page. A page past the end is empty.
func Apply[T any](items []T, req PageRequest, match func(T, string) bool) PageResult[T] {
	items = Filter(items, req.Search, match)

	total := len(items)
	start := req.Offset()
	if start < 0 || start > total {
		start = total
	}
	end := start + min(req.PageSize, total-start)

	return NewPageResult(items[start:end], total, req.Page, req.PageSize)
}

// NewPageResult creates a PageResult with calculated total pages.
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	totalPages := 1
	if pageSize > 0 {
		totalPages = total / pageSize
		if total%pageSize != 0 {
			totalPages++
		}
		totalPages = max(totalPages, 1)
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
