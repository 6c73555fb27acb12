// Package paging slices ordered lists into fixed-size pages.
package paging

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const DefaultPageSize = 20

type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
	PageSize   int `json:"page_size"`
}

func (p Page[T]) HasPrevious() bool {
	return p.Page > 1
}

func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// Paginate returns the requested page of items. Out of range page numbers are
// clamped, never rejected, so the result always satisfies
// 1 <= Page <= TotalPages. A non-positive size falls back to DefaultPageSize.
func Paginate[T any](items []T, requested, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}

	total := len(items)
	totalPages := total / size
	if total%size != 0 {
		totalPages++
	}
	totalPages = max(1, totalPages)
	page := lo.Clamp(requested, 1, totalPages)

	offset := min(size*(page-1), total)
	end := offset + min(size, total-offset)

	pageItems := make([]T, end-offset)
	copy(pageItems, items[offset:end])

	return Page[T]{
		Items:      pageItems,
		Page:       page,
		TotalPages: totalPages,
		TotalItems: total,
		PageSize:   size,
	}
}

// ParsePage reads a page number from user input. Absent or unparsable input
// is page 1; range clamping is left to Paginate.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	return page
}
