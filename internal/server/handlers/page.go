// Package handlers holds response shapes shared by the API handlers.
package handlers

import (
	"github.com/apiarycd/revisr/internal/paging"
	"github.com/samber/lo"
)

// PageResponse is one page of a listing together with its navigation state.
type PageResponse[T any] struct {
	Items       []T  `json:"items"`
	Page        int  `json:"page"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	PageSize    int  `json:"page_size"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

func NewPageResponse[S, T any](page paging.Page[S], mapper func(S) T) PageResponse[T] {
	return PageResponse[T]{
		Items: lo.Map(page.Items, func(item S, _ int) T {
			return mapper(item)
		}),
		Page:        page.Page,
		TotalPages:  page.TotalPages,
		TotalItems:  page.TotalItems,
		PageSize:    page.PageSize,
		HasPrevious: page.HasPrevious(),
		HasNext:     page.HasNext(),
	}
}
