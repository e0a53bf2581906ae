// Package dto holds response shapes shared by every entity module.
package dto

import (
	"ispdesk/internal/shared/mapper"
	"ispdesk/internal/shared/search"
)

// ListResult is a filtered snapshot of one collection. Total is the number of
// loaded rows and Count the number left after the search filter.
type ListResult[T any] struct {
	Items  []T
	Total  int
	Count  int
	Search string
}

// NewListResult filters rows by term over the fields extracted by fields and
// maps the survivors with toDTO.
func NewListResult[E any, D any](rows []E, term string, fields func(E) []string, toDTO func(E) D) *ListResult[D] {
	filtered := search.Filter(rows, term, fields)
	return &ListResult[D]{
		Items:  mapper.MapSlice(filtered, toDTO),
		Total:  len(rows),
		Count:  len(filtered),
		Search: term,
	}
}

// Option is an id/label pair used to populate selectors.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
