// Package search implements the in-memory substring filter applied to list snapshots.
package search

import "strings"

// Filter returns the rows for which term, case-folded, is a substring of at
// least one of the fields extracted by fields. An empty term returns rows
// unchanged.
func Filter[T any](rows []T, term string, fields func(T) []string) []T {
	if term == "" {
		return rows
	}

	needle := strings.ToLower(term)
	matched := make([]T, 0, len(rows))
	for _, row := range rows {
		if Matches(needle, fields(row)) {
			matched = append(matched, row)
		}
	}
	return matched
}

// Matches reports whether the lowercased needle occurs in any of values.
func Matches(needle string, values []string) bool {
	for _, v := range values {
		if v == "" {
			continue
		}
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// Deref returns the pointed-to string, or "" for nil. It lets field
// extractors list optional columns without branching.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
