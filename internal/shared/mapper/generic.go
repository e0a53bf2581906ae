// Package mapper holds generic slice conversions shared by repositories and use cases.
package mapper

import "fmt"

// MapSlice applies mapFunc to each element. A nil input yields an empty,
// non-nil slice so list payloads encode as [] rather than null.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSliceWithError applies a mapper that may fail, returning early on the first
// error. The index of the failing element is included in the error.
func MapSliceWithError[T any, R any](items []T, mapFunc func(T) (R, error)) ([]R, error) {
	result := make([]R, 0, len(items))
	for i, item := range items {
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map item %d: %w", i, err)
		}
		result = append(result, mapped)
	}
	return result, nil
}
