// Package id generates entity identifiers.
package id

import (
	"fmt"

	"github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string, falling back to a random v4 when
// the v7 generator cannot read the clock source.
func New() string {
	v, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v.String()
}

// Parse normalizes a textual UUID to its canonical lowercase form.
func Parse(s string) (string, error) {
	v, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid id %q: %w", s, err)
	}
	return v.String(), nil
}
