package utils

import (
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates such as due_date.
const DateLayout = "2006-01-02"

// NilIfEmpty maps an optional form value to nil when it is blank.
func NilIfEmpty(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// StringValue dereferences an optional string, treating nil as "".
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ParseDate parses an optional YYYY-MM-DD value as midnight UTC. Blank input
// yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
