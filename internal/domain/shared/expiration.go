package shared

import (
	"time"

	"ispdesk/internal/shared/biztime"
)

// IsPastDue reports whether a due date lies before the start of the current
// business day. A date due today is not yet past due.
func IsPastDue(due time.Time) bool {
	return due.Before(biztime.StartOfDayUTC(biztime.NowUTC()))
}

// TimePtr returns a pointer to a UTC copy of t.
func TimePtr(t time.Time) *time.Time {
	u := t.UTC()
	return &u
}
