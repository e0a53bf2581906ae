// Package biztime provides business timezone date boundaries.
// Storage and transport use UTC; the business timezone only decides where a
// calendar day starts and ends (due dates, "no later than today" checks).
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "UTC"
)

var (
	bizLocation   *time.Location
	bizLocationMu sync.RWMutex
)

// Init sets the business timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("biztime: invalid timezone %q: %w", tz, err)
	}

	bizLocationMu.Lock()
	bizLocation = loc
	bizLocationMu.Unlock()
	return nil
}

// Location returns the business timezone, UTC until Init is called.
func Location() *time.Location {
	bizLocationMu.RLock()
	defer bizLocationMu.RUnlock()
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns 00:00 of t's business day, expressed in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	loc := Location()
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).UTC()
}

// EndOfDayUTC returns the last nanosecond of t's business day, expressed in UTC.
func EndOfDayUTC(t time.Time) time.Time {
	loc := Location()
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999999999, loc).UTC()
}

// StartOfMonthUTC returns the first instant of t's business month, expressed in UTC.
func StartOfMonthUTC(t time.Time) time.Time {
	loc := Location()
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc).UTC()
}

// AddDays moves t by n calendar days in the business timezone.
func AddDays(t time.Time, n int) time.Time {
	return t.In(Location()).AddDate(0, 0, n).UTC()
}
