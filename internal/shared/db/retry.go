package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

// Retrier re-runs database calls that failed with a transient error.
// A nil *Retrier runs the call exactly once.
type Retrier struct {
	attempts uint64
	base     time.Duration
}

// NewRetrier creates a Retrier allowing up to attempts extra tries with
// exponential backoff starting at base.
func NewRetrier(attempts uint64, base time.Duration) *Retrier {
	if base <= 0 {
		base = 50 * time.Millisecond
	}
	return &Retrier{attempts: attempts, base: base}
}

// Do runs fn, retrying while it returns a transient error and ctx is alive.
// Inside a transaction fn runs once: the failed statement has already aborted
// the transaction, and the TransactionManager retries it as a whole.
func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if r == nil || r.attempts == 0 || InTransaction(ctx) {
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(r.attempts, retry.WithJitterPercent(20, retry.NewExponential(r.base)))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && IsTransient(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// transientMarkers are driver messages for failures where the statement was not applied.
var transientMarkers = []string{
	"deadlock found",         // MySQL 1213
	"lock wait timeout",      // MySQL 1205
	"database is locked",     // SQLite busy
	"database table is locked",
	"invalid connection",
	"connection refused",
	"server has gone away",
}

// IsTransient reports whether err is worth retrying: a dropped pooled connection,
// a deadlock victim or a lock timeout. Context errors are never transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
