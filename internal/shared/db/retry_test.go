package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrier_RetriesTransientErrors(t *testing.T) {
	r := NewRetrier(3, time.Millisecond)

	calls := 0
	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("database is locked")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_StopsOnPermanentError(t *testing.T) {
	r := NewRetrier(3, time.Millisecond)

	calls := 0
	permanent := errors.New("UNIQUE constraint failed: tickets.ticket_number")
	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestRetrier_GivesUpAfterAttempts(t *testing.T) {
	r := NewRetrier(2, time.Millisecond)

	calls := 0
	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return fmt.Errorf("query: %w", driver.ErrBadConn)
	})

	assert.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_NilRunsOnce(t *testing.T) {
	var r *Retrier

	calls := 0
	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("deadlock found when trying to get lock")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"bad conn", driver.ErrBadConn, true},
		{"mysql deadlock", errors.New("Error 1213: Deadlock found when trying to get lock"), true},
		{"lock wait", errors.New("Error 1205: Lock wait timeout exceeded"), true},
		{"sqlite busy", errors.New("database is locked"), true},
		{"canceled", context.Canceled, false},
		{"deadline", fmt.Errorf("select: %w", context.DeadlineExceeded), false},
		{"syntax", errors.New("near \"SELEC\": syntax error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}
