package router

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errDown = errors.New("connection refused")

func TestBreaker_OpensAfterMaxFailures(t *testing.T) {
	b := NewBreaker(3, time.Second, nil)

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, b.Execute(func() error { return errDown }), errDown)
	}

	called := false
	err := b.Execute(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestBreaker_HalfOpenAfterCooldown(t *testing.T) {
	now := time.Now()
	b := NewBreaker(2, time.Second, nil)
	b.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		_ = b.Execute(func() error { return errDown })
	}
	assert.ErrorIs(t, b.Execute(func() error { return nil }), ErrCircuitOpen)

	now = now.Add(2 * time.Second)

	assert.NoError(t, b.Execute(func() error { return nil }))
	assert.NoError(t, b.Execute(func() error { return nil }))
}

func TestBreaker_FailedTrialReopens(t *testing.T) {
	now := time.Now()
	b := NewBreaker(1, time.Second, nil)
	b.now = func() time.Time { return now }

	_ = b.Execute(func() error { return errDown })
	now = now.Add(2 * time.Second)

	assert.ErrorIs(t, b.Execute(func() error { return errDown }), errDown)
	assert.ErrorIs(t, b.Execute(func() error { return nil }), ErrCircuitOpen)
}

func TestBreaker_IgnoresNonTrippingErrors(t *testing.T) {
	errAuth := errors.New("invalid user name or password")
	b := NewBreaker(1, time.Minute, func(err error) bool { return errors.Is(err, errDown) })

	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, b.Execute(func() error { return errAuth }), errAuth)
	}
	assert.NoError(t, b.Execute(func() error { return nil }))
}

func TestBreaker_CancelledCallsAreNeutral(t *testing.T) {
	b := NewBreaker(2, time.Minute, nil)

	_ = b.Execute(func() error { return errDown })
	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, b.Execute(func() error { return context.Canceled }), context.Canceled)
	}

	// Still one failure short of opening, and not reset either.
	assert.ErrorIs(t, b.Execute(func() error { return errDown }), errDown)
	assert.ErrorIs(t, b.Execute(func() error { return nil }), ErrCircuitOpen)
}

func TestBreaker_CancelledTrialReleasesSlot(t *testing.T) {
	now := time.Now()
	b := NewBreaker(1, time.Second, nil)
	b.now = func() time.Time { return now }

	_ = b.Execute(func() error { return errDown })
	now = now.Add(2 * time.Second)

	assert.ErrorIs(t, b.Execute(func() error { return context.Canceled }), context.Canceled)
	assert.NoError(t, b.Execute(func() error { return nil }))
	assert.NoError(t, b.Execute(func() error { return nil }))
}
