package handlers

import (
	"context"
)

// =====================================================================
// Mock use cases
// =====================================================================

// mockExecutor satisfies every Execute(ctx, input) (output, error) use case
// and records the input it was called with.
type mockExecutor[In any, Out any] struct {
	got    In
	calls  int
	result Out
	err    error
}

func (m *mockExecutor[In, Out]) Execute(_ context.Context, in In) (Out, error) {
	m.got = in
	m.calls++
	return m.result, m.err
}

// mockLister satisfies the argument-free Execute(ctx) use cases.
type mockLister[Out any] struct {
	result Out
	err    error
}

func (m *mockLister[Out]) Execute(_ context.Context) (Out, error) {
	return m.result, m.err
}

// mockCommand satisfies use cases that only return an error.
type mockCommand[In any] struct {
	got   In
	calls int
	err   error
}

func (m *mockCommand[In]) Execute(_ context.Context, in In) error {
	m.got = in
	m.calls++
	return m.err
}
