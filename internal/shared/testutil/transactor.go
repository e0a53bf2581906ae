package testutil

import "context"

// Transactor runs the callback inline, counting calls. Fail, when set, is
// returned instead of running the callback.
type Transactor struct {
	Calls int
	Fail  error
}

func (t *Transactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	if t.Fail != nil {
		return t.Fail
	}
	return fn(ctx)
}
