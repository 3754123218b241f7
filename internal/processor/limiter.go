package processor

import "context"

// callLimiter caps the number of model calls in flight across requests.
type callLimiter struct {
	slots chan struct{}
}

func newCallLimiter(limit int) *callLimiter {
	if limit <= 0 {
		limit = 1
	}
	return &callLimiter{slots: make(chan struct{}, limit)}
}

// do runs fn once a slot is free. It returns ctx.Err() without calling fn
// if ctx ends first.
func (l *callLimiter) do(ctx context.Context, fn func() error) error {
	select {
	case l.slots <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-l.slots }()
	return fn()
}

