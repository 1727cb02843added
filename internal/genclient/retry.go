package genclient

import (
	"context"
	"time"
)

const (
	maxAttempts    = 5
	baseRetryDelay = 2 * time.Second
)

// withRetry runs fn up to maxAttempts times with exponential backoff
// (2s, 4s, 8s, 16s between attempts). Only retryable failures trigger
// another attempt; everything else propagates immediately. The last
// error is returned unchanged so callers still see its kind.
func withRetry[T any](ctx context.Context, sleep func(context.Context, time.Duration) error, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		out, err := fn()
		if err == nil {
			return out, nil
		}
		lastErr = err

		ge, ok := AsError(err)
		if !ok || !ge.Retryable() || attempt == maxAttempts-1 {
			return zero, err
		}

		delay := baseRetryDelay << attempt
		if err := sleep(ctx, delay); err != nil {
			return zero, err
		}
	}

	return zero, lastErr
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
