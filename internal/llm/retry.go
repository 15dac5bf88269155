package llm

import (
	"context"
	"time"
)

// RetryPolicy runs an operation with bounded attempts and exponential
// backoff. The wait after a failed attempt n is BaseDelay * 2^n, so with a
// 1s base the waits are 2s then 4s; the last attempt's failure is returned,
// not retried.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration

	// Retryable decides whether a failure is worth another attempt.
	// Nil retries everything: a 400 burns the backoff budget exactly
	// like a 503.
	Retryable func(error) bool

	// Sleep is the wait between attempts. Nil uses a context-aware timer;
	// tests inject a recorder instead of waiting for real.
	Sleep func(context.Context, time.Duration) error
}

// Do calls fn until it succeeds or the attempt budget is spent and returns
// the last error. Attempts are numbered from 1.
func (p RetryPolicy) Do(ctx context.Context, fn func(attempt int) error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		lastErr = fn(attempt)
		if lastErr == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			return lastErr
		}
		if attempt == p.MaxAttempts {
			break
		}
		if err := sleep(ctx, p.BaseDelay<<uint(attempt)); err != nil {
			return err
		}
	}
	return lastErr
}

// sleepContext waits without blocking the scheduler and bails out early if
// the caller is gone.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
