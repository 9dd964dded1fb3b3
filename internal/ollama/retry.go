package ollama

import (
	"context"
	"time"
)

// RetryPolicy drives repeated attempts at a generation call. Backoff is
// a function of the zero-based attempt number so tests can zero it out.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
	Retryable   func(error) bool
}

// DefaultRetryPolicy retries transient failures with linear backoff:
// 2s after the first failed attempt, 4s after the second.
func DefaultRetryPolicy(maxAttempts int) RetryPolicy {
	if maxAttempts < 1 {
		maxAttempts = 2
	}
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Backoff: func(attempt int) time.Duration {
			return time.Duration(attempt+1) * 2 * time.Second
		},
		Retryable: Retryable,
	}
}

// Do runs fn up to MaxAttempts times, sleeping Backoff(attempt) between
// tries. Non-retryable errors and context cancellation stop immediately;
// the last error is returned when all attempts fail.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			return lastErr
		}
		if attempt == p.MaxAttempts-1 {
			break
		}
		wait := time.Duration(0)
		if p.Backoff != nil {
			wait = p.Backoff(attempt)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return lastErr
}
