package llm

import (
	"context"
	"math/rand"
	"time"

	"github.com/BRArjun/zor/pkg/types"
	"github.com/BRArjun/zor/pkg/utils"
)

const defaultMaxDelay = 60 * time.Second

// Caller wraps a Backend with retry, backoff, and rate-limit detection.
// All retry state is local to a single Call invocation; there are no
// process-wide counters.
type Caller struct {
	backend    Backend
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
	onRetry    func(RetryEvent)
	logger     *utils.Logger
}

// NewCaller creates a caller that makes at most maxRetries+1 attempts,
// waiting baseDelay * 2^attempt (plus jitter) between them.
func NewCaller(backend Backend, maxRetries int, baseDelay time.Duration) *Caller {
	return &Caller{
		backend:    backend,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		maxDelay:   defaultMaxDelay,
		logger:     utils.GetLogger(),
	}
}

// SetRetryHook overrides the default retry-event sink (the workspace log).
func (c *Caller) SetRetryHook(fn func(RetryEvent)) {
	c.onRetry = fn
}

func (c *Caller) emit(ev RetryEvent) {
	if c.onRetry != nil {
		c.onRetry(ev)
		return
	}
	c.logger.Logf("Retry attempt %d: waiting %s (rate_limited=%t): %v",
		ev.Attempt, ev.Delay, ev.RateLimited, ev.Err)
}

// Call invokes the backend, retrying rate-limited and transient failures
// with exponential backoff. Fatal failures propagate immediately. After all
// retries are spent it returns a *BackendExhaustedError.
func (c *Caller) Call(ctx context.Context, prompt string, opts Options) (string, error) {
	var lastErr error
	attempts := 0

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		start := time.Now()
		text, err := c.backend.Generate(ctx, prompt, opts)
		if err == nil {
			return text, nil
		}

		rateLimited := IsRateLimitError(err)
		if !rateLimited && IsFatalError(err) {
			return "", err
		}

		record := types.CallAttempt{
			Number:      attempt + 1,
			Elapsed:     time.Since(start),
			RateLimited: rateLimited,
			Err:         err,
		}
		attempts++
		lastErr = err

		if attempt == c.maxRetries {
			break
		}

		delay := c.backoffDelay(attempt)
		c.emit(RetryEvent{Attempt: record.Number, Delay: delay, RateLimited: rateLimited, Err: err})

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	return "", &BackendExhaustedError{Attempts: attempts, LastErr: lastErr}
}

// backoffDelay returns baseDelay * 2^attempt plus up to 50% jitter, capped.
// Successive delays are non-decreasing: doubling outgrows the jitter.
func (c *Caller) backoffDelay(attempt int) time.Duration {
	delay := c.baseDelay << uint(attempt)
	if delay <= 0 || delay > c.maxDelay {
		return c.maxDelay
	}
	jitter := time.Duration(rand.Int63n(int64(delay)/2 + 1))
	total := delay + jitter
	if total > c.maxDelay {
		return c.maxDelay
	}
	return total
}
