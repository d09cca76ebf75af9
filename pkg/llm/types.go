package llm

import (
	"context"
	"fmt"
	"time"
)

// Backend is the single capability this core consumes: text in, text out.
// Implementations may fail transiently; classification and retry live in
// the Caller, not here.
type Backend interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// BackendFunc adapts a plain function to the Backend interface.
type BackendFunc func(ctx context.Context, prompt string, opts Options) (string, error)

func (f BackendFunc) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	return f(ctx, prompt, opts)
}

// Options are per-call generation parameters.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// RetryEvent is emitted before each backoff wait so the logging layer can
// observe attempt number and delay without the core printing anything.
type RetryEvent struct {
	Attempt     int
	Delay       time.Duration
	RateLimited bool
	Err         error
}

// BackendExhaustedError is returned by Caller.Call only after all retries
// are spent without a usable response.
type BackendExhaustedError struct {
	Attempts int
	LastErr  error
}

func (e *BackendExhaustedError) Error() string {
	return fmt.Sprintf("backend exhausted after %d attempt(s): %v", e.Attempts, e.LastErr)
}

func (e *BackendExhaustedError) Unwrap() error {
	return e.LastErr
}
