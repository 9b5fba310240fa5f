package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Kind classifies a backend failure and selects its retry policy.
type Kind string

const (
	KindAPIError  Kind = "api_error"
	KindTimeout   Kind = "timeout"
	KindRateLimit Kind = "rate_limit"
	KindAuthError Kind = "auth_error"
	KindUnknown   Kind = "unknown"
)

// Classify maps an error to its Kind by inspecting the message.
// Checks run in priority order so "api timeout" classifies as timeout.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	msg := strings.ToLower(err.Error())

	if strings.Contains(msg, "timeout") || errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	if strings.Contains(msg, "rate limit") || strings.Contains(msg, "429") {
		return KindRateLimit
	}
	if strings.Contains(msg, "auth") || strings.Contains(msg, "401") || strings.Contains(msg, "403") {
		return KindAuthError
	}
	if strings.Contains(msg, "api") {
		return KindAPIError
	}

	return KindUnknown
}

// Policy bounds the retry loop for one error kind.
// MaxAttempts counts the first call; zero means never retry.
type Policy struct {
	MaxAttempts int
	Multiplier  float64
	MinWait     time.Duration
	MaxWait     time.Duration
}

// Retryable reports whether the policy allows any attempt beyond the first.
func (p Policy) Retryable() bool {
	return p.MaxAttempts > 1
}

// PolicyFor returns the retry policy for an error kind.
func PolicyFor(kind Kind) Policy {
	switch kind {
	case KindTimeout:
		return Policy{MaxAttempts: 3, Multiplier: 2, MinWait: 2 * time.Second, MaxWait: 10 * time.Second}
	case KindRateLimit:
		return Policy{MaxAttempts: 5, Multiplier: 3, MinWait: 5 * time.Second, MaxWait: 30 * time.Second}
	case KindAPIError:
		return Policy{MaxAttempts: 3, Multiplier: 1.5, MinWait: 1 * time.Second, MaxWait: 10 * time.Second}
	case KindAuthError:
		return Policy{MaxAttempts: 0}
	default:
		return Policy{MaxAttempts: 2, Multiplier: 2, MinWait: 1 * time.Second, MaxWait: 5 * time.Second}
	}
}

// backoff returns the wait before the given retry, exponential in the
// number of failed attempts and clamped to [MinWait, MaxWait].
func (p Policy) backoff(failed int) time.Duration {
	wait := time.Duration(p.Multiplier * math.Pow(2, float64(failed-1)) * float64(time.Second))
	if wait < p.MinWait {
		wait = p.MinWait
	}
	if wait > p.MaxWait {
		wait = p.MaxWait
	}
	return wait
}

// Error reports a call that exhausted its retry budget.
type Error struct {
	Kind     Kind
	Attempts int
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s after %d attempt(s): %v", e.Kind, e.Attempts, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Do calls fn, classifying the first failure to pick the retry policy,
// then retries with exponential backoff until success, exhaustion, or
// context cancellation.
func Do(ctx context.Context, fn func(context.Context) error) error {
	err := fn(ctx)
	if err == nil {
		return nil
	}
	kind := Classify(err)
	return loop(ctx, kind, PolicyFor(kind), err, fn)
}

// DoWithPolicy is Do with a caller-supplied policy instead of the
// classified default.
func DoWithPolicy(ctx context.Context, pol Policy, fn func(context.Context) error) error {
	err := fn(ctx)
	if err == nil {
		return nil
	}
	return loop(ctx, Classify(err), pol, err, fn)
}

func loop(ctx context.Context, kind Kind, pol Policy, first error, fn func(context.Context) error) error {
	err := first
	attempts := 1

	for attempts < pol.MaxAttempts {
		select {
		case <-ctx.Done():
			return &Error{Kind: kind, Attempts: attempts, Err: ctx.Err()}
		case <-time.After(pol.backoff(attempts)):
		}

		attempts++
		if err = fn(ctx); err == nil {
			return nil
		}
	}

	return &Error{Kind: kind, Attempts: attempts, Err: err}
}
