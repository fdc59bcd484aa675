package http

import (
	"context"
	"time"

	"github.com/voctra-ai/easy-appointments-client/internal/constants"
	"github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
)

// RetryPolicy decides whether a failed attempt is retried and how long to
// wait first. Both decision functions are pure, so the policy is testable
// without I/O or sleeping.
type RetryPolicy struct {
	// MaxAttempts is the total attempt budget, including the first attempt.
	MaxAttempts int

	// BaseDelay seeds the exponential backoff. The delay before attempt
	// n+1 is BaseDelay * 2^(n-1), capped at BaseDelay times ten.
	BaseDelay time.Duration
}

// DefaultRetryPolicy returns the stock policy: three attempts, one second
// base delay.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: constants.DefaultMaxAttempts,
		BaseDelay:   constants.DefaultRetryBaseDelay,
	}
}

// RetryState tracks one logical call through the retry loop. It is created
// fresh per call and discarded once the call resolves.
type RetryState struct {
	// Attempt is the 1-based number of the attempt in flight.
	Attempt int

	// Elapsed is the cumulative backoff waited so far.
	Elapsed time.Duration
}

// NewRetryState starts at the first attempt.
func NewRetryState() *RetryState {
	return &RetryState{Attempt: 1}
}

// ShouldRetry reports whether the error earns another attempt. Only
// transient kinds (rate limited, server error, transport) qualify, and only
// while the attempt budget lasts.
func (p RetryPolicy) ShouldRetry(err error, state *RetryState) bool {
	if state.Attempt >= p.maxAttempts() {
		return false
	}

	return easyappointments.IsRetryable(err)
}

// NextDelay computes the backoff before the next attempt:
// min(BaseDelay * 2^(attempt-1), BaseDelay*10).
func (p RetryPolicy) NextDelay(state *RetryState) time.Duration {
	base := p.baseDelay()
	ceiling := base * constants.BackoffCapMultiplier

	delay := base
	for i := 1; i < state.Attempt; i++ {
		if delay >= ceiling/2 {
			return ceiling
		}

		delay *= 2
	}

	return delay
}

func (p RetryPolicy) maxAttempts() int {
	if p.MaxAttempts <= 0 {
		return constants.DefaultMaxAttempts
	}

	return p.MaxAttempts
}

func (p RetryPolicy) baseDelay() time.Duration {
	if p.BaseDelay <= 0 {
		return constants.DefaultRetryBaseDelay
	}

	return p.BaseDelay
}

// Sleeper waits out backoff delays. The production implementation blocks
// cooperatively on a timer; tests inject a recording fake so the retry loop
// runs without real sleeping.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
