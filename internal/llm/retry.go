package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient failures of inner with jittered
// exponential backoff.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	sleep  func(ctx context.Context, d time.Duration) error
}

func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg, sleep: sleepCtx}
}

type retryPolicy int

const (
	giveUp retryPolicy = iota
	retryOnce
	retryAlways
)

// policyFor decides whether err is worth another call. An invalid reply
// gets one more chance; truncation, bad credentials and cancellation get
// none.
func policyFor(err error) retryPolicy {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return giveUp
	}
	var (
		maxTok  *ErrMaxTokensExceeded
		unauth  *ErrUnauthorized
		invalid *ErrInvalidResponse
	)
	switch {
	case errors.As(err, &maxTok), errors.As(err, &unauth):
		return giveUp
	case errors.As(err, &invalid):
		return retryOnce
	}
	return retryAlways
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := max(r.config.MaxAttempts, 1)
	retriedInvalid := false

	for attempt := 0; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if attempt+1 >= attempts {
			return nil, err
		}

		switch policyFor(err) {
		case giveUp:
			return nil, err
		case retryOnce:
			if retriedInvalid {
				return nil, err
			}
			retriedInvalid = true
		}

		if serr := r.sleep(ctx, r.config.wait(attempt, err)); serr != nil {
			return nil, serr
		}
	}
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

// wait is the pause before retry number attempt+1. A server-supplied
// Retry-After wins over the computed backoff.
func (c RetryConfig) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(c.InitialWait) * math.Pow(c.Multiplier, float64(attempt))
	d = min(d, float64(c.MaxWait))
	jitter := 0.2 * d * (2*rand.Float64() - 1)
	return time.Duration(max(d+jitter, 0))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
