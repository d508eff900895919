package provider

import (
	"context"
	"errors"
	"fmt"

	"go-weather/internal/domain/entity"

	"golang.org/x/time/rate"
)

// ErrRateLimited is returned when a request gives up waiting for a token.
var ErrRateLimited = errors.New("rate limit exceeded")

// RateLimitedProvider wraps a Provider with a process-local token bucket.
// The two-call provider spends one token per Fetch, not per HTTP call.
type RateLimitedProvider struct {
	provider Provider
	limiter  *rate.Limiter
}

// NewRateLimitedProvider creates a new rate limited provider.
// rps may be fractional; burst below 1 is raised to 1.
func NewRateLimitedProvider(provider Provider, rps float64, burst int) *RateLimitedProvider {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedProvider) Name() string {
	return r.provider.Name()
}

// Fetch waits for a token or for ctx to end, then forwards to the wrapped provider.
func (r *RateLimitedProvider) Fetch(ctx context.Context, city string) (*entity.Observation, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return r.provider.Fetch(ctx, city)
}
