package insight

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"smartcarbon/internal/port"
)

// circuitKey identifies whose quota a 429 was charged to: a provider slot and
// the fingerprint of the session key it was called with ("" for the server key).
type circuitKey struct {
	provider   int
	credential string
}

// FallbackGenerator tries providers in order, skipping those whose circuit is
// open for the calling credential. A session key is only ever sent to the
// first provider; later providers run on their own configured keys.
// It implements port.InsightGenerator.
type FallbackGenerator struct {
	generators []port.InsightGenerator
	names      []string
	now        func() time.Time

	mu       sync.Mutex
	circuits map[circuitKey]time.Time
}

// NewFallbackGenerator creates a FallbackGenerator from an ordered list of
// generators and their names.
func NewFallbackGenerator(generators []port.InsightGenerator, names []string) *FallbackGenerator {
	return &FallbackGenerator{
		generators: generators,
		names:      names,
		now:        time.Now,
		circuits:   make(map[circuitKey]time.Time),
	}
}

// WithClock replaces the clock used for circuit expiry.
func (f *FallbackGenerator) WithClock(now func() time.Time) *FallbackGenerator {
	f.now = now
	return f
}

func fingerprint(apiKey string) string {
	if apiKey == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:8])
}

// openUntil returns the reset time when the circuit for key is still open.
// Expired entries are dropped.
func (f *FallbackGenerator) openUntil(key circuitKey, now time.Time) (time.Time, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	resetAt, ok := f.circuits[key]
	if !ok {
		return time.Time{}, false
	}
	if !now.Before(resetAt) {
		delete(f.circuits, key)
		return time.Time{}, false
	}
	return resetAt, true
}

func (f *FallbackGenerator) open(key circuitKey, resetAt time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.circuits[key] = resetAt
}

func (f *FallbackGenerator) Generate(ctx context.Context, req port.InsightRequest) (*port.InsightOutput, error) {
	now := f.now()
	var lastErr error
	allRateLimited := true
	var earliestReset time.Time

	for i, g := range f.generators {
		providerReq := req
		if i > 0 {
			providerReq.APIKey = ""
		}
		key := circuitKey{provider: i, credential: fingerprint(providerReq.APIKey)}

		if resetAt, open := f.openUntil(key, now); open {
			log.Warn().Str("provider", f.names[i]).Time("reset_at", resetAt).Msg("skipping insight provider, circuit open")
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
			continue
		}

		out, err := g.Generate(ctx, providerReq)
		if err == nil {
			return out, nil
		}

		log.Warn().Str("provider", f.names[i]).Err(err).Msg("insight provider failed")
		lastErr = err

		var rlErr *RateLimitError
		if errors.As(err, &rlErr) {
			resetAt := now.Add(rlErr.RetryAfter)
			f.open(key, resetAt)
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
		} else {
			allRateLimited = false
		}
	}

	if lastErr == nil || allRateLimited {
		retryAfter := earliestReset.Sub(now)
		if retryAfter < time.Second {
			retryAfter = time.Second
		}
		return nil, NewRateLimitError("all", fmt.Errorf("all insight providers rate limited"), int(retryAfter.Seconds()))
	}

	return nil, fmt.Errorf("all insight providers failed: %w", lastErr)
}
