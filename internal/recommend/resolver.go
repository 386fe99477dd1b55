package recommend

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// ErrInvalidProfile is returned when the profile type is outside the fixed
// enumeration. It is the only error Resolve surfaces; store failures degrade
// to the next tier.
var ErrInvalidProfile = errors.New("unknown profile type")

// Resolver selects the single best recommendation for a profile and weather
// situation through an ordered ladder: specific store match, generic store
// match for the profile, then the static fallback table. It only ever reads.
type Resolver struct {
	store   Store
	timeout time.Duration
}

// NewResolver creates a Resolver. The timeout bounds each store lookup.
func NewResolver(store Store, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Resolver{
		store:   store,
		timeout: timeout,
	}
}

// Resolve always returns a non-nil recommendation for a valid profile. Store
// errors at any tier count as "no match at that tier": resolution proceeds
// down the ladder instead of propagating them.
func (r *Resolver) Resolve(ctx context.Context, profile ProfileType, condition string, temperatureC int) (Recommendation, error) {
	if !profile.Valid() {
		return Recommendation{}, fmt.Errorf("%w: %q", ErrInvalidProfile, profile)
	}

	normalized := strings.ToLower(strings.TrimSpace(condition))

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rec, err := r.store.FindSpecific(ctx, profile, normalized, temperatureC)
	if err != nil {
		log.Printf("recommend: specific lookup failed for %s/%s: %v", profile, normalized, err)
	}
	if rec != nil {
		return *rec, nil
	}

	rec, err = r.store.FindGeneric(ctx, profile)
	if err != nil {
		log.Printf("recommend: generic lookup failed for %s: %v", profile, err)
	}
	if rec != nil {
		return *rec, nil
	}

	return FallbackRecommendation(profile, normalized, temperatureC), nil
}
