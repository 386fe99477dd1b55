package weather

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
)

// ErrInvalidCity is returned for blank city names. It is the only error the
// snapshot path surfaces; transport failures degrade to offline data instead.
var ErrInvalidCity = errors.New("city name must not be empty")

// Service orchestrates the live fetch, normalization and fallback policy for
// weather snapshots. It owns the outbound-call timeout; everything below it
// is stateless.
type Service struct {
	provider Provider
	cache    SnapshotCache
	timeout  time.Duration
}

// NewService creates a Service. The cache holds last good snapshots and is
// consulted before the static offline table when a live fetch fails.
func NewService(provider Provider, cache SnapshotCache, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{
		provider: provider,
		cache:    cache,
		timeout:  timeout,
	}
}

// GetSnapshot fetches and normalizes current conditions plus the 5-day
// forecast for a city. Provider failures of any kind (timeout, unknown city,
// transport error) never propagate: the result degrades to the last cached
// snapshot, then to the static offline table, both marked as fallback data.
func (s *Service) GetSnapshot(ctx context.Context, city string) (WeatherSnapshot, error) {
	if strings.TrimSpace(city) == "" {
		return WeatherSnapshot{}, ErrInvalidCity
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	current, err := s.provider.CurrentConditions(ctx, city)
	if err != nil {
		log.Printf("weather: current conditions fetch failed for %q: %v", city, err)
		return s.fallbackSnapshot(city), nil
	}

	samples, err := s.provider.Forecast(ctx, city)
	if err != nil {
		log.Printf("weather: forecast fetch failed for %q: %v", city, err)
		return s.fallbackSnapshot(city), nil
	}

	snapshot := BuildSnapshot(current, samples)
	s.cache.SaveSnapshot(cacheKey(city), snapshot)
	return snapshot, nil
}

// fallbackSnapshot prefers the last good snapshot for the city over the
// static offline table.
func (s *Service) fallbackSnapshot(city string) WeatherSnapshot {
	cached, err := s.cache.GetLatest(cacheKey(city))
	if err == nil {
		cached.Fallback = true
		if !strings.Contains(cached.Location, "(Fallback)") {
			cached.Location += " (Fallback)"
		}
		return cached
	}
	return OfflineSnapshot(city)
}

func cacheKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
