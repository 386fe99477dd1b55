package store

import (
	"errors"
	"sync"
	"time"

	"github.com/smartweather/weather-advisor/internal/weather"
)

// ErrNotFound is returned when no snapshot is cached for a city.
var ErrNotFound = errors.New("no cached snapshot for city")

type cachedSnapshot struct {
	snapshot weather.WeatherSnapshot
	storedAt time.Time
}

// SnapshotCache is a concurrency-safe in-memory cache of the last good
// snapshots per city. It backs the offline ladder: a recent live snapshot is
// preferred over the static fallback table when a fetch fails.
type SnapshotCache struct {
	mu sync.RWMutex

	// key: normalized city name, value: history newest-last
	data map[string][]cachedSnapshot

	maxHistory int           // max snapshots per city (<=0 = unlimited)
	maxAge     time.Duration // max snapshot age (<=0 = unlimited)
}

// NewSnapshotCache creates a SnapshotCache with optional retention limits.
func NewSnapshotCache(maxHistory int, maxAge time.Duration) *SnapshotCache {
	return &SnapshotCache{
		data:       make(map[string][]cachedSnapshot),
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

// SaveSnapshot appends a snapshot for a city and enforces retention.
func (c *SnapshotCache) SaveSnapshot(city string, snapshot weather.WeatherSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	history := append(c.data[city], cachedSnapshot{
		snapshot: snapshot,
		storedAt: time.Now(),
	})

	if c.maxHistory > 0 && len(history) > c.maxHistory {
		history = history[len(history)-c.maxHistory:]
	}

	c.data[city] = history
}

// GetLatest returns the most recent snapshot for a city that is still within
// the age limit.
func (c *SnapshotCache) GetLatest(city string) (weather.WeatherSnapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	history := c.data[city]
	if len(history) == 0 {
		return weather.WeatherSnapshot{}, ErrNotFound
	}

	latest := history[len(history)-1]
	if c.maxAge > 0 && time.Since(latest.storedAt) > c.maxAge {
		return weather.WeatherSnapshot{}, ErrNotFound
	}

	return latest.snapshot, nil
}
