package weather

import (
	"context"
	"errors"
)

// CurrentConditions is a provider's typed current-weather record for one city.
type CurrentConditions struct {
	LocationLabel string  // display label, e.g. "São Paulo, BR"
	TemperatureC  float64
	FeelsLikeC    float64
	HumidityPct   float64
	WindSpeedMS   float64
	SunriseEpoch  int64
	SunsetEpoch   int64
	TimezoneSec   int // UTC offset of the location, seconds
	ConditionCode int
}

// ForecastSample is a single 3-hour forecast interval.
type ForecastSample struct {
	TimestampEpoch int64
	TempMinC       float64
	TempMaxC       float64
	HumidityPct    float64
	WindSpeedMS    float64
	POP            float64 // probability of precipitation, 0.0-1.0
	ConditionCode  int
}

// Transport-class provider failures. The service treats all of them as a
// trigger for the offline fallback path rather than surfacing them.
var (
	ErrCityNotFound = errors.New("city not found")
	ErrTimeout      = errors.New("provider timed out")
	ErrUnavailable  = errors.New("provider unavailable")
)

// Provider abstracts the upstream weather source (e.g. OpenWeatherMap).
// Implementations must honor context cancellation and return one of the
// sentinel errors above for transport-class failures.
type Provider interface {
	Name() string
	CurrentConditions(ctx context.Context, city string) (CurrentConditions, error)
	Forecast(ctx context.Context, city string) ([]ForecastSample, error)
}

// SnapshotCache holds the last good snapshots per city so the service can
// prefer recent live data over the static offline table when a fetch fails.
type SnapshotCache interface {
	SaveSnapshot(city string, snapshot WeatherSnapshot)
	GetLatest(city string) (WeatherSnapshot, error)
}
