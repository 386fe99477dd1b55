package weather

// Condition represents a normalized high-level weather condition.
// Values are the fixed internal vocabulary; provider codes never leak past
// the normalizer.
type Condition string

const (
	ConditionClear        Condition = "Clear"
	ConditionCloudy       Condition = "Cloudy"
	ConditionRain         Condition = "Rain"
	ConditionDrizzle      Condition = "Drizzle"
	ConditionThunderstorm Condition = "Thunderstorm"
	ConditionSnow         Condition = "Snow"
	ConditionFog          Condition = "Fog"
)

// WeatherSnapshot is the normalized view of current conditions for one city,
// plus up to five daily forecast summaries. It is constructed fresh on every
// fetch and never mutated afterwards.
type WeatherSnapshot struct {
	Location         string         `json:"location"`
	TemperatureC     int            `json:"temperatureC"`
	FeelsLikeC       int            `json:"feelsLikeC"`
	Condition        Condition      `json:"condition"`
	HumidityPct      int            `json:"humidityPercent"`
	WindKph          int            `json:"windKph"`
	PrecipitationPct int            `json:"precipitationPercent"`
	Sunrise          string         `json:"sunrise"`
	Sunset           string         `json:"sunset"`
	Forecast         []DailySummary `json:"forecast"`

	// Fallback marks snapshots built from offline/cached data instead of a
	// live provider response, so presentation can disclose it.
	Fallback bool `json:"fallback,omitempty"`
}

// DailySummary is one calendar day's aggregate derived from 3-hourly samples.
type DailySummary struct {
	Date             string    `json:"date"` // YYYY-MM-DD
	Condition        Condition `json:"condition"`
	HighTempC        int       `json:"highTempC"`
	LowTempC         int       `json:"lowTempC"`
	HumidityPct      int       `json:"humidityPercent"`
	WindKph          int       `json:"windKph"`
	PrecipitationPct int       `json:"precipitationPercent"`
}
