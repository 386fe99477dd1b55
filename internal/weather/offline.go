package weather

import (
	"fmt"
	"strings"
	"time"

	"github.com/smartweather/weather-advisor/internal/common"
)

// offlineEntry is a canned snapshot served when the provider is unreachable.
// Forecast days carry offsets instead of dates; dates are filled in relative
// to the request time.
type offlineEntry struct {
	snapshot WeatherSnapshot
	forecast []offlineDay
}

type offlineDay struct {
	dayOffset        int
	condition        Condition
	highTempC        int
	lowTempC         int
	humidityPct      int
	windKph          int
	precipitationPct int
}

var offlineSaoPaulo = offlineEntry{
	snapshot: WeatherSnapshot{
		Location:         "São Paulo, BR",
		TemperatureC:     23,
		FeelsLikeC:       24,
		Condition:        ConditionCloudy,
		HumidityPct:      70,
		WindKph:          8,
		PrecipitationPct: 20,
		Sunrise:          "06:15",
		Sunset:           "18:30",
	},
	forecast: []offlineDay{
		{0, ConditionCloudy, 24, 19, 70, 8, 20},
		{1, ConditionRain, 22, 18, 80, 10, 60},
		{2, ConditionRain, 21, 17, 85, 12, 70},
		{3, ConditionCloudy, 23, 18, 75, 9, 30},
		{4, ConditionClear, 25, 19, 65, 7, 10},
	},
}

var offlineRioDeJaneiro = offlineEntry{
	snapshot: WeatherSnapshot{
		Location:         "Rio de Janeiro, BR",
		TemperatureC:     28,
		FeelsLikeC:       30,
		Condition:        ConditionClear,
		HumidityPct:      65,
		WindKph:          12,
		PrecipitationPct: 0,
		Sunrise:          "06:10",
		Sunset:           "18:25",
	},
	forecast: []offlineDay{
		{0, ConditionClear, 30, 24, 65, 12, 0},
		{1, ConditionClear, 31, 25, 60, 10, 0},
		{2, ConditionCloudy, 29, 24, 70, 15, 20},
		{3, ConditionRain, 27, 23, 75, 18, 50},
		{4, ConditionCloudy, 28, 24, 70, 14, 30},
	},
}

var offlineDefault = offlineEntry{
	snapshot: WeatherSnapshot{
		Location:         "Localização Padrão",
		TemperatureC:     25,
		FeelsLikeC:       26,
		Condition:        ConditionClear,
		HumidityPct:      60,
		WindKph:          10,
		PrecipitationPct: 0,
		Sunrise:          "06:00",
		Sunset:           "18:00",
	},
	forecast: []offlineDay{
		{0, ConditionClear, 27, 22, 60, 10, 0},
		{1, ConditionCloudy, 26, 21, 65, 12, 10},
		{2, ConditionRain, 24, 20, 75, 15, 40},
		{3, ConditionClear, 25, 21, 60, 8, 0},
		{4, ConditionClear, 28, 23, 55, 7, 0},
	},
}

// OfflineSnapshot returns the canned snapshot that best matches the requested
// city. Matching is case-insensitive substring containment against the known
// cities; anything else gets the generic default. The location label keeps the
// requested city name and is suffixed with a fallback marker.
func OfflineSnapshot(city string) WeatherSnapshot {
	normalized := strings.ToLower(strings.TrimSpace(city))

	var entry offlineEntry
	var label string
	switch {
	case common.HasAny(normalized, "são paulo", "sao paulo"):
		entry = offlineSaoPaulo
		label = fmt.Sprintf("%s, BR (Fallback)", city)
	case common.HasAny(normalized, "rio de janeiro"):
		entry = offlineRioDeJaneiro
		label = fmt.Sprintf("%s, BR (Fallback)", city)
	default:
		entry = offlineDefault
		label = fmt.Sprintf("%s (Fallback)", city)
	}

	snap := entry.snapshot
	snap.Location = label
	snap.Fallback = true

	today := time.Now().UTC()
	snap.Forecast = make([]DailySummary, 0, len(entry.forecast))
	for _, d := range entry.forecast {
		snap.Forecast = append(snap.Forecast, DailySummary{
			Date:             today.AddDate(0, 0, d.dayOffset).Format("2006-01-02"),
			Condition:        d.condition,
			HighTempC:        d.highTempC,
			LowTempC:         d.lowTempC,
			HumidityPct:      d.humidityPct,
			WindKph:          d.windKph,
			PrecipitationPct: d.precipitationPct,
		})
	}
	return snap
}
