package weather

import (
	"math"
	"sort"
	"time"
)

const maxForecastDays = 5

// conditionRange maps a half-open [Lo,Hi) interval of OpenWeather condition
// codes to a normalized Condition. Kept as an explicit ordered list so the
// precedence is auditable; first match wins.
type conditionRange struct {
	Lo, Hi int
	Cond   Condition
}

var conditionRanges = []conditionRange{
	{200, 300, ConditionThunderstorm},
	{300, 400, ConditionDrizzle},
	{500, 600, ConditionRain},
	{600, 700, ConditionSnow},
	{700, 800, ConditionFog},
	{800, 801, ConditionClear},
	{801, 900, ConditionCloudy},
}

// MapCondition converts an OpenWeather condition code into the internal
// vocabulary. Unknown codes (the 4xx gap, sub-200 values, anything past the
// 8xx cloud group) default to Clear; that permissiveness is deliberate.
func MapCondition(code int) Condition {
	for _, r := range conditionRanges {
		if code >= r.Lo && code < r.Hi {
			return r.Cond
		}
	}
	return ConditionClear
}

// BuildSnapshot normalizes a current-conditions record and its 3-hourly
// forecast samples into a WeatherSnapshot.
func BuildSnapshot(current CurrentConditions, samples []ForecastSample) WeatherSnapshot {
	return buildSnapshot(current, samples, time.Now().UTC())
}

func buildSnapshot(current CurrentConditions, samples []ForecastSample, now time.Time) WeatherSnapshot {
	// Precipitation for "now" comes from the first forecast interval; the
	// current-conditions endpoint has no probability field.
	precip := 0
	if len(samples) > 0 {
		precip = roundToInt(samples[0].POP * 100)
	}

	zone := time.FixedZone("local", current.TimezoneSec)

	return WeatherSnapshot{
		Location:         current.LocationLabel,
		TemperatureC:     roundToInt(current.TemperatureC),
		FeelsLikeC:       roundToInt(current.FeelsLikeC),
		Condition:        MapCondition(current.ConditionCode),
		HumidityPct:      roundToInt(current.HumidityPct),
		WindKph:          roundToInt(current.WindSpeedMS * 3.6),
		PrecipitationPct: precip,
		Sunrise:          formatTimeOfDay(current.SunriseEpoch, zone),
		Sunset:           formatTimeOfDay(current.SunsetEpoch, zone),
		Forecast:         aggregateDaily(samples, now),
	}
}

// aggregateDaily groups samples by UTC calendar date and reduces each group
// to a DailySummary: max of interval highs, min of interval lows, mean
// humidity and wind, max probability of precipitation, and the condition
// seen in the most samples (ties broken by first-seen order).
func aggregateDaily(samples []ForecastSample, now time.Time) []DailySummary {
	if len(samples) == 0 {
		return nil
	}

	type dayGroup struct {
		samples []ForecastSample
	}

	groups := make(map[string]*dayGroup)
	for _, s := range samples {
		key := time.Unix(s.TimestampEpoch, 0).UTC().Format("2006-01-02")
		g, ok := groups[key]
		if !ok {
			g = &dayGroup{}
			groups[key] = g
		}
		g.samples = append(g.samples, s)
	}

	// The current-conditions reading already covers "now", so today's bucket
	// is dropped when any other day is available.
	todayKey := now.Format("2006-01-02")
	if len(groups) > 1 {
		delete(groups, todayKey)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	summaries := make([]DailySummary, 0, maxForecastDays)
	for _, k := range keys {
		if len(summaries) >= maxForecastDays {
			break
		}
		summaries = append(summaries, summarizeDay(k, groups[k].samples))
	}
	return summaries
}

func summarizeDay(date string, samples []ForecastSample) DailySummary {
	var (
		high        = samples[0].TempMaxC
		low         = samples[0].TempMinC
		sumHumidity float64
		sumWind     float64
		maxPOP      float64
	)

	counts := make(map[Condition]int)
	var seen []Condition

	for _, s := range samples {
		if s.TempMaxC > high {
			high = s.TempMaxC
		}
		if s.TempMinC < low {
			low = s.TempMinC
		}
		sumHumidity += s.HumidityPct
		sumWind += s.WindSpeedMS
		if s.POP > maxPOP {
			maxPOP = s.POP
		}

		cond := MapCondition(s.ConditionCode)
		if counts[cond] == 0 {
			seen = append(seen, cond)
		}
		counts[cond]++
	}

	// Majority condition; iterate in first-seen order so ties are stable.
	best := seen[0]
	bestCount := 0
	for _, cond := range seen {
		if counts[cond] > bestCount {
			bestCount = counts[cond]
			best = cond
		}
	}

	n := float64(len(samples))
	return DailySummary{
		Date:             date,
		Condition:        best,
		HighTempC:        roundToInt(high),
		LowTempC:         roundToInt(low),
		HumidityPct:      roundToInt(sumHumidity / n),
		WindKph:          roundToInt(sumWind / n * 3.6),
		PrecipitationPct: roundToInt(maxPOP * 100),
	}
}

func formatTimeOfDay(epoch int64, zone *time.Location) string {
	if epoch == 0 {
		return ""
	}
	return time.Unix(epoch, 0).In(zone).Format("15:04")
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}
