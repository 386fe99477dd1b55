package weather

import (
	"testing"
	"time"
)

func TestMapCondition(t *testing.T) {
	cases := []struct {
		code int
		want Condition
	}{
		{200, ConditionThunderstorm},
		{232, ConditionThunderstorm},
		{300, ConditionDrizzle},
		{321, ConditionDrizzle},
		{500, ConditionRain},
		{501, ConditionRain},
		{599, ConditionRain},
		{600, ConditionSnow},
		{622, ConditionSnow},
		{700, ConditionFog},
		{741, ConditionFog},
		{781, ConditionFog},
		{800, ConditionClear},
		{801, ConditionCloudy},
		{804, ConditionCloudy},
		{899, ConditionCloudy},
		{999, ConditionClear}, // outside every known group, permissive default
		{100, ConditionClear},
		{400, ConditionClear}, // gap between drizzle and rain ranges
		{-1, ConditionClear},
	}

	for _, tc := range cases {
		if got := MapCondition(tc.code); got != tc.want {
			t.Errorf("MapCondition(%d) = %s, want %s", tc.code, got, tc.want)
		}
	}
}

func TestMapConditionDeterministic(t *testing.T) {
	for code := -10; code < 1000; code += 7 {
		first := MapCondition(code)
		for i := 0; i < 3; i++ {
			if got := MapCondition(code); got != first {
				t.Fatalf("MapCondition(%d) not deterministic: %s then %s", code, first, got)
			}
		}
	}
}

// sampleAt builds a forecast sample at the given offset from base.
func sampleAt(base time.Time, offset time.Duration, min, max float64, code int) ForecastSample {
	return ForecastSample{
		TimestampEpoch: base.Add(offset).Unix(),
		TempMinC:       min,
		TempMaxC:       max,
		HumidityPct:    60,
		WindSpeedMS:    5,
		POP:            0.1,
		ConditionCode:  code,
	}
}

func TestAggregateDailyHighLow(t *testing.T) {
	// All samples on the day after "now" so the today-drop rule is not in play.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	day := now.AddDate(0, 0, 1)

	samples := []ForecastSample{
		sampleAt(day, 0, 15, 19, 800),
		sampleAt(day, 3*time.Hour, 16, 22, 800),
		sampleAt(day, 6*time.Hour, 14, 18, 800),
	}

	got := aggregateDaily(samples, now)
	if len(got) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(got))
	}
	if got[0].HighTempC != 22 {
		t.Errorf("HighTempC = %d, want 22", got[0].HighTempC)
	}
	if got[0].LowTempC != 14 {
		t.Errorf("LowTempC = %d, want 14", got[0].LowTempC)
	}
	if got[0].HighTempC < got[0].LowTempC {
		t.Errorf("high %d < low %d", got[0].HighTempC, got[0].LowTempC)
	}
}

func TestAggregateDailyMeansAndMaxPOP(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	day := now.AddDate(0, 0, 1)

	samples := []ForecastSample{
		{TimestampEpoch: day.Unix(), TempMinC: 10, TempMaxC: 15, HumidityPct: 60, WindSpeedMS: 2, POP: 0.2, ConditionCode: 500},
		{TimestampEpoch: day.Add(3 * time.Hour).Unix(), TempMinC: 11, TempMaxC: 16, HumidityPct: 70, WindSpeedMS: 4, POP: 0.8, ConditionCode: 500},
	}

	got := aggregateDaily(samples, now)
	if len(got) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(got))
	}
	d := got[0]
	if d.HumidityPct != 65 {
		t.Errorf("HumidityPct = %d, want 65", d.HumidityPct)
	}
	// mean wind 3 m/s * 3.6 = 10.8 -> 11
	if d.WindKph != 11 {
		t.Errorf("WindKph = %d, want 11", d.WindKph)
	}
	// max pop, not mean: 0.8 -> 80
	if d.PrecipitationPct != 80 {
		t.Errorf("PrecipitationPct = %d, want 80", d.PrecipitationPct)
	}
	if d.Condition != ConditionRain {
		t.Errorf("Condition = %s, want Rain", d.Condition)
	}
}

func TestAggregateDailyMajorityConditionFirstSeenTie(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	day := now.AddDate(0, 0, 1)

	// 2x Cloudy, 2x Rain: Cloudy seen first wins the tie.
	samples := []ForecastSample{
		{TimestampEpoch: day.Unix(), TempMinC: 10, TempMaxC: 15, ConditionCode: 803},
		{TimestampEpoch: day.Add(3 * time.Hour).Unix(), TempMinC: 10, TempMaxC: 15, ConditionCode: 500},
		{TimestampEpoch: day.Add(6 * time.Hour).Unix(), TempMinC: 10, TempMaxC: 15, ConditionCode: 804},
		{TimestampEpoch: day.Add(9 * time.Hour).Unix(), TempMinC: 10, TempMaxC: 15, ConditionCode: 501},
	}

	got := aggregateDaily(samples, now)
	if len(got) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(got))
	}
	if got[0].Condition != ConditionCloudy {
		t.Errorf("Condition = %s, want Cloudy (first-seen tie-break)", got[0].Condition)
	}
}

func TestAggregateDailyTruncatesToFiveAscending(t *testing.T) {
	now := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)

	var samples []ForecastSample
	// Samples for today plus 6 more days.
	for d := 0; d < 7; d++ {
		day := now.AddDate(0, 0, d)
		samples = append(samples,
			sampleAt(day, 0, 10, 20, 800),
			sampleAt(day, 6*time.Hour, 11, 21, 800),
		)
	}

	got := aggregateDaily(samples, now)
	if len(got) != 5 {
		t.Fatalf("expected 5 summaries, got %d", len(got))
	}

	seen := make(map[string]bool)
	for i, d := range got {
		if seen[d.Date] {
			t.Errorf("duplicate date %s", d.Date)
		}
		seen[d.Date] = true
		if i > 0 && !(got[i-1].Date < d.Date) {
			t.Errorf("dates not strictly ascending: %s then %s", got[i-1].Date, d.Date)
		}
	}

	// Today's bucket must have been dropped in favor of current conditions.
	today := now.Format("2006-01-02")
	if seen[today] {
		t.Errorf("today %s should be excluded when other days exist", today)
	}
}

func TestAggregateDailyKeepsTodayWhenOnlyDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)

	samples := []ForecastSample{
		sampleAt(now, 0, 10, 20, 800),
		sampleAt(now, 3*time.Hour, 11, 21, 800),
	}

	got := aggregateDaily(samples, now)
	if len(got) != 1 {
		t.Fatalf("expected today's bucket to survive, got %d summaries", len(got))
	}
	if got[0].Date != now.Format("2006-01-02") {
		t.Errorf("Date = %s, want %s", got[0].Date, now.Format("2006-01-02"))
	}
}

func TestBuildSnapshotCurrentReading(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	current := CurrentConditions{
		LocationLabel: "Curitiba, BR",
		TemperatureC:  21.6,
		FeelsLikeC:    22.4,
		HumidityPct:   71,
		WindSpeedMS:   3.2,
		SunriseEpoch:  now.Add(-6 * time.Hour).Unix(),
		SunsetEpoch:   now.Add(6 * time.Hour).Unix(),
		TimezoneSec:   -3 * 3600,
		ConditionCode: 501,
	}
	samples := []ForecastSample{
		{TimestampEpoch: now.AddDate(0, 0, 1).Unix(), TempMinC: 15, TempMaxC: 20, POP: 0.45, ConditionCode: 500},
	}

	snap := buildSnapshot(current, samples, now)

	if snap.Location != "Curitiba, BR" {
		t.Errorf("Location = %q", snap.Location)
	}
	if snap.TemperatureC != 22 {
		t.Errorf("TemperatureC = %d, want 22", snap.TemperatureC)
	}
	if snap.FeelsLikeC != 22 {
		t.Errorf("FeelsLikeC = %d, want 22", snap.FeelsLikeC)
	}
	if snap.Condition != ConditionRain {
		t.Errorf("Condition = %s, want Rain", snap.Condition)
	}
	// 3.2 m/s * 3.6 = 11.52 -> 12
	if snap.WindKph != 12 {
		t.Errorf("WindKph = %d, want 12", snap.WindKph)
	}
	// Current precipitation comes from the first forecast sample's pop.
	if snap.PrecipitationPct != 45 {
		t.Errorf("PrecipitationPct = %d, want 45", snap.PrecipitationPct)
	}
	if snap.Fallback {
		t.Error("live snapshot must not be marked fallback")
	}
}

func TestBuildSnapshotNoForecastSamples(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	snap := buildSnapshot(CurrentConditions{ConditionCode: 800}, nil, now)

	if snap.PrecipitationPct != 0 {
		t.Errorf("PrecipitationPct = %d, want 0 without samples", snap.PrecipitationPct)
	}
	if len(snap.Forecast) != 0 {
		t.Errorf("expected empty forecast, got %d entries", len(snap.Forecast))
	}
}
