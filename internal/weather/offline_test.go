package weather

import (
	"strings"
	"testing"
	"time"
)

func TestOfflineSnapshotSaoPauloSubstringMatch(t *testing.T) {
	// No diacritics in the request; the match is substring and
	// case-insensitive.
	snap := OfflineSnapshot("Sao Paulo")

	if !strings.Contains(snap.Location, "Sao Paulo") {
		t.Errorf("Location %q should contain the requested city", snap.Location)
	}
	if !strings.Contains(snap.Location, "(Fallback)") {
		t.Errorf("Location %q should carry the fallback marker", snap.Location)
	}
	if snap.Condition != ConditionCloudy || snap.TemperatureC != 23 {
		t.Errorf("expected the São Paulo entry, got condition=%s temp=%d", snap.Condition, snap.TemperatureC)
	}
	if !snap.Fallback {
		t.Error("offline snapshot must be marked fallback")
	}
}

func TestOfflineSnapshotSubstringContainment(t *testing.T) {
	snap := OfflineSnapshot("Grande SÃO PAULO região metropolitana")
	if snap.TemperatureC != 23 {
		t.Errorf("expected the São Paulo entry for a containing name, got temp=%d", snap.TemperatureC)
	}
}

func TestOfflineSnapshotRioDeJaneiro(t *testing.T) {
	snap := OfflineSnapshot("rio de janeiro")
	if snap.Condition != ConditionClear || snap.TemperatureC != 28 {
		t.Errorf("expected the Rio de Janeiro entry, got condition=%s temp=%d", snap.Condition, snap.TemperatureC)
	}
}

func TestOfflineSnapshotDefault(t *testing.T) {
	snap := OfflineSnapshot("Curitiba")

	if !strings.Contains(snap.Location, "Curitiba") || !strings.Contains(snap.Location, "(Fallback)") {
		t.Errorf("Location = %q", snap.Location)
	}
	if snap.TemperatureC != 25 {
		t.Errorf("expected the generic default entry, got temp=%d", snap.TemperatureC)
	}
}

func TestOfflineSnapshotForecastShape(t *testing.T) {
	snap := OfflineSnapshot("anywhere")

	if len(snap.Forecast) != 5 {
		t.Fatalf("expected 5 forecast days, got %d", len(snap.Forecast))
	}

	today := time.Now().UTC().Format("2006-01-02")
	if snap.Forecast[0].Date != today {
		t.Errorf("first forecast date = %s, want %s", snap.Forecast[0].Date, today)
	}
	for i, d := range snap.Forecast {
		if d.HighTempC < d.LowTempC {
			t.Errorf("day %d: high %d < low %d", i, d.HighTempC, d.LowTempC)
		}
		if i > 0 && !(snap.Forecast[i-1].Date < d.Date) {
			t.Errorf("dates not ascending: %s then %s", snap.Forecast[i-1].Date, d.Date)
		}
	}
}
