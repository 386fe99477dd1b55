package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/smartweather/weather-advisor/internal/recommend"
)

// RecommendationStore is a SQLite-backed implementation of recommend.Store.
// Rows are externally authored; the engine only reads them, apart from the
// Seed helper used for provisioning and tests.
type RecommendationStore struct {
	db *sql.DB
}

// OpenRecommendationStore opens (and bootstraps) the recommendations database
// at the given path.
func OpenRecommendationStore(path string) (*RecommendationStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening recommendations database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS recommendations (
			id TEXT PRIMARY KEY,
			profile_type TEXT NOT NULL,
			weather_condition TEXT,
			temperature_min INTEGER,
			temperature_max INTEGER,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			tips TEXT NOT NULL,
			warning TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_recommendations_lookup
			ON recommendations(profile_type, weather_condition);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating recommendations table: %w", err)
	}

	return &RecommendationStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *RecommendationStore) Close() error {
	return s.db.Close()
}

// FindSpecific returns the most recently created row matching the profile,
// the lowercased condition, and the (nullable) temperature bounds. A miss is
// (nil, nil).
func (s *RecommendationStore) FindSpecific(ctx context.Context, profile recommend.ProfileType, condition string, temperatureC int) (*recommend.Recommendation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, profile_type, weather_condition, temperature_min, temperature_max,
		       title, description, tips, warning, created_at, updated_at
		FROM recommendations
		WHERE profile_type = ?
		  AND weather_condition = ?
		  AND (temperature_min IS NULL OR temperature_min <= ?)
		  AND (temperature_max IS NULL OR temperature_max >= ?)
		ORDER BY created_at DESC
		LIMIT 1
	`, string(profile), condition, temperatureC, temperatureC)

	return scanRecommendation(row)
}

// FindGeneric returns the most recently created row for the profile with no
// weather condition set. A miss is (nil, nil).
func (s *RecommendationStore) FindGeneric(ctx context.Context, profile recommend.ProfileType) (*recommend.Recommendation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, profile_type, weather_condition, temperature_min, temperature_max,
		       title, description, tips, warning, created_at, updated_at
		FROM recommendations
		WHERE profile_type = ?
		  AND weather_condition IS NULL
		ORDER BY created_at DESC
		LIMIT 1
	`, string(profile))

	return scanRecommendation(row)
}

// Seed inserts recommendation rows, generating ids and timestamps for rows
// that lack them.
func (s *RecommendationStore) Seed(ctx context.Context, recs []recommend.Recommendation) error {
	for _, rec := range recs {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = time.Now().UTC()
		}
		if rec.UpdatedAt.IsZero() {
			rec.UpdatedAt = rec.CreatedAt
		}

		tips, err := json.Marshal(rec.Tips)
		if err != nil {
			return fmt.Errorf("encoding tips for %s: %w", rec.ID, err)
		}

		_, err = s.db.ExecContext(ctx, `
			INSERT INTO recommendations
				(id, profile_type, weather_condition, temperature_min, temperature_max,
				 title, description, tips, warning, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			rec.ID, string(rec.ProfileType), rec.WeatherCondition,
			rec.TemperatureMinC, rec.TemperatureMaxC,
			rec.Title, rec.Description, string(tips), rec.Warning,
			rec.CreatedAt, rec.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting recommendation %s: %w", rec.ID, err)
		}
	}
	return nil
}

func scanRecommendation(row *sql.Row) (*recommend.Recommendation, error) {
	var (
		rec       recommend.Recommendation
		profile   string
		condition sql.NullString
		tempMin   sql.NullInt64
		tempMax   sql.NullInt64
		tipsJSON  string
		warning   sql.NullString
	)

	err := row.Scan(&rec.ID, &profile, &condition, &tempMin, &tempMax,
		&rec.Title, &rec.Description, &tipsJSON, &warning,
		&rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning recommendation: %w", err)
	}

	rec.ProfileType = recommend.ProfileType(profile)
	if condition.Valid {
		rec.WeatherCondition = &condition.String
	}
	if tempMin.Valid {
		v := int(tempMin.Int64)
		rec.TemperatureMinC = &v
	}
	if tempMax.Valid {
		v := int(tempMax.Int64)
		rec.TemperatureMaxC = &v
	}
	if warning.Valid {
		rec.Warning = &warning.String
	}

	if err := json.Unmarshal([]byte(tipsJSON), &rec.Tips); err != nil {
		return nil, fmt.Errorf("decoding tips for %s: %w", rec.ID, err)
	}

	return &rec, nil
}
