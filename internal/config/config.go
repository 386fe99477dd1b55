package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	OpenWeatherAPIKey string

	// ProviderTimeout bounds each outbound weather-provider call.
	ProviderTimeout time.Duration
	// StoreTimeout bounds each recommendation-store lookup.
	StoreTimeout time.Duration

	// RecommendationsDB is the path to the SQLite recommendations database.
	RecommendationsDB string

	// WarmCities are refreshed periodically so the cache can serve as the
	// first fallback tier.
	WarmCities    []string
	FetchInterval time.Duration

	// Snapshot cache retention.
	CacheMaxHistory int
	CacheMaxAge     time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")

	timeout, err := getenvDuration("PROVIDER_TIMEOUT", "10s")
	if err != nil {
		return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT: %w", err)
	}
	cfg.ProviderTimeout = timeout

	storeTimeout, err := getenvDuration("STORE_TIMEOUT", "5s")
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_TIMEOUT: %w", err)
	}
	cfg.StoreTimeout = storeTimeout

	cfg.RecommendationsDB = getenvDefault("RECOMMENDATIONS_DB", "data/recommendations.db")

	interval, err := getenvDuration("FETCH_INTERVAL", "15m")
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_INTERVAL: %w", err)
	}
	cfg.FetchInterval = interval

	cfg.CacheMaxHistory = getenvInt("CACHE_MAX_HISTORY", 96)

	maxAge, err := getenvDuration("CACHE_MAX_AGE", "24h")
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_MAX_AGE: %w", err)
	}
	cfg.CacheMaxAge = maxAge

	if cities := os.Getenv("WARM_CITIES"); cities != "" {
		for _, c := range strings.Split(cities, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cfg.WarmCities = append(cfg.WarmCities, c)
			}
		}
	}

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	return time.ParseDuration(getenvDefault(key, def))
}
