package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	httpapi "github.com/smartweather/weather-advisor/internal/api/http"
	"github.com/smartweather/weather-advisor/internal/config"
	"github.com/smartweather/weather-advisor/internal/recommend"
	"github.com/smartweather/weather-advisor/internal/scheduler"
	"github.com/smartweather/weather-advisor/internal/store"
	"github.com/smartweather/weather-advisor/internal/weather"
	"github.com/smartweather/weather-advisor/internal/weather/providers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.ProviderTimeout,
	}

	// Snapshot cache with configured retention; first tier of the fallback
	// ladder when the provider is unreachable.
	cache := store.NewSnapshotCache(cfg.CacheMaxHistory, cfg.CacheMaxAge)

	// Provider with resilience (backoff + circuit breaker).
	provider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey)

	// Core services.
	weatherSvc := weather.NewService(provider, cache, cfg.ProviderTimeout)

	recStore, err := store.OpenRecommendationStore(cfg.RecommendationsDB)
	if err != nil {
		log.Fatalf("failed to open recommendations store: %v", err)
	}
	defer recStore.Close()

	resolver := recommend.NewResolver(recStore, cfg.StoreTimeout)

	// Scheduler that keeps the cache warm for configured cities.
	sched := scheduler.New(cfg.WarmCities, cfg.FetchInterval, weatherSvc)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-advisor",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-advisor",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, weatherSvc, resolver)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
