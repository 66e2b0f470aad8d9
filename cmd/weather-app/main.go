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
	"golang.org/x/time/rate"

	httpapi "github.com/NQvelo/weather-app/internal/api/http"
	"github.com/NQvelo/weather-app/internal/config"
	"github.com/NQvelo/weather-app/internal/scheduler"
	"github.com/NQvelo/weather-app/internal/store"
	"github.com/NQvelo/weather-app/internal/weather"
	"github.com/NQvelo/weather-app/internal/weather/providers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls; the timeout bounds
	// each single-attempt request.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	clientCfg := providers.ClientConfig{
		Client:  httpClient,
		Limiter: rate.NewLimiter(rate.Limit(cfg.ProviderRPS), cfg.ProviderBurst),
	}

	openWeather := providers.NewOpenWeatherClient(
		clientCfg,
		cfg.OpenWeatherAPIKey,
		cfg.OpenWeatherCurrentURL,
		cfg.OpenWeatherForecastURL,
	)
	openMeteo := providers.NewOpenMeteoClient(clientCfg, cfg.OpenMeteoURL)

	service := weather.NewService(openWeather, openWeather, openMeteo, openMeteo, cfg.EnrichForecasts)

	cache := store.NewMemoryStore()

	sched := scheduler.New(cfg.Cities, cfg.RefreshInterval, 30*time.Second, service, cache)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weather-app",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
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

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-app",
		})
	})

	httpapi.RegisterRoutes(app, service, cache)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
