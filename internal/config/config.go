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

// Default provider endpoints. Overridable through the environment so
// tests and deployments can point the clients elsewhere.
const (
	defaultOpenWeatherCurrentURL  = "https://api.openweathermap.org/data/2.5/weather"
	defaultOpenWeatherForecastURL = "https://api.openweathermap.org/data/2.5/forecast"
	defaultOpenMeteoURL           = "https://api.open-meteo.com/v1/forecast"
)

// AppConfig is the explicit configuration object handed to the provider
// clients and the rest of the application. No package-level state.
type AppConfig struct {
	OpenWeatherAPIKey string

	OpenWeatherCurrentURL  string
	OpenWeatherForecastURL string
	OpenMeteoURL           string

	// HTTPTimeout bounds each outbound provider request.
	HTTPTimeout time.Duration

	// ProviderRPS/ProviderBurst throttle outbound calls per client.
	ProviderRPS   float64
	ProviderBurst int

	// EnrichForecasts selects the full pipeline (hourly/daily/UV) vs
	// current conditions only.
	EnrichForecasts bool

	// RefreshInterval controls the background refresh of tracked cities.
	RefreshInterval time.Duration

	// Cities refreshed by the scheduler. Optional.
	Cities []string

	Port string
}

// Load reads configuration from .env and the environment with defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: no .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.OpenWeatherCurrentURL = getenvDefault("OPENWEATHER_CURRENT_URL", defaultOpenWeatherCurrentURL)
	cfg.OpenWeatherForecastURL = getenvDefault("OPENWEATHER_FORECAST_URL", defaultOpenWeatherForecastURL)
	cfg.OpenMeteoURL = getenvDefault("OPENMETEO_URL", defaultOpenMeteoURL)

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "5s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.ProviderRPS = getenvFloat("PROVIDER_RPS", 1)
	cfg.ProviderBurst = getenvInt("PROVIDER_BURST", 3)

	cfg.EnrichForecasts = getenvBool("ENRICH_FORECASTS", true)

	intervalStr := getenvDefault("REFRESH_INTERVAL", "15m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	if cities := os.Getenv("WEATHER_CITIES"); cities != "" {
		for _, c := range strings.Split(cities, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cfg.Cities = append(cfg.Cities, c)
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
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
