package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"weather-dashboard/internal/weather"
)

type AppConfig struct {
	OpenWeatherAPIKey string

	// DefaultCity and DefaultUnits seed the session before the user has
	// committed anything.
	DefaultCity  string
	DefaultUnits weather.Units

	// RefreshInterval controls the periodic refresh of the session.
	RefreshInterval time.Duration

	// HTTPTimeout bounds outbound API calls.
	HTTPTimeout time.Duration

	// Lang is passed through to the upstream API for localized
	// condition descriptions.
	Lang string

	Port string
}

// Load reads configuration from environment with sensible defaults. A
// missing API key is not a load error: the session controller reports it
// as a precondition failure on the first trigger instead.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}
	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.DefaultCity = getenvDefault("DEFAULT_CITY", "London")
	cfg.Lang = getenvDefault("WEATHER_LANG", "en")
	cfg.Port = getenvDefault("PORT", "8080")

	units := weather.Units(getenvDefault("DEFAULT_UNITS", string(weather.UnitsMetric)))
	if !units.Valid() {
		return nil, fmt.Errorf("invalid DEFAULT_UNITS: %q", units)
	}
	cfg.DefaultUnits = units

	interval, err := time.ParseDuration(getenvDefault("REFRESH_INTERVAL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
