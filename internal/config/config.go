// Package config loads runtime configuration from the environment.
//
// A .env file in the working directory is read first (best effort, matching
// how the hosted version is deployed), then real environment variables take
// over. The only required setting is the OpenWeatherMap API key.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pfrederiksen/weather-cli/internal/openweather"
	"github.com/pfrederiksen/weather-cli/internal/report"
)

const (
	// DefaultDataDir is where favorites are stored
	DefaultDataDir = "~/.local/share/weather-cli"

	// DefaultPort is the web server listen port
	DefaultPort = "8080"
)

// Config holds the runtime configuration shared by the binaries
type Config struct {
	APIKey  string
	BaseURL string
	Units   report.Units
	DataDir string
	Port    string
}

// Load reads configuration from a .env file (if present) and the environment
func Load() (*Config, error) {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:  os.Getenv("WEATHER_API_KEY"),
		BaseURL: openweather.DefaultBaseURL,
		Units:   report.UnitsMetric,
		DataDir: DefaultDataDir,
		Port:    DefaultPort,
	}

	if v := os.Getenv("WEATHER_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("WEATHER_UNITS"); v != "" {
		units, err := report.ParseUnits(v)
		if err != nil {
			return nil, fmt.Errorf("WEATHER_UNITS: %w", err)
		}
		cfg.Units = units
	}
	if v := os.Getenv("WEATHER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	return cfg, nil
}

// RequireAPIKey returns an error when no API key is configured
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return fmt.Errorf("WEATHER_API_KEY is not set (export it or add it to .env)")
	}
	return nil
}

// NewClient builds an OpenWeatherMap client from the configuration
func (c *Config) NewClient() *openweather.Client {
	client := openweather.New(c.APIKey)
	client.BaseURL = c.BaseURL
	client.Units = c.Units
	return client
}
