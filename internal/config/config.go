package config

import (
	"errors"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// DefaultSocrataURL is the NYC Open Data motor vehicle collisions resource.
const DefaultSocrataURL = "https://data.cityofnewyork.us/resource/h9gi-nx95.json"

// defaultUserAgent mimics a browser; the open-data endpoint throttles
// generic client agents more aggressively.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// socrataMaxLimit is the per-request row cap Socrata enforces.
const socrataMaxLimit = 50000

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Upstream dataset settings.
	SocrataURL       string
	SocrataLimit     int
	SocrataTimeout   time.Duration
	SocrataUserAgent string

	// CacheTTL bounds how long a fetched dataset is reused before a fresh
	// fetch; the cache can also be busted manually via the API.
	CacheTTL time.Duration
}

// Load reads configuration from the shared viper instance: command-line
// flags bound by the entrypoint win over environment variables, which win
// over defaults.
func Load() (*Config, error) {
	v := viper.GetViper()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("SOCRATA_URL", DefaultSocrataURL)
	v.SetDefault("SOCRATA_LIMIT", 1000)
	v.SetDefault("SOCRATA_TIMEOUT", "10s")
	v.SetDefault("SOCRATA_USER_AGENT", defaultUserAgent)
	v.SetDefault("CACHE_TTL", "5m")

	cfg := &Config{
		HTTPAddr:         v.GetString("HTTP_ADDR"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		LogFormat:        v.GetString("LOG_FORMAT"),
		ShutdownTimeout:  v.GetDuration("SHUTDOWN_TIMEOUT"),
		SocrataURL:       v.GetString("SOCRATA_URL"),
		SocrataLimit:     v.GetInt("SOCRATA_LIMIT"),
		SocrataTimeout:   v.GetDuration("SOCRATA_TIMEOUT"),
		SocrataUserAgent: v.GetString("SOCRATA_USER_AGENT"),
		CacheTTL:         v.GetDuration("CACHE_TTL"),
	}

	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	if cfg.SocrataURL == "" {
		return nil, errors.New("SOCRATA_URL is required")
	}
	if u, err := url.Parse(cfg.SocrataURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.New("invalid SOCRATA_URL")
	}
	if cfg.SocrataLimit <= 0 || cfg.SocrataLimit > socrataMaxLimit {
		return nil, errors.New("invalid SOCRATA_LIMIT: must be between 1 and 50000")
	}
	if cfg.SocrataTimeout <= 0 {
		return nil, errors.New("invalid SOCRATA_TIMEOUT")
	}
	if cfg.CacheTTL <= 0 {
		return nil, errors.New("invalid CACHE_TTL")
	}

	return cfg, nil
}
