package config

import (
	"os"
	"strings"
	"time"
)

const (
	defaultMetadataBaseURL = "https://datadashboard.health.gov.il/api/content/dashboard"
	defaultDataBaseURL     = "https://datadashboard.health.gov.il/api"
	defaultHTTPTimeout     = 30 * time.Second
)

type Config struct {
	MetadataBaseURL string
	DataBaseURL     string
	HTTPTimeout     time.Duration
	LogLevel        string
}

// Load builds the configuration from defaults plus ILHEALTH_* environment
// overrides. Invalid override values fall back to the default silently.
func Load() *Config {
	cfg := &Config{
		MetadataBaseURL: defaultMetadataBaseURL,
		DataBaseURL:     defaultDataBaseURL,
		HTTPTimeout:     defaultHTTPTimeout,
		LogLevel:        "info",
	}

	if v := os.Getenv("ILHEALTH_METADATA_BASE_URL"); v != "" {
		cfg.MetadataBaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("ILHEALTH_DATA_BASE_URL"); v != "" {
		cfg.DataBaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("ILHEALTH_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.HTTPTimeout = d
		}
	}
	if v := os.Getenv("ILHEALTH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}
