package config

import (
	"os"
	"strconv"

	"chartcore/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Data     DataConfig
	Remote   RemoteConfig
}

// DatabaseConfig holds database connection settings. URL is optional:
// without it the server runs on file-backed sources only.
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds data preparation settings
type DataConfig struct {
	RecordLimit int    // record-count ceiling per load cycle
	DataFile    string // optional xlsx/csv source path
}

// RemoteConfig holds the optional remote statistics service settings
type RemoteConfig struct {
	StatsURL     string
	GeographyURL string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port: envOr("PORT", "8080"),
		},
		Data: DataConfig{
			RecordLimit: 0,
			DataFile:    os.Getenv("DATA_FILE"),
		},
		Remote: RemoteConfig{
			StatsURL:     os.Getenv("STATS_SERVICE_URL"),
			GeographyURL: os.Getenv("GEOGRAPHY_URL"),
		},
	}

	if raw := os.Getenv("RECORD_LIMIT"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid RECORD_LIMIT %q", raw)
		}
		cfg.Data.RecordLimit = limit
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
