package envconfig

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig holds application-level settings loaded from a YAML file.
// Environment variables and flags still win for the values they cover.
type AppConfig struct {
	Storage struct {
		// Backend selects the catalog persistence backend:
		// "file", "redis", "postgres" or "memory".
		Backend string
		// Path is the data directory for the file backend.
		Path string
		// RedisURL configures the redis backend, e.g. redis://localhost:6379.
		RedisURL string
	}

	Scheduler struct {
		// Interval between order status advancements.
		Interval time.Duration
	}

	Geolocation struct {
		// Latency simulated by the stub locator before answering.
		Latency time.Duration
		// Timeout bounds how long checkout waits for a position.
		Timeout time.Duration
	}
}

// rawAppConfig mirrors the YAML layout; durations are strings like "15s".
type rawAppConfig struct {
	Storage struct {
		Backend  string `yaml:"backend"`
		Path     string `yaml:"path"`
		RedisURL string `yaml:"redis_url"`
	} `yaml:"storage"`
	Scheduler struct {
		Interval string `yaml:"interval"`
	} `yaml:"scheduler"`
	Geolocation struct {
		Latency string `yaml:"latency"`
		Timeout string `yaml:"timeout"`
	} `yaml:"geolocation"`
}

// DefaultAppConfig returns the settings used when no config file is present.
func DefaultAppConfig() AppConfig {
	var cfg AppConfig
	cfg.Storage.Backend = "file"
	cfg.Storage.Path = "data"
	cfg.Storage.RedisURL = "redis://localhost:6379"
	cfg.Scheduler.Interval = 15 * time.Second
	cfg.Geolocation.Latency = 300 * time.Millisecond
	cfg.Geolocation.Timeout = 3 * time.Second
	return cfg
}

// LoadAppConfig reads the YAML config at path, applying defaults for any
// value left unset. A missing file yields the defaults and no error.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := DefaultAppConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %v", path, err)
	}

	var raw rawAppConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %v", path, err)
	}

	if raw.Storage.Backend != "" {
		cfg.Storage.Backend = raw.Storage.Backend
	}
	if raw.Storage.Path != "" {
		cfg.Storage.Path = raw.Storage.Path
	}
	if raw.Storage.RedisURL != "" {
		cfg.Storage.RedisURL = raw.Storage.RedisURL
	}

	if d, err := parseDuration(raw.Scheduler.Interval); err != nil {
		return cfg, fmt.Errorf("invalid scheduler interval: %v", err)
	} else if d > 0 {
		cfg.Scheduler.Interval = d
	}

	if d, err := parseDuration(raw.Geolocation.Latency); err != nil {
		return cfg, fmt.Errorf("invalid geolocation latency: %v", err)
	} else if d > 0 {
		cfg.Geolocation.Latency = d
	}

	if d, err := parseDuration(raw.Geolocation.Timeout); err != nil {
		return cfg, fmt.Errorf("invalid geolocation timeout: %v", err)
	} else if d > 0 {
		cfg.Geolocation.Timeout = d
	}

	return cfg, nil
}

// parseDuration parses a duration string, treating empty as zero.
func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
