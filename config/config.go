package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/YahyaBCR/car-rental-BO-sub000/db"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Environment variables understood by the application.
const (
	apiURLEnvVar  = "RENTADMIN_API_URL"
	dbPathEnvVar  = "RENTADMIN_DB_PATH"
	timeoutEnvVar = "RENTADMIN_TIMEOUT"
	configEnvVar  = "RENTADMIN_CONFIG"
)

// DefaultTimeout bounds each HTTP call when no override is configured.
const DefaultTimeout = 30 * time.Second

// Config captures the application configuration loaded from the optional YAML
// file and environment overrides. The backend base URL is the only value the
// application truly needs; the rest have working defaults.
type Config struct {
	APIURL  string `yaml:"api_url"`
	DBPath  string `yaml:"db_path"`
	Timeout string `yaml:"timeout"`
}

func defaultConfig() *Config {
	return &Config{
		APIURL: "http://localhost:4000",
		DBPath: db.DefaultPath(),
	}
}

// Load reads the YAML config file (RENTADMIN_CONFIG, falling back to
// ~/.rentadmin/config.yaml when present) and merges environment overrides on
// top. A missing config file is not an error.
func Load() (*Config, error) {
	cfg := defaultConfig()

	path := os.Getenv(configEnvVar)
	if path == "" {
		candidate := filepath.Join(os.Getenv("HOME"), ".rentadmin/config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		log.Debug().Str("path", path).Msg("Loaded configuration file")
	}

	if v := os.Getenv(apiURLEnvVar); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(dbPathEnvVar); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(timeoutEnvVar); v != "" {
		cfg.Timeout = v
	}

	if _, err := cfg.HTTPTimeout(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// HTTPTimeout parses the configured timeout, falling back to DefaultTimeout
// when none is set.
func (c *Config) HTTPTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}
