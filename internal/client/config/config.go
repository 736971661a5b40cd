package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the case console.
type Config struct {
	APIBaseURL   string
	DatabasePath string
	LogLevel     string
	PageSize     int
	StaleTime    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api/"
	c.DatabasePath = "casekeeper.db"
	c.LogLevel = "info"
	c.PageSize = 10
	c.StaleTime = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	return loadFromArgs(os.Args[1:])
}

func loadFromArgs(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
