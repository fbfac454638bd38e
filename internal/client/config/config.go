package config

import (
	"os"
	"time"
)

const (
	DefaultSourceURL = "https://random-data-api.com/api/users/random_user"
	DefaultBatchSize = 80
)

// Config holds runtime settings for the usercards CLI.
type Config struct {
	SourceURL     string
	BatchSize     int
	FetchTimeout  time.Duration
	ViewportWidth int
	LogLevel      string
	LogFile       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.SourceURL = DefaultSourceURL
	c.BatchSize = DefaultBatchSize
	c.FetchTimeout = 10 * time.Second
	c.ViewportWidth = 80
	c.LogLevel = "info"
	c.LogFile = "logs/usercards.log"
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and the process flags, in that order.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
