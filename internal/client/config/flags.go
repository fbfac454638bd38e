package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/dmitrijs2005/usercards/internal/flagx"
)

// parseFlags overlays cfg with the flags it knows about and ignores the rest.
// It panics on malformed values.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("usercards", flag.ContinueOnError)

	fs.StringVar(&cfg.SourceURL, "u", cfg.SourceURL, "record source URL")
	fs.IntVar(&cfg.BatchSize, "n", cfg.BatchSize, "number of records to fetch")
	timeout := fs.Int("t", int(cfg.FetchTimeout.Seconds()), "fetch timeout (in seconds)")
	fs.IntVar(&cfg.ViewportWidth, "w", cfg.ViewportWidth, "viewport width when stdout is not a terminal")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, "u", "n", "t", "w", "l")); err != nil {
		panic(err)
	}
	if cfg.BatchSize <= 0 {
		panic(fmt.Errorf("batch size must be positive, got %d", cfg.BatchSize))
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.FetchTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
