package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/usercards/internal/flagx"
	"github.com/dmitrijs2005/usercards/internal/timex"
)

// JsonConfig is the on-disk shape. Absent keys leave the current value alone.
type JsonConfig struct {
	SourceURL     *string         `json:"source_url"`
	BatchSize     *int            `json:"batch_size"`
	FetchTimeout  *timex.Duration `json:"fetch_timeout"`
	ViewportWidth *int            `json:"viewport_width"`
	LogLevel      *string         `json:"log_level"`
	LogFile       *string         `json:"log_file"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.SourceURL != nil {
		cfg.SourceURL = *jc.SourceURL
	}
	if jc.BatchSize != nil {
		cfg.BatchSize = *jc.BatchSize
	}
	if jc.FetchTimeout != nil {
		cfg.FetchTimeout = jc.FetchTimeout.Duration
	}
	if jc.ViewportWidth != nil {
		cfg.ViewportWidth = *jc.ViewportWidth
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
}
