package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Run("loads every key", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"source_url":     "http://www.example:9000/users",
			"batch_size":     12,
			"fetch_timeout":  "3s",
			"viewport_width": 120,
			"log_level":      "warn",
			"log_file":       "/tmp/x.log",
		})

		cfg := &Config{}
		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, Config{
			SourceURL:     "http://www.example:9000/users",
			BatchSize:     12,
			FetchTimeout:  3 * time.Second,
			ViewportWidth: 120,
			LogLevel:      "warn",
			LogFile:       "/tmp/x.log",
		}, *cfg)
	})

	t.Run("absent keys keep current values", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"batch_size": 3})

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-c", path})

		assert.Equal(t, 3, cfg.BatchSize)
		assert.Equal(t, DefaultSourceURL, cfg.SourceURL)
		assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	})

	t.Run("no flag → no changes", func(t *testing.T) {
		cfg := &Config{SourceURL: "defaults:1234", BatchSize: 42}
		parseJson(cfg, []string{"-n", "9"})

		assert.Equal(t, "defaults:1234", cfg.SourceURL)
		assert.Equal(t, 42, cfg.BatchSize)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "nope.json")
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", missing}) })
	})
}
