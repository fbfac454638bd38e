package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_FromProcessEnvironment(t *testing.T) {
	noDotenv(t)
	t.Setenv("USERCARDS_SOURCE_URL", "http://env.example/users")
	t.Setenv("USERCARDS_BATCH_SIZE", "15")
	t.Setenv("USERCARDS_LOG_LEVEL", "debug")
	t.Setenv("USERCARDS_LOG_FILE", "/var/log/uc.log")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://env.example/users", cfg.SourceURL)
	assert.Equal(t, 15, cfg.BatchSize)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/var/log/uc.log", cfg.LogFile)
}

func TestParseEnv_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("USERCARDS_LOG_FILE=dotenv.log\n"), 0o600))

	orig := dotenvFile
	dotenvFile = path
	t.Cleanup(func() {
		dotenvFile = orig
		_ = os.Unsetenv("USERCARDS_LOG_FILE")
	})

	cfg := &Config{}
	parseEnv(cfg)

	assert.Equal(t, "dotenv.log", cfg.LogFile)
}

func TestParseEnv_BadBatchSizePanics(t *testing.T) {
	noDotenv(t)
	t.Setenv("USERCARDS_BATCH_SIZE", "many")

	require.Panics(t, func() { parseEnv(&Config{}) })
}
