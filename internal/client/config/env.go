package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const envPrefix = "USERCARDS_"

// dotenvFile is loaded before the environment is read. Variables already set
// in the process environment win over the file.
var dotenvFile = ".env"

func parseEnv(cfg *Config) {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(envPrefix + "SOURCE_URL"); ok && v != "" {
		cfg.SourceURL = v
	}
	if v, ok := os.LookupEnv(envPrefix + "BATCH_SIZE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.BatchSize = n
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_FILE"); ok && v != "" {
		cfg.LogFile = v
	}
}
