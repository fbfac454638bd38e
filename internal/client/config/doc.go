// Package config loads runtime configuration for the usercards CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJson).
//  3. Environment, after an optional .env file is loaded (see parseEnv).
//  4. Command-line flags (see parseFlags).
//
// Later sources override earlier ones.
//
// Supported flags
//
//	-u string   record source URL
//	-n int      number of records fetched in the single request
//	-t int      fetch timeout (seconds)
//	-w int      viewport width used when stdout is not a terminal
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "source_url": "https://random-data-api.com/api/users/random_user",
//	  "batch_size": 80,
//	  "fetch_timeout": "10s",
//	  "viewport_width": 80,
//	  "log_level": "info",
//	  "log_file": "logs/usercards.log"
//	}
//
// # Environment
//
//	USERCARDS_SOURCE_URL, USERCARDS_BATCH_SIZE, USERCARDS_LOG_LEVEL, USERCARDS_LOG_FILE
package config
