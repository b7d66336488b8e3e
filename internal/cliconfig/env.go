package cliconfig

import (
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvAlphanumericLength = "IDGEN_ALPHANUMERIC_LENGTH"
	EnvURLSafeBytes       = "IDGEN_URLSAFE_BYTES"
	EnvPrefix             = "IDGEN_PREFIX"
	EnvCount              = "IDGEN_COUNT"
	EnvLogLevel           = "IDGEN_LOG_LEVEL"
	EnvLogFormat          = "IDGEN_LOG_FORMAT"
	EnvConfig             = "IDGEN_CONFIG"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment. Unparsable
// integers are ignored and left to the lower-precedence source.
func LoadEnvConfig(cfg *Config) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if n, ok := envInt(EnvAlphanumericLength); ok {
		cfg.AlphanumericLength = n
		cfg.Sources["alphanumericLength"] = SourceEnv
	}
	if n, ok := envInt(EnvURLSafeBytes); ok {
		cfg.URLSafeBytes = n
		cfg.Sources["urlSafeBytes"] = SourceEnv
	}
	if n, ok := envInt(EnvCount); ok {
		cfg.Count = n
		cfg.Sources["count"] = SourceEnv
	}
	// An empty prefix is a valid choice, so presence rather than value counts.
	if v, ok := os.LookupEnv(EnvPrefix); ok {
		cfg.Prefix = v
		cfg.Sources["prefix"] = SourceEnv
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources["logLevel"] = SourceEnv
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.Sources["logFormat"] = SourceEnv
	}
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
