package cliconfig

import "github.com/getmockd/idgen/pkg/id"

// Default values.
const (
	DefaultAlphanumericLength = id.DefaultAlphanumericLength
	DefaultURLSafeBytes       = id.DefaultURLSafeBytes
	DefaultPrefix             = "user"
	DefaultCount              = 1
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
)

// NewDefault creates a new Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		AlphanumericLength: DefaultAlphanumericLength,
		URLSafeBytes:       DefaultURLSafeBytes,
		Prefix:             DefaultPrefix,
		Count:              DefaultCount,
		LogLevel:           DefaultLogLevel,
		LogFormat:          DefaultLogFormat,
		Sources:            make(map[string]string),
	}
	for _, key := range []string{"alphanumericLength", "urlSafeBytes", "prefix", "count", "logLevel", "logFormat"} {
		cfg.Sources[key] = SourceDefault
	}
	return cfg
}
