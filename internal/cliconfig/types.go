package cliconfig

// Config represents the complete configuration for the idgen CLI.
type Config struct {
	// Generation defaults
	AlphanumericLength int    `yaml:"alphanumericLength" json:"alphanumericLength"`
	URLSafeBytes       int    `yaml:"urlSafeBytes" json:"urlSafeBytes"`
	Prefix             string `yaml:"prefix" json:"prefix"`
	Count              int    `yaml:"count" json:"count"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// ConfigFile is the file the values were loaded from, if any.
	ConfigFile string `yaml:"-" json:"configFile,omitempty"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceFlag    = "flag"
)
