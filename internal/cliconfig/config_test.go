package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the global config dir and working directory at empty temp
// dirs and clears IDGEN_* variables.
func isolate(t *testing.T) (configHome, cwd string) {
	t.Helper()
	configHome = t.TempDir()
	cwd = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{EnvAlphanumericLength, EnvURLSafeBytes, EnvCount, EnvLogLevel, EnvLogFormat, EnvConfig} {
		t.Setenv(name, "")
	}
	t.Setenv(EnvPrefix, "")
	os.Unsetenv(EnvPrefix)
	t.Chdir(cwd)
	return configHome, cwd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"json format any case", func(c *Config) { c.LogFormat = "JSON" }, ""},
		{"zero length", func(c *Config) { c.AlphanumericLength = 0 }, "alphanumericLength 0 is out of range"},
		{"huge length", func(c *Config) { c.AlphanumericLength = 5000 }, "alphanumericLength 5000 is out of range"},
		{"negative bytes", func(c *Config) { c.URLSafeBytes = -1 }, "urlSafeBytes -1 is out of range"},
		{"zero count", func(c *Config) { c.Count = 0 }, "count 0 is out of range"},
		{"count too high", func(c *Config) { c.Count = MaxCount + 1 }, "count 10001 is out of range"},
		{"bad format", func(c *Config) { c.LogFormat = "yaml" }, `logFormat "yaml" must be text or json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()
	assert.Equal(t, 12, cfg.AlphanumericLength)
	assert.Equal(t, 16, cfg.URLSafeBytes)
	assert.Equal(t, "user", cfg.Prefix)
	assert.Equal(t, 1, cfg.Count)
	assert.Equal(t, SourceDefault, cfg.Sources["prefix"])
	assert.Len(t, cfg.Sources, 6)
}

func TestLoadAll_Precedence(t *testing.T) {
	configHome, cwd := isolate(t)

	writeFile(t, filepath.Join(configHome, GlobalConfigDir, "config.yaml"), "prefix: global\ncount: 5\nlogLevel: warn\n")
	writeFile(t, filepath.Join(cwd, ".idgen.yaml"), "prefix: local\nalphanumericLength: 20\n")
	t.Setenv(EnvCount, "7")

	cfg, err := LoadAll("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Prefix)
	assert.Equal(t, SourceLocal, cfg.Sources["prefix"])
	assert.Equal(t, 20, cfg.AlphanumericLength)
	assert.Equal(t, 7, cfg.Count)
	assert.Equal(t, SourceEnv, cfg.Sources["count"])
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, SourceGlobal, cfg.Sources["logLevel"])
	assert.Equal(t, 16, cfg.URLSafeBytes)
	assert.Equal(t, SourceDefault, cfg.Sources["urlSafeBytes"])
}

func TestLoadAll_ExplicitPath(t *testing.T) {
	_, cwd := isolate(t)
	writeFile(t, filepath.Join(cwd, ".idgen.yaml"), "prefix: local\n")
	explicit := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, explicit, "prefix: order\nurlSafeBytes: 8\n")

	cfg, err := LoadAll(explicit)
	require.NoError(t, err)
	assert.Equal(t, "order", cfg.Prefix)
	assert.Equal(t, SourceFile, cfg.Sources["prefix"])
	assert.Equal(t, 8, cfg.URLSafeBytes)
	assert.Equal(t, explicit, cfg.ConfigFile)
}

func TestLoadAll_ExplicitPathFromEnv(t *testing.T) {
	isolate(t)
	explicit := filepath.Join(t.TempDir(), "env.yaml")
	writeFile(t, explicit, "count: 9\n")
	t.Setenv(EnvConfig, explicit)

	cfg, err := LoadAll("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Count)
}

func TestLoadAll_MissingExplicitPath(t *testing.T) {
	isolate(t)
	_, err := LoadAll(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestLoadAll_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvAlphanumericLength, "30")
	t.Setenv(EnvURLSafeBytes, "not-a-number")
	t.Setenv(EnvPrefix, "")
	t.Setenv(EnvLogFormat, "json")

	cfg, err := LoadAll("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.AlphanumericLength)
	assert.Equal(t, DefaultURLSafeBytes, cfg.URLSafeBytes, "unparsable env ignored")
	assert.Equal(t, "", cfg.Prefix, "empty prefix from env is honored")
	assert.Equal(t, SourceEnv, cfg.Sources["prefix"])
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("unknown field", func(t *testing.T) {
		path := filepath.Join(dir, "unknown.yaml")
		writeFile(t, path, "prefix: a\nbogus: 1\n")
		_, err := LoadConfigFile(path)
		var ce *ConfigError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 2, ce.Line)
		assert.Contains(t, ce.Message, "bogus")
	})

	t.Run("syntax error", func(t *testing.T) {
		path := filepath.Join(dir, "syntax.yaml")
		writeFile(t, path, "prefix: a\ncount: [1\n")
		_, err := LoadConfigFile(path)
		var ce *ConfigError
		require.ErrorAs(t, err, &ce)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		writeFile(t, path, "")
		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, path, cfg.ConfigFile)
	})
}

func TestConfigError_Error(t *testing.T) {
	assert.Equal(t, "a.yaml (line 3): boom", (&ConfigError{Path: "a.yaml", Line: 3, Message: "boom"}).Error())
	assert.Equal(t, "a.yaml: boom", (&ConfigError{Path: "a.yaml", Message: "boom"}).Error())
}
