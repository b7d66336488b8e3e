package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied.
func MergeConfig(target, source *Config, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.AlphanumericLength != 0 {
		target.AlphanumericLength = source.AlphanumericLength
		target.Sources["alphanumericLength"] = sourceType
	}
	if source.URLSafeBytes != 0 {
		target.URLSafeBytes = source.URLSafeBytes
		target.Sources["urlSafeBytes"] = sourceType
	}
	if source.Prefix != "" {
		target.Prefix = source.Prefix
		target.Sources["prefix"] = sourceType
	}
	if source.Count != 0 {
		target.Count = source.Count
		target.Sources["count"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
	if source.ConfigFile != "" {
		target.ConfigFile = source.ConfigFile
	}
}
