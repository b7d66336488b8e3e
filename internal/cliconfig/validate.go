package cliconfig

import (
	"fmt"
	"strings"

	"github.com/getmockd/idgen/pkg/id"
)

// MaxCount bounds how many identifiers one command prints.
const MaxCount = 10000

// Validate checks that every value is usable by the generators.
func (c *Config) Validate() error {
	if c.AlphanumericLength < 1 || c.AlphanumericLength > id.MaxLength {
		return fmt.Errorf("alphanumericLength %d is out of range (1-%d)", c.AlphanumericLength, id.MaxLength)
	}
	if c.URLSafeBytes < 1 || c.URLSafeBytes > id.MaxLength {
		return fmt.Errorf("urlSafeBytes %d is out of range (1-%d)", c.URLSafeBytes, id.MaxLength)
	}
	if c.Count < 1 || c.Count > MaxCount {
		return fmt.Errorf("count %d is out of range (1-%d)", c.Count, MaxCount)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("logFormat %q must be text or json", c.LogFormat)
	}
	return nil
}
