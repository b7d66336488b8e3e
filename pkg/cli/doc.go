// Package cli provides the command-line interface for idgen.
//
// Commands:
//   - gen: Generate identifiers with one method (uuid, timestamp, alphanumeric,
//     structured, hash, short-uuid, composite, url-safe, ulid)
//   - demo: Print sample identifiers for every method and example file paths
//   - methods: List generation methods with their inputs and output shape
//   - config: Display effective configuration and where each value came from
//   - version: Show idgen version
//
// Global flags --config, --json, --log-level and --log-format apply to every
// command. Identifiers are written to stdout; logs go to stderr.
package cli
