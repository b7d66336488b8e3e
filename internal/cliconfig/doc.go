// Package cliconfig provides configuration types and loading for the idgen CLI.
//
// It implements a layered configuration system with the following precedence
// (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (IDGEN_* prefix)
//  3. Local config file (.idgen.yaml in current directory)
//  4. Global config file ($XDG_CONFIG_HOME/idgen/config.yaml)
//  5. Default values
//
// An explicit --config path replaces steps 3 and 4. The source of every value
// is tracked in Config.Sources for `idgen config`-style debugging output.
package cliconfig
