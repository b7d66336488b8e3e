package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/getmockd/idgen/internal/cliconfig"
	"github.com/getmockd/idgen/pkg/id"
	"github.com/getmockd/idgen/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// app holds state shared by one command tree invocation.
type app struct {
	// Persistent flags
	configPath string
	jsonOutput bool
	logLevel   string
	logFormat  string

	cfg    *cliconfig.Config
	logger *slog.Logger
	gen    *id.Generator
}

// NewRootCommand builds the idgen command tree. Identifiers come from gen,
// or the package default Generator when gen is nil.
func NewRootCommand(gen *id.Generator) *cobra.Command {
	if gen == nil {
		gen = id.Default()
	}
	a := &app{gen: gen, logger: logging.Nop()}

	rootCmd := &cobra.Command{
		Use:   "idgen",
		Short: "idgen generates unique identifiers",
		Long: `idgen generates identifier strings with nine independent methods:
UUID v4, timestamp, alphanumeric, structured (prefixed), content hash,
short UUID, composite, URL-safe random and ULID.

Defaults can be provided via flags, environment variables (IDGEN_*), or a
configuration file. By default, idgen looks for .idgen.yaml in the current
directory and config.yaml in the user config directory under idgen/.`,
		SilenceUsage:  true,
		SilenceErrors: true, // We handle errors in Execute()
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file path (overrides .idgen.yaml and the global config)")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format (text, json)")

	rootCmd.AddCommand(
		newGenCommand(a),
		newDemoCommand(a),
		newMethodsCommand(a),
		newConfigCommand(a),
		newVersionCommand(a),
	)
	return rootCmd
}

// load resolves configuration and builds the logger for this invocation.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := cliconfig.LoadAll(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
		cfg.Sources["logLevel"] = cliconfig.SourceFlag
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = a.logFormat
		cfg.Sources["logFormat"] = cliconfig.SourceFlag
	}
	a.cfg = cfg
	a.logger = logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
		Output: cmd.ErrOrStderr(),
	})
	a.logger.Debug("configuration loaded", "file", cfg.ConfigFile, "sources", cfg.Sources)
	return nil
}

// out returns the writer command results go to.
func (a *app) out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

// Execute runs the idgen command tree against os.Args and exits non-zero
// on failure. This is called by main.main().
func Execute() {
	if err := NewRootCommand(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
