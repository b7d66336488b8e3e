package cli

import (
	"fmt"

	"github.com/getmockd/idgen/internal/cliconfig"
	"github.com/getmockd/idgen/pkg/cli/internal/output"
	"github.com/getmockd/idgen/pkg/id"
	"github.com/spf13/cobra"
)

// GenOutput represents JSON output of the gen command.
type GenOutput struct {
	Method id.Method `json:"method"`
	IDs    []string  `json:"ids"`
}

func newGenCommand(a *app) *cobra.Command {
	var (
		count   int
		length  int
		prefix  string
		content string
	)

	cmd := &cobra.Command{
		Use:   "gen <method>",
		Short: "Generate identifiers",
		Long: `Generate one or more identifiers with the given method.

Methods: uuid, timestamp, alphanumeric (nano), structured, hash, short-uuid
(short), composite (custom), url-safe (urlsafe), ulid.`,
		Example: `  # Three UUIDs
  idgen gen uuid -n 3

  # 20 character alphanumeric ID
  idgen gen alphanumeric --length 20

  # Prefixed ID
  idgen gen structured --prefix order

  # Content hash
  idgen gen hash --content "Hello, World!"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrMissingMethod
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			names := make([]string, 0, len(id.Methods()))
			for _, m := range id.Methods() {
				names = append(names, string(m))
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := id.ParseMethod(args[0])
			if err != nil {
				return err
			}

			cfg := a.cfg
			if cmd.Flags().Changed("count") {
				cfg.Count = count
				cfg.Sources["count"] = cliconfig.SourceFlag
			}
			if cmd.Flags().Changed("prefix") {
				cfg.Prefix = prefix
				cfg.Sources["prefix"] = cliconfig.SourceFlag
			}
			if cmd.Flags().Changed("length") {
				switch method {
				case id.MethodURLSafe:
					cfg.URLSafeBytes = length
					cfg.Sources["urlSafeBytes"] = cliconfig.SourceFlag
				default:
					cfg.AlphanumericLength = length
					cfg.Sources["alphanumericLength"] = cliconfig.SourceFlag
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if cmd.Flags().Changed("content") && method != id.MethodHash {
				output.Warn(cmd.ErrOrStderr(), "--content is ignored by %s", method)
			}
			if cmd.Flags().Changed("prefix") && method != id.MethodStructured {
				output.Warn(cmd.ErrOrStderr(), "--prefix is ignored by %s", method)
			}

			params := id.Params{Prefix: cfg.Prefix, Content: content}
			switch method {
			case id.MethodAlphanumeric:
				params.Length = cfg.AlphanumericLength
			case id.MethodURLSafe:
				params.Length = cfg.URLSafeBytes
			}

			a.logger.Debug("generating", "method", method, "count", cfg.Count)
			ids := make([]string, 0, cfg.Count)
			for i := 0; i < cfg.Count; i++ {
				s, err := a.gen.Generate(method, params)
				if err != nil {
					return fmt.Errorf("generating %s: %w", method, err)
				}
				ids = append(ids, s)
			}

			w := a.out(cmd)
			if a.jsonOutput {
				return output.JSON(w, GenOutput{Method: method, IDs: ids})
			}
			for _, s := range ids {
				fmt.Fprintln(w, s)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", cliconfig.DefaultCount, "Number of identifiers to generate")
	cmd.Flags().IntVarP(&length, "length", "l", 0, "Character length (alphanumeric) or byte length (url-safe)")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", cliconfig.DefaultPrefix, "Prefix for structured identifiers")
	cmd.Flags().StringVarP(&content, "content", "c", "", "Content to hash")
	return cmd
}
