package cli

import (
	"fmt"
	"sort"

	"github.com/getmockd/idgen/pkg/cli/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ConfigOutput represents JSON output of the config command.
type ConfigOutput struct {
	Config  any               `json:"config"`
	Sources map[string]string `json:"sources"`
}

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration",
		Long: `Display the effective configuration after merging defaults, config
files, environment variables and flags, followed by the source of each value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := a.out(cmd)
			if a.jsonOutput {
				return output.JSON(w, ConfigOutput{Config: a.cfg, Sources: a.cfg.Sources})
			}

			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			if _, err := w.Write(data); err != nil {
				return err
			}
			if a.cfg.ConfigFile != "" {
				fmt.Fprintf(w, "# loaded from %s\n", a.cfg.ConfigFile)
			}

			keys := make([]string, 0, len(a.cfg.Sources))
			for k := range a.cfg.Sources {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			fmt.Fprintln(w)
			tw := output.Table(w)
			fmt.Fprintln(tw, "KEY\tSOURCE")
			for _, k := range keys {
				fmt.Fprintf(tw, "%s\t%s\n", k, a.cfg.Sources[k])
			}
			return tw.Flush()
		},
	}
}
