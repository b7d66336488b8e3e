package cli

import (
	"fmt"

	"github.com/getmockd/idgen/pkg/cli/internal/output"
	"github.com/getmockd/idgen/pkg/id"
	"github.com/spf13/cobra"
)

func newMethodsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List identifier generation methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := id.MethodInfos()
			w := a.out(cmd)
			if a.jsonOutput {
				return output.JSON(w, infos)
			}

			tw := output.Table(w)
			fmt.Fprintln(tw, "METHOD\tINPUTS\tPATTERN")
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Method, info.Inputs, info.Pattern)
			}
			return tw.Flush()
		},
	}
}
