package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newTypesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the registered component types and their fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, opts)
			if err != nil {
				return err
			}
			infos := p.cx.RegisteredTypes()
			sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
			out := cmd.OutOrStdout()
			for _, info := range infos {
				fmt.Fprintf(out, "%s (%s)\n", info.Name, info.Type)
				for _, f := range info.Fields {
					fmt.Fprintf(out, "  %-12s %s\n", f.Name, f.Type)
				}
			}
			return p.finish(cmd, opts)
		},
	}
}
