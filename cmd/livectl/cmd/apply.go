package cmd

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hardik-satasiya/makepad/pkg/live"
)

type applyOptions struct {
	typeName string
	output   string
	strict   bool
}

func newApplyCmd(opts *rootOptions) *cobra.Command {
	aopts := &applyOptions{}
	cmd := &cobra.Command{
		Use:   "apply <module> <entry>",
		Short: "Build a component from a document entry and print its fields",
		Long: `Construct a registered component type from a top-level entry of a
document and print the resulting field values.

Diagnostics found while applying are printed to stderr. With --strict they
make the command fail.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, opts)
			if err != nil {
				return err
			}
			obj, lt, err := p.build(args[0], args[1], aopts.typeName)
			if err != nil {
				return err
			}
			if err := p.reportDiagnostics(cmd, aopts.strict); err != nil {
				return err
			}
			snap := map[string]any{lt.Name(): presentable(live.Snapshot(obj))}

			var data []byte
			switch aopts.output {
			case "yaml":
				data, err = yaml.Marshal(snap)
			case "json":
				data, err = json.MarshalIndent(snap, "", "  ")
				data = append(data, '\n')
			default:
				return fmt.Errorf("unknown output format %q (want yaml or json)", aopts.output)
			}
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", aopts.output, err)
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}
			return p.finish(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&aopts.typeName, "type", "View", "Registered type to construct")
	cmd.Flags().StringVarP(&aopts.output, "output", "o", "yaml", "Output format (yaml or json)")
	cmd.Flags().BoolVar(&aopts.strict, "strict", false, "Fail when applying reports diagnostics")
	return cmd
}
