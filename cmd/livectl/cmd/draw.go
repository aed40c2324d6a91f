package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newDrawCmd(opts *rootOptions) *cobra.Command {
	var typeName string
	cmd := &cobra.Command{
		Use:   "draw <module> <entry>",
		Short: "Build a component and print the frame it draws",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, opts)
			if err != nil {
				return err
			}
			obj, lt, err := p.build(args[0], args[1], typeName)
			if err != nil {
				return err
			}
			if err := p.reportDiagnostics(cmd, false); err != nil {
				return err
			}
			fc, ok := obj.ToFrameComponent()
			if !ok {
				return fmt.Errorf("type %s does not draw", lt.Name())
			}
			fc.DrawDyn(p.cx)

			out := cmd.OutOrStdout()
			for _, op := range p.cx.TakeFrame() {
				fmt.Fprintf(out, "%s%s\n", op.Component, formatAttrs(op.Attrs))
			}
			return p.finish(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&typeName, "type", "View", "Registered type to construct")
	return cmd
}

func formatAttrs(attrs map[string]any) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		v := presentable(attrs[k])
		if s, ok := v.(string); ok && !strings.HasPrefix(s, "#") {
			v = fmt.Sprintf("%q", s)
		}
		fmt.Fprintf(&b, " %s=%v", k, v)
	}
	return b.String()
}
