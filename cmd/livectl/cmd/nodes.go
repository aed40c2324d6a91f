package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hardik-satasiya/makepad/pkg/livenode"
)

func newNodesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "nodes <module>",
		Short: "Print the node stream of a document",
		Long: `Print the flat node stream a document was parsed into, one node per
line and indented by nesting depth. Module names without a dot are relative
to the project module.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, opts)
			if err != nil {
				return err
			}
			mod, err := p.module(args[0])
			if err != nil {
				return err
			}
			file, _ := p.cx.Registry().ModuleToFile(mod)
			doc, _ := p.cx.Registry().FileToDoc(file)
			printNodes(cmd.OutOrStdout(), doc.Nodes)
			return p.finish(cmd, opts)
		},
	}
}

func printNodes(w io.Writer, nodes livenode.Nodes) {
	depth := 0
	for i, n := range nodes {
		if n.Value.IsClose() {
			depth--
		}
		indent := strings.Repeat("  ", max(depth, 0))
		switch {
		case n.Value.IsClose():
			closer := "}"
			if open := openerOf(nodes, i); open >= 0 && nodes[open].Value.Kind == livenode.KindArray {
				closer = "]"
			}
			fmt.Fprintf(w, "%4d %s%s\n", i, indent, closer)
		case n.ID == livenode.EmptyID:
			fmt.Fprintf(w, "%4d %s%s\n", i, indent, n.Value)
		default:
			fmt.Fprintf(w, "%4d %s%s: %s\n", i, indent, n.ID, n.Value)
		}
		if n.Value.IsOpen() {
			depth++
		}
	}
}

// openerOf returns the index of the node that close ends, or -1.
func openerOf(nodes livenode.Nodes, close int) int {
	depth := 0
	for i := close - 1; i >= 0; i-- {
		switch {
		case nodes[i].Value.IsClose():
			depth++
		case nodes[i].Value.IsOpen():
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}
