// Package cmd implements the livectl commands.
//
// Every command loads the project found from --dir: the live.yaml settings,
// the documents they name and the built-in widget types.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type rootOptions struct {
	dir      string
	logLevel string
	metrics  bool
}

// NewRootCmd builds the livectl command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "livectl",
		Short: "livectl inspects live documents and the components built from them",
		Long: `livectl loads the live documents of a project, applies them to the
registered component types and prints what comes out.

Documents are listed in live.yaml or discovered as *.live.yaml, *.live.yml
and *.live.json files under the project root.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.dir, "dir", ".", "Directory inside the live project")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "error", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.metrics, "metrics", false, "Print apply counters after the command")

	root.AddCommand(
		newInitCmd(),
		newModulesCmd(opts),
		newNodesCmd(opts),
		newTypesCmd(opts),
		newApplyCmd(opts),
		newDrawCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs livectl with the process arguments.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
