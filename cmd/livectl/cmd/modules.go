package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newModulesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the loaded documents",
		Long: `List every document of the project with the module it is registered
under, its source file and its node count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Project: %s (%s)\n", p.cfg.Name, p.cfg.ModulePath)
			reg := p.cx.Registry()
			for _, mod := range reg.Modules() {
				file, _ := reg.ModuleToFile(mod)
				doc, _ := reg.FileToDoc(file)
				path := doc.Path
				if rel, err := filepath.Rel(p.cfg.Root, path); err == nil {
					path = rel
				}
				fmt.Fprintf(out, "  %-40s %-24s %d nodes\n", mod, filepath.ToSlash(path), len(doc.Nodes))
			}
			return p.finish(cmd, opts)
		},
	}
}
