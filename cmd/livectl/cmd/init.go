package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/module"

	"github.com/hardik-satasiya/makepad/cmd/livectl/internal/templates"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <directory> [module-path]",
		Short: "Create a new live project",
		Long: `Create a new live project in a new directory.

This command creates:
  - live.yaml naming the project and its documents
  - ui/main.live.yaml with a starter view

The project name is derived from the directory basename.
The module path defaults to the project name if not specified.

Examples:
  livectl init myapp
  livectl init ./projects/myapp example.com/me/myapp`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.OutOrStdout(), args)
		},
	}
}

func runInit(out io.Writer, args []string) error {
	raw := args[0]
	if strings.HasPrefix(raw, "~") {
		return fmt.Errorf("tilde (~) is not expanded by livectl; use an absolute path or $HOME instead")
	}
	dir := filepath.Clean(raw)
	if err := validateDirectory(dir); err != nil {
		return err
	}

	name := filepath.Base(dir)
	if err := validateProjectName(name); err != nil {
		return fmt.Errorf("invalid project name %q (derived from directory basename): %w", name, err)
	}
	modulePath := name
	if len(args) > 1 {
		modulePath = args[1]
	}
	if err := module.CheckImportPath(modulePath); err != nil {
		return fmt.Errorf("invalid module path: %w", err)
	}

	if err := scaffoldProject(out, dir, &templates.Data{Name: name, ModulePath: modulePath}); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Project created successfully!\n\n")
	fmt.Fprintf(out, "Next steps:\n")
	fmt.Fprintf(out, "  livectl --dir %s apply ui/main main\n", dir)
	return nil
}

// scaffoldProject creates the project directory and writes the template files.
func scaffoldProject(out io.Writer, dir string, data *templates.Data) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}
	fmt.Fprintf(out, "Creating new live project: %s\n", data.Name)

	files, err := templates.InitFiles()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}
	dests := make([]string, 0, len(files))
	for dest := range files {
		dests = append(dests, dest)
	}
	sort.Strings(dests)

	for _, dest := range dests {
		if err := writeTemplate(dir, files[dest], dest, data); err != nil {
			safeRemoveAll(dir)
			return err
		}
		fmt.Fprintf(out, "  Created %s\n", dest)
	}
	return nil
}

func writeTemplate(dir, src, dest string, data *templates.Data) error {
	content, err := templates.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", src, err)
	}
	rendered, err := templates.Process(dest, string(content), data)
	if err != nil {
		return fmt.Errorf("failed to render template %s: %w", src, err)
	}
	path := filepath.Join(dir, filepath.FromSlash(dest))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return nil
}

// validateDirectory rejects directory paths that would be dangerous to create
// or clean up: filesystem roots, the current and parent directory, and
// root-level absolute paths such as /etc.
func validateDirectory(dir string) error {
	switch dir {
	case "", "/", ".", "..":
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	if isVolumeRoot(dir) {
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	if filepath.IsAbs(dir) && isVolumeRoot(filepath.Dir(dir)) {
		return fmt.Errorf("refusing to create project at root-level path %q", dir)
	}
	return nil
}

// isVolumeRoot reports whether dir is a filesystem root such as "/" or "C:\".
func isVolumeRoot(dir string) bool {
	return dir == filepath.VolumeName(dir)+string(filepath.Separator)
}

// safeRemoveAll removes a directory only if the path passes validateDirectory.
func safeRemoveAll(dir string) {
	if validateDirectory(dir) != nil {
		return
	}
	os.RemoveAll(dir)
}

var validProjectName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// validateProjectName checks that a project name starts with a letter and
// holds only letters, digits, underscores and hyphens.
func validateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("project name cannot start with a dot")
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("project name cannot start with a hyphen")
	}
	if !validProjectName.MatchString(name) {
		return fmt.Errorf("project name must start with a letter and contain only letters, numbers, underscores, and hyphens")
	}
	return nil
}
