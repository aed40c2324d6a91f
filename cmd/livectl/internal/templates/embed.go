// Package templates holds the files livectl init writes into a new project.
package templates

import (
	"embed"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

//go:embed init/*
var FS embed.FS

// Data contains the values substituted into the templates.
type Data struct {
	Name       string // e.g. "my_app"
	ModulePath string // e.g. "example.com/my_app"
}

// Process renders a template string with data.
func Process(name, content string, data *Data) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// InitFiles returns the init templates keyed by the project-relative path
// they render to: "init/ui/main.live.yaml.tmpl" becomes "ui/main.live.yaml".
func InitFiles() (map[string]string, error) {
	out := make(map[string]string)
	err := fs.WalkDir(FS, "init", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		dest := strings.TrimSuffix(strings.TrimPrefix(p, "init/"), ".tmpl")
		if dest == "main.live.yaml" {
			dest = path.Join("ui", dest)
		}
		out[dest] = p
		return nil
	})
	return out, err
}

// ReadFile reads a file from the embedded filesystem.
func ReadFile(name string) ([]byte, error) {
	return FS.ReadFile(name)
}
