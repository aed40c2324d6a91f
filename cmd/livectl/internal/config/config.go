// Package config resolves the live.yaml project file read by livectl.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/hardik-satasiya/makepad/pkg/livedoc"
	"github.com/hardik-satasiya/makepad/pkg/registry"
)

// FileName is the project file looked up in the project root.
const FileName = "live.yaml"

// Config represents the optional live.yaml configuration.
type Config struct {
	Project   ProjectConfig    `yaml:"project"`
	Documents []DocumentConfig `yaml:"documents,omitempty"`
}

// ProjectConfig contains project metadata.
type ProjectConfig struct {
	Name string `yaml:"name,omitempty"`
	// Module overrides the module path read from go.mod.
	Module string `yaml:"module,omitempty"`
}

// DocumentConfig names one live document.
type DocumentConfig struct {
	// Module is the module path the document is registered under. A path
	// without a dot in its first element is relative to the project module.
	Module string `yaml:"module,omitempty"`
	// Path is the document file, relative to the project root.
	Path string `yaml:"path"`
	// Format is yaml or json. Defaults to the file extension.
	Format string `yaml:"format,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Name       string
	Documents  []Document
}

// Document is a resolved live document.
type Document struct {
	Module registry.ModuleID
	// Path is absolute.
	Path   string
	Format livedoc.Format
}

// LoadOptional reads live.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads live.yaml (if present) and resolves defaults. Without a
// documents list, every *.live.yaml, *.live.yml and *.live.json file under
// dir is a document.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	modPath := strings.TrimSpace(cfg.Project.Module)
	if modPath == "" {
		modPath, err = modulePath(dir)
		if err != nil {
			return nil, err
		}
	}
	if err := module.CheckImportPath(modPath); err != nil {
		return nil, fmt.Errorf("project.module: %w", err)
	}

	name := strings.TrimSpace(cfg.Project.Name)
	if name == "" {
		name = defaultName(modPath, dir)
	}

	docs := cfg.Documents
	if len(docs) == 0 {
		docs, err = discover(dir)
		if err != nil {
			return nil, err
		}
	}

	res := &Resolved{Root: dir, ModulePath: modPath, Name: name}
	seen := make(map[registry.ModuleID]string)
	for _, dc := range docs {
		doc, err := resolveDocument(dir, modPath, dc)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[doc.Module]; ok {
			return nil, fmt.Errorf("module %s is used by both %s and %s", doc.Module, prev, dc.Path)
		}
		seen[doc.Module] = dc.Path
		res.Documents = append(res.Documents, doc)
	}
	return res, nil
}

func resolveDocument(root, modPath string, dc DocumentConfig) (Document, error) {
	rel := filepath.ToSlash(strings.TrimSpace(dc.Path))
	if rel == "" {
		return Document{}, fmt.Errorf("document without a path")
	}

	var format livedoc.Format
	if dc.Format != "" {
		f, err := livedoc.ParseFormat(dc.Format)
		if err != nil {
			return Document{}, fmt.Errorf("%s: %w", rel, err)
		}
		format = f
	} else {
		f, ok := livedoc.FormatFromPath(rel)
		if !ok {
			return Document{}, fmt.Errorf("%s: cannot infer document format", rel)
		}
		format = f
	}

	modName := strings.TrimSpace(dc.Module)
	if modName == "" {
		modName = documentModule(rel)
	}
	if first, _, _ := strings.Cut(modName, "/"); !strings.Contains(first, ".") {
		modName = modPath + "/" + modName
	}
	mod, err := registry.ParseModuleID(modName)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", rel, err)
	}

	path := rel
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, filepath.FromSlash(rel))
	}
	return Document{Module: mod, Path: path, Format: format}, nil
}

// documentModule derives a module name from a document path:
// "ui/main.live.yaml" becomes "ui/main".
func documentModule(rel string) string {
	name := strings.TrimSuffix(rel, filepath.Ext(rel))
	name = strings.TrimSuffix(name, ".live")
	return strings.TrimPrefix(name, "./")
}

func discover(dir string) ([]DocumentConfig, error) {
	var out []DocumentConfig
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && (strings.HasPrefix(d.Name(), ".") || d.Name() == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}
		base := d.Name()
		if !strings.Contains(base, ".live.") {
			return nil
		}
		if _, ok := livedoc.FormatFromPath(base); !ok {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, DocumentConfig{Path: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to discover documents: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// FindProjectRoot walks up from dir to the first directory holding live.yaml
// or go.mod.
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a live project (no %s or go.mod found)", FileName)
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod (or set project.module): %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultName(modPath, dir string) string {
	base := filepath.Base(dir)
	if prefix, _, ok := module.SplitPathVersion(modPath); ok {
		parts := strings.Split(prefix, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "live_app"
	}
	return base
}
