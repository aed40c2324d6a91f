// Package registry tracks the live documents a program was built from and
// resolves pointers, module paths and names into node streams.
package registry

import (
	"fmt"
	"strings"

	"golang.org/x/mod/module"

	"github.com/hardik-satasiya/makepad/pkg/errors"
	"github.com/hardik-satasiya/makepad/pkg/livenode"
)

// FileID identifies a registered document.
type FileID uint32

// Ptr addresses a node inside a registered document.
type Ptr struct {
	File  FileID
	Index int
}

func (p Ptr) String() string {
	return fmt.Sprintf("file%d:%d", p.File, p.Index)
}

// ModuleID is a validated module path such as "example.com/app/widgets".
type ModuleID string

// ParseModuleID validates a module path. Paths follow Go import path rules.
func ParseModuleID(path string) (ModuleID, error) {
	path = strings.TrimSpace(path)
	if err := module.CheckImportPath(path); err != nil {
		return "", fmt.Errorf("invalid module path %q: %w", path, err)
	}
	return ModuleID(path), nil
}

// Document is a registered node stream and where it came from.
type Document struct {
	File   FileID
	Module ModuleID
	// Path is the source location of the document, informational only.
	Path  string
	Nodes livenode.Nodes
	// Generation increments each time the document is replaced.
	Generation int
}

// Registry owns the registered documents. It is not safe for concurrent use;
// like the rest of the live layer it belongs to the UI thread.
type Registry struct {
	docs    []*Document
	modules map[ModuleID]FileID
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{modules: make(map[ModuleID]FileID)}
}

// Register adds a document for the module and returns its file id.
// Registering a module twice replaces its nodes, as UpdateDocument does.
func (r *Registry) Register(mod ModuleID, path string, nodes livenode.Nodes) (FileID, error) {
	if !nodes.Balanced() {
		return 0, &errors.LiveError{
			Op:   "registry.Register",
			Kind: errors.KindDocument,
			Err:  fmt.Errorf("module %s: %w", mod, errors.ErrUnbalanced),
		}
	}
	if file, ok := r.modules[mod]; ok {
		return file, r.UpdateDocument(file, nodes)
	}
	file := FileID(len(r.docs))
	r.docs = append(r.docs, &Document{
		File:   file,
		Module: mod,
		Path:   path,
		Nodes:  nodes,
	})
	r.modules[mod] = file
	return file, nil
}

// UpdateDocument replaces the nodes of an existing document after a live edit.
func (r *Registry) UpdateDocument(file FileID, nodes livenode.Nodes) error {
	doc, ok := r.FileToDoc(file)
	if !ok {
		return &errors.LiveError{
			Op:   "registry.UpdateDocument",
			Kind: errors.KindLookup,
			Err:  fmt.Errorf("file %d: %w", file, errors.ErrUnknownFile),
		}
	}
	if !nodes.Balanced() {
		return &errors.LiveError{
			Op:   "registry.UpdateDocument",
			Kind: errors.KindDocument,
			Err:  fmt.Errorf("module %s: %w", doc.Module, errors.ErrUnbalanced),
		}
	}
	doc.Nodes = nodes
	doc.Generation++
	return nil
}

// FileToDoc returns the document registered under file.
func (r *Registry) FileToDoc(file FileID) (*Document, bool) {
	if int(file) >= len(r.docs) {
		return nil, false
	}
	return r.docs[file], true
}

// PtrToDoc returns the document a pointer refers into.
func (r *Registry) PtrToDoc(ptr Ptr) (*Document, bool) {
	doc, ok := r.FileToDoc(ptr.File)
	if !ok || ptr.Index < 0 || ptr.Index >= len(doc.Nodes) {
		return nil, false
	}
	return doc, true
}

// ModuleToFile resolves a module path to its file id.
func (r *Registry) ModuleToFile(mod ModuleID) (FileID, bool) {
	file, ok := r.modules[mod]
	return file, ok
}

// Lookup resolves a top-level entry of a module's document by name.
func (r *Registry) Lookup(mod ModuleID, id livenode.LiveID) (Ptr, bool) {
	file, ok := r.ModuleToFile(mod)
	if !ok {
		return Ptr{}, false
	}
	doc := r.docs[file]
	index, ok := doc.Nodes.ChildByName(0, id)
	if !ok {
		return Ptr{}, false
	}
	return Ptr{File: file, Index: index}, true
}

// Modules returns the registered module ids in registration order.
func (r *Registry) Modules() []ModuleID {
	out := make([]ModuleID, 0, len(r.docs))
	for _, doc := range r.docs {
		out = append(out, doc.Module)
	}
	return out
}
