package livedoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hardik-satasiya/makepad/pkg/errors"
	"github.com/hardik-satasiya/makepad/pkg/livenode"
)

// maxDepth bounds nesting so hostile documents cannot exhaust the stack.
const maxDepth = 256

// Format is a document source format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	}
	return "", false
}

// ParseFormat validates a format name. The empty name is not a format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown document format %q", s)
}

// Parse converts data in the given format to a node stream.
func Parse(format Format, data []byte) (livenode.Nodes, error) {
	switch format {
	case FormatYAML:
		return FromYAML(data)
	case FormatJSON:
		return FromJSON(data)
	}
	return nil, fmt.Errorf("unknown document format %q", format)
}

// Load reads and parses the file at path. The format is taken from the
// extension when format is empty.
func Load(path string, format Format) (livenode.Nodes, error) {
	if format == "" {
		f, ok := FormatFromPath(path)
		if !ok {
			return nil, fmt.Errorf("%s: cannot infer document format", path)
		}
		format = f
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	nodes, err := Parse(format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return nodes, nil
}

func syntaxError(op string, format string, args ...any) error {
	return &errors.LiveError{
		Op:   op,
		Kind: errors.KindDocument,
		Err:  fmt.Errorf("%w: %s", errors.ErrSyntax, fmt.Sprintf(format, args...)),
	}
}
