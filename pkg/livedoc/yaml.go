package livedoc

import (
	"gopkg.in/yaml.v3"

	"github.com/hardik-satasiya/makepad/pkg/livenode"
)

const (
	tagColor = "!color"
	tagID    = "!id"
)

// Aliases let a small document expand into a huge node stream. The walk
// stops once it has emitted more than nodesPerByte nodes for every input
// byte, with minNodeBudget as the floor for short documents.
const (
	nodesPerByte  = 16
	minNodeBudget = 4096
)

// FromYAML parses a YAML document. An empty document yields an empty root
// object.
func FromYAML(data []byte) (livenode.Nodes, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, syntaxError("livedoc.FromYAML", "%v", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind == 0 || root.Kind == yaml.DocumentNode {
		return livenode.Build().Object(livenode.EmptyID).End().Nodes(), nil
	}
	if resolveAlias(root).Kind != yaml.MappingNode {
		return nil, syntaxError("livedoc.FromYAML", "line %d: document root must be a mapping", root.Line)
	}
	w := &yamlWalker{limit: max(nodesPerByte*len(data), minNodeBudget)}
	if err := w.node(livenode.EmptyID, root, 0); err != nil {
		return nil, err
	}
	return w.nodes, nil
}

type yamlWalker struct {
	nodes livenode.Nodes
	limit int
}

func (w *yamlWalker) push(id livenode.LiveID, v livenode.Value) {
	w.nodes = append(w.nodes, livenode.Node{ID: id, Value: v})
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func (w *yamlWalker) node(id livenode.LiveID, n *yaml.Node, depth int) error {
	if depth > maxDepth {
		return syntaxError("livedoc.FromYAML", "line %d: nesting deeper than %d", n.Line, maxDepth)
	}
	if len(w.nodes) >= w.limit {
		return syntaxError("livedoc.FromYAML", "line %d: alias expansion exceeds %d nodes", n.Line, w.limit)
	}
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		w.push(id, livenode.ObjectOpen())
		if err := w.entries(n, depth); err != nil {
			return err
		}
		w.push(livenode.EmptyID, livenode.CloseMarker())
	case yaml.SequenceNode:
		w.push(id, livenode.ArrayOpen())
		for _, item := range n.Content {
			if err := w.node(livenode.EmptyID, item, depth+1); err != nil {
				return err
			}
		}
		w.push(livenode.EmptyID, livenode.CloseMarker())
	case yaml.ScalarNode:
		v, err := yamlScalar(n)
		if err != nil {
			return err
		}
		w.push(id, v)
	default:
		return syntaxError("livedoc.FromYAML", "line %d: unsupported node", n.Line)
	}
	return nil
}

func yamlScalar(n *yaml.Node) (livenode.Value, error) {
	switch n.Tag {
	case tagColor:
		if argb, ok := NamedColor(n.Value); ok {
			return livenode.Color(argb), nil
		}
		argb, err := ParseColor(n.Value)
		if err != nil {
			return livenode.Value{}, syntaxError("livedoc.FromYAML", "line %d: %v", n.Line, err)
		}
		return livenode.Color(argb), nil
	case tagID:
		return livenode.IDRef(livenode.ID(n.Value)), nil
	}

	switch n.ShortTag() {
	case "!!null":
		return livenode.None(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return livenode.Value{}, syntaxError("livedoc.FromYAML", "line %d: %v", n.Line, err)
		}
		return livenode.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return livenode.Value{}, syntaxError("livedoc.FromYAML", "line %d: %v", n.Line, err)
		}
		return livenode.Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return livenode.Value{}, syntaxError("livedoc.FromYAML", "line %d: %v", n.Line, err)
		}
		return livenode.Float(f), nil
	case "!!str":
		if n.Style&yaml.TaggedStyle == 0 && isColorLiteral(n.Value) {
			argb, _ := ParseColor(n.Value)
			return livenode.Color(argb), nil
		}
		return livenode.Str(n.Value), nil
	}
	return livenode.Value{}, syntaxError("livedoc.FromYAML", "line %d: unsupported tag %s", n.Line, n.Tag)
}

func (w *yamlWalker) entries(n *yaml.Node, depth int) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := resolveAlias(n.Content[i])
		if key.Kind != yaml.ScalarNode {
			return syntaxError("livedoc.FromYAML", "line %d: mapping keys must be scalars", key.Line)
		}
		if key.ShortTag() == "!!merge" {
			if err := w.merge(n.Content[i+1], depth+1); err != nil {
				return err
			}
			continue
		}
		if err := w.node(livenode.ID(key.Value), n.Content[i+1], depth+1); err != nil {
			return err
		}
	}
	return nil
}

// merge emits the entries of a "<<" merge key in place. Later keys of the
// same mapping are applied after them and so take precedence.
func (w *yamlWalker) merge(n *yaml.Node, depth int) error {
	if depth > maxDepth {
		return syntaxError("livedoc.FromYAML", "line %d: nesting deeper than %d", n.Line, maxDepth)
	}
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		return w.entries(n, depth)
	case yaml.SequenceNode:
		for _, item := range n.Content {
			m := resolveAlias(item)
			if m.Kind != yaml.MappingNode {
				return syntaxError("livedoc.FromYAML", "line %d: merge value must be a mapping", m.Line)
			}
			if err := w.entries(m, depth); err != nil {
				return err
			}
		}
		return nil
	}
	return syntaxError("livedoc.FromYAML", "line %d: merge value must be a mapping", n.Line)
}
