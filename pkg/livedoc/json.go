package livedoc

import (
	"bytes"
	"io"

	json "github.com/goccy/go-json"

	"github.com/hardik-satasiya/makepad/pkg/livenode"
)

// FromJSON parses a JSON document whose root is an object.
func FromJSON(data []byte) (livenode.Nodes, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	p := &jsonParser{dec: dec}

	tok, err := dec.Token()
	if err != nil {
		return nil, syntaxError("livedoc.FromJSON", "%v", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, syntaxError("livedoc.FromJSON", "document root must be an object")
	}
	if err := p.object(livenode.EmptyID, 0); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, syntaxError("livedoc.FromJSON", "trailing data after document")
	}
	return p.nodes, nil
}

type jsonParser struct {
	dec   *json.Decoder
	nodes livenode.Nodes
}

func (p *jsonParser) push(id livenode.LiveID, v livenode.Value) {
	p.nodes = append(p.nodes, livenode.Node{ID: id, Value: v})
}

func (p *jsonParser) next() (json.Token, error) {
	tok, err := p.dec.Token()
	if err == io.EOF {
		return nil, syntaxError("livedoc.FromJSON", "unexpected end of document")
	}
	if err != nil {
		return nil, syntaxError("livedoc.FromJSON", "%v", err)
	}
	return tok, nil
}

// object consumes the members of an object whose '{' was already read.
func (p *jsonParser) object(id livenode.LiveID, depth int) error {
	if depth > maxDepth {
		return syntaxError("livedoc.FromJSON", "nesting deeper than %d", maxDepth)
	}
	p.push(id, livenode.ObjectOpen())
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			p.push(livenode.EmptyID, livenode.CloseMarker())
			return nil
		}
		key, ok := tok.(string)
		if !ok {
			return syntaxError("livedoc.FromJSON", "object key must be a string, got %v", tok)
		}
		tok, err = p.next()
		if err != nil {
			return err
		}
		if err := p.value(livenode.ID(key), tok, depth); err != nil {
			return err
		}
	}
}

// array consumes the items of an array whose '[' was already read.
func (p *jsonParser) array(id livenode.LiveID, depth int) error {
	if depth > maxDepth {
		return syntaxError("livedoc.FromJSON", "nesting deeper than %d", maxDepth)
	}
	p.push(id, livenode.ArrayOpen())
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			p.push(livenode.EmptyID, livenode.CloseMarker())
			return nil
		}
		if err := p.value(livenode.EmptyID, tok, depth); err != nil {
			return err
		}
	}
}

func (p *jsonParser) value(id livenode.LiveID, tok json.Token, depth int) error {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return p.object(id, depth+1)
		case '[':
			return p.array(id, depth+1)
		}
		return syntaxError("livedoc.FromJSON", "unexpected %q", rune(v))
	case string:
		if isColorLiteral(v) {
			argb, _ := ParseColor(v)
			p.push(id, livenode.Color(argb))
		} else {
			p.push(id, livenode.Str(v))
		}
	case bool:
		p.push(id, livenode.Bool(v))
	case json.Number:
		if i, err := v.Int64(); err == nil {
			p.push(id, livenode.Int(i))
			return nil
		}
		f, err := v.Float64()
		if err != nil {
			return syntaxError("livedoc.FromJSON", "number %s: %v", v, err)
		}
		p.push(id, livenode.Float(f))
	case float64:
		p.push(id, livenode.Float(v))
	case nil:
		p.push(id, livenode.None())
	default:
		return syntaxError("livedoc.FromJSON", "unexpected token %v", tok)
	}
	return nil
}
