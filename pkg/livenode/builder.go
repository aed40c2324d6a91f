package livenode

// Builder assembles a well-formed node stream.
type Builder struct {
	nodes Nodes
	depth int
}

// Build starts a new node stream.
func Build() *Builder {
	return &Builder{}
}

func (b *Builder) push(id LiveID, v Value) *Builder {
	b.nodes = append(b.nodes, Node{ID: id, Value: v})
	return b
}

// Object opens a named-field object.
func (b *Builder) Object(id LiveID) *Builder {
	b.depth++
	return b.push(id, ObjectOpen())
}

// Array opens a positional list.
func (b *Builder) Array(id LiveID) *Builder {
	b.depth++
	return b.push(id, ArrayOpen())
}

// End closes the innermost open container. Extra calls are ignored.
func (b *Builder) End() *Builder {
	if b.depth == 0 {
		return b
	}
	b.depth--
	return b.push(EmptyID, CloseMarker())
}

func (b *Builder) Bool(id LiveID, v bool) *Builder       { return b.push(id, Bool(v)) }
func (b *Builder) Int(id LiveID, v int64) *Builder       { return b.push(id, Int(v)) }
func (b *Builder) Float(id LiveID, v float64) *Builder   { return b.push(id, Float(v)) }
func (b *Builder) Str(id LiveID, v string) *Builder      { return b.push(id, Str(v)) }
func (b *Builder) Color(id LiveID, argb uint32) *Builder { return b.push(id, Color(argb)) }
func (b *Builder) IDRef(id, ref LiveID) *Builder         { return b.push(id, IDRef(ref)) }

// Value appends an arbitrary scalar value.
func (b *Builder) Value(id LiveID, v Value) *Builder {
	if !v.IsScalar() {
		return b
	}
	return b.push(id, v)
}

// Append copies a balanced subtree into the stream.
func (b *Builder) Append(sub Nodes) *Builder {
	if !sub.Balanced() {
		return b
	}
	b.nodes = append(b.nodes, sub...)
	return b
}

// Nodes closes any containers left open and returns the stream.
func (b *Builder) Nodes() Nodes {
	for b.depth > 0 {
		b.End()
	}
	return b.nodes
}
