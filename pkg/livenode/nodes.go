package livenode

// Node is one element of a node stream.
type Node struct {
	ID    LiveID
	Value Value
}

// Nodes is a depth-first serialized tree of nodes.
type Nodes []Node

// SkipNode returns the index just past the node at index, including its whole
// subtree when the node opens an object or array. Indexes at or past the end
// return len(nodes).
func (nodes Nodes) SkipNode(index int) int {
	if index < 0 || index >= len(nodes) {
		return len(nodes)
	}
	if !nodes[index].Value.IsOpen() {
		return index + 1
	}
	return nodes.CloseIndex(index) + 1
}

// CloseIndex returns the index of the close matching the open at index.
// A truncated stream yields len(nodes)-1 so callers never index out of range.
func (nodes Nodes) CloseIndex(open int) int {
	depth := 0
	for i := open; i < len(nodes); i++ {
		v := nodes[i].Value
		switch {
		case v.IsOpen():
			depth++
		case v.IsClose():
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(nodes) - 1
}

// Children returns the indexes of the direct children of the container
// opened at parent.
func (nodes Nodes) Children(parent int) []int {
	if parent < 0 || parent >= len(nodes) || !nodes[parent].Value.IsOpen() {
		return nil
	}
	var out []int
	for i := parent + 1; i < len(nodes) && !nodes[i].Value.IsClose(); i = nodes.SkipNode(i) {
		out = append(out, i)
	}
	return out
}

// ChildByName returns the index of the direct child of the container opened
// at parent whose identifier is id.
func (nodes Nodes) ChildByName(parent int, id LiveID) (int, bool) {
	for _, i := range nodes.Children(parent) {
		if nodes[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// Subtree returns a copy of the node at index and its subtree.
func (nodes Nodes) Subtree(index int) Nodes {
	end := nodes.SkipNode(index)
	if index >= end {
		return nil
	}
	out := make(Nodes, end-index)
	copy(out, nodes[index:end])
	return out
}

// Balanced reports whether every open has a matching close.
func (nodes Nodes) Balanced() bool {
	depth := 0
	for _, n := range nodes {
		switch {
		case n.Value.IsOpen():
			depth++
		case n.Value.IsClose():
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
