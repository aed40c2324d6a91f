package widgets

import (
	"fmt"

	"github.com/hardik-satasiya/makepad/pkg/live"
	"github.com/hardik-satasiya/makepad/pkg/livenode"
)

// View draws a background and a list of child components.
type View struct {
	live.HookBase
	Color    uint32   `live:"color"`
	Children Children `live:"children"`
}

func (v *View) Apply(cx *live.Cx, from live.ApplyFrom, index int, nodes livenode.Nodes) int {
	return live.ApplyStruct(cx, v, from, index, nodes)
}

func (v *View) ToFrameComponent() (live.FrameComponent, bool) {
	return v, true
}

// HandleEventDyn offers the event to each child in order and returns the
// first action a child emits. Next-frame events reach every child.
func (v *View) HandleEventDyn(cx *live.Cx, ev *live.Event) live.Action {
	act := live.NoAction
	for _, child := range v.Children.items {
		fc, ok := child.ToFrameComponent()
		if !ok {
			continue
		}
		if a := fc.HandleEventDyn(cx, ev); act.IsNone() && !a.IsNone() {
			act = a
		}
	}
	return act
}

func (v *View) DrawDyn(cx *live.Cx) {
	cx.PushDraw(live.DrawOp{
		Component: "View",
		Attrs:     map[string]any{"color": v.Color, "children": len(v.Children.items)},
	})
	for _, child := range v.Children.items {
		if fc, ok := child.ToFrameComponent(); ok {
			fc.DrawDyn(cx)
		}
	}
}

// Children is a list of type-erased components. In a document it is an array
// whose items each hold a single entry named after the component type. The
// entry's value is applied to the component, so it may be a scalar for
// components that accept one.
// Re-applying keeps the existing child at a position when its type is
// unchanged, so the child keeps its runtime state.
type Children struct {
	live.HookBase
	items []live.Object
}

// Len returns the number of children.
func (c *Children) Len() int {
	return len(c.items)
}

// At returns the child at i.
func (c *Children) At(i int) live.Object {
	return c.items[i]
}

// Append adds a child.
func (c *Children) Append(obj live.Object) {
	c.items = append(c.items, obj)
}

// ChildAt returns the child at i as a *T.
func ChildAt[T any](c *Children, i int) (*T, bool) {
	if i < 0 || i >= len(c.items) {
		return nil, false
	}
	return live.CastMut[T](c.items[i])
}

func (c *Children) Apply(cx *live.Cx, from live.ApplyFrom, index int, nodes livenode.Nodes) int {
	if index >= len(nodes) {
		return len(nodes)
	}
	if nodes[index].Value.Kind != livenode.KindArray {
		cx.ApplyErrorValueMismatch(from, index, nodes, fmt.Errorf("children must be an array, got %s", nodes[index].Value.Kind))
		return nodes.SkipNode(index)
	}

	old := c.items
	items := make([]live.Object, 0, len(nodes.Children(index)))
	for _, item := range nodes.Children(index) {
		entries := nodes.Children(item)
		if nodes[item].Value.Kind != livenode.KindObject || len(entries) != 1 {
			cx.ApplyErrorValueMismatch(from, item, nodes, fmt.Errorf("child must be a single component entry"))
			continue
		}
		entry := entries[0]
		typeID := nodes[entry].ID

		var obj live.Object
		if pos := len(items); pos < len(old) && old[pos].LiveType().ID() == typeID {
			obj = old[pos]
		} else {
			a, ok := cx.NewComponentByName(typeID)
			if !ok {
				cx.ApplyErrorNoMatchingField(from, entry, nodes)
				continue
			}
			obj = live.Erase(a)
		}
		obj.Applier().Apply(cx, from, entry, nodes)
		items = append(items, obj)
	}
	c.items = items
	return nodes.SkipNode(index)
}

// LiveSnapshot lists each child's type and fields.
func (c *Children) LiveSnapshot() any {
	out := make([]any, 0, len(c.items))
	for _, child := range c.items {
		out = append(out, map[string]any{child.LiveType().Name(): live.Snapshot(child.Applier())})
	}
	return out
}
