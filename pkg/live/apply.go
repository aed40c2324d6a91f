package live

import (
	"github.com/hardik-satasiya/makepad/pkg/livenode"
)

// Hook is the set of lifecycle extension points every Applier carries.
// Embed HookBase to get the defaults and override only what you need.
type Hook interface {
	// ApplyValueUnknown is called for a node whose identifier matches no
	// field. It must consume the node's subtree and return the next index.
	ApplyValueUnknown(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) int
	// BeforeApply runs before the object's subtree is walked.
	BeforeApply(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes)
	// AfterApply runs after the object's subtree is walked.
	AfterApply(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes)
	// AfterNew runs once after construction, before the first apply.
	AfterNew(cx *Cx)
	// ToFrameComponent promotes the object to a drawable, event-handling
	// component when it supports that capability.
	ToFrameComponent() (FrameComponent, bool)
}

// Applier is an object that node streams can be applied to.
type Applier interface {
	Hook
	// Apply consumes the subtree starting at index and returns the index of
	// the node immediately after it. Index points either at the object open
	// or at the object's first field.
	Apply(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) int
}

// ValueApplier is implemented by objects that accept a bare scalar in place
// of an object subtree, such as a color struct written as "#ff0000".
type ValueApplier interface {
	ApplyValue(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) int
}

// ValueReporter is implemented by objects that can describe themselves as a
// single scalar value.
type ValueReporter interface {
	ToLiveValue() livenode.Value
}

// Initializer is implemented by objects whose default state is not their
// zero value. Init is the bare constructor used by New.
type Initializer interface {
	Init(cx *Cx)
}

// Registrar is implemented by types that need one-time setup when their
// factory is registered.
type Registrar interface {
	LiveRegister(cx *Cx)
}

// HookBase provides the default lifecycle hooks. Embed it in components.
type HookBase struct{}

// ApplyValueUnknown skips the unknown subtree and reports it to cx.
func (HookBase) ApplyValueUnknown(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) int {
	return DefaultApplyValueUnknown(cx, from, index, nodes)
}

func (HookBase) BeforeApply(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) {}

func (HookBase) AfterApply(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) {}

func (HookBase) AfterNew(cx *Cx) {}

// ToFrameComponent declines the capability.
func (HookBase) ToFrameComponent() (FrameComponent, bool) {
	return nil, false
}

// DefaultApplyValueUnknown is the default unknown-field policy: the subtree
// at index is skipped and a diagnostic is reported. Animation overlays carry
// a bookkeeping "from" field; under FromAnimate it is skipped silently.
func DefaultApplyValueUnknown(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) int {
	if from.Kind() == KindAnimate && index < len(nodes) && nodes[index].ID == livenode.IDFrom {
		return nodes.SkipNode(index)
	}
	cx.ApplyErrorNoMatchingField(from, index, nodes)
	return nodes.SkipNode(index)
}

// ApplyOver merges nodes into obj without reconstructing it. Fields the
// overlay does not mention keep their values.
func ApplyOver(cx *Cx, obj Applier, nodes livenode.Nodes) {
	obj.Apply(cx, FromApplyOver, 0, nodes)
}

// ApplyClear merges nodes into obj. Objects applied with ApplyStruct reset
// the fields the overlay does not mention to their defaults.
func ApplyClear(cx *Cx, obj Applier, nodes livenode.Nodes) {
	obj.Apply(cx, FromApplyClear, 0, nodes)
}
