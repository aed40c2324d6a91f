package live

import (
	"github.com/hardik-satasiya/makepad/pkg/livenode"
	"github.com/hardik-satasiya/makepad/pkg/registry"
)

// Constructible is satisfied by *T when *T is an Applier. The zero T is the
// starting point of construction; implement Initializer to change it.
type Constructible[T any] interface {
	*T
	Applier
}

func construct[T any, P Constructible[T]](cx *Cx) P {
	p := P(new(T))
	if in, ok := any(p).(Initializer); ok {
		in.Init(cx)
	}
	p.AfterNew(cx)
	return p
}

// New constructs a T with no document applied.
func New[T any, P Constructible[T]](cx *Cx) P {
	cx.metrics.observeConstruct("new")
	return construct[T, P](cx)
}

// NewApply constructs a T and applies the subtree at index.
func NewApply[T any, P Constructible[T]](cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) P {
	cx.metrics.observeConstruct("new_apply")
	p := construct[T, P](cx)
	p.Apply(cx, from, index, nodes)
	return p
}

// NewApplyMut is NewApply for callers walking a larger stream: *index is
// advanced past the consumed subtree.
func NewApplyMut[T any, P Constructible[T]](cx *Cx, from ApplyFrom, index *int, nodes livenode.Nodes) P {
	cx.metrics.observeConstruct("new_apply_mut")
	p := construct[T, P](cx)
	*index = p.Apply(cx, from, *index, nodes)
	return p
}

// NewFromPtr constructs a T from the document node ptr addresses. A pointer
// into no registered document yields the unapplied default object and a
// diagnostic.
func NewFromPtr[T any, P Constructible[T]](cx *Cx, ptr registry.Ptr) P {
	cx.metrics.observeConstruct("new_from_ptr")
	p := construct[T, P](cx)
	applyPtr(cx, p, FromNewFromDoc(ptr.File), ptr)
	return p
}

// NewFromModulePathID constructs a T from the top-level entry id of the
// document registered for modulePath. A missing module or entry is not an
// error; it returns false.
func NewFromModulePathID[T any, P Constructible[T]](cx *Cx, modulePath string, id livenode.LiveID) (P, bool) {
	ptr, ok := lookup(cx, modulePath, id)
	if !ok {
		var zero P
		return zero, false
	}
	cx.metrics.observeConstruct("new_from_module_path_id")
	p := construct[T, P](cx)
	applyPtr(cx, p, FromNewFromDoc(ptr.File), ptr)
	return p, true
}

// Reload re-applies the document node ptr addresses to an existing object,
// as happens after the document is edited.
func Reload(cx *Cx, obj Applier, ptr registry.Ptr) int {
	return applyPtr(cx, obj, FromUpdateFromDoc(ptr.File), ptr)
}

func applyPtr(cx *Cx, obj Applier, from ApplyFrom, ptr registry.Ptr) int {
	doc, ok := cx.registry.PtrToDoc(ptr)
	if !ok {
		cx.applyErrorDanglingPtr(from, ptr)
		return ptr.Index
	}
	return obj.Apply(cx, from, ptr.Index, doc.Nodes)
}

func lookup(cx *Cx, modulePath string, id livenode.LiveID) (registry.Ptr, bool) {
	mod, err := registry.ParseModuleID(modulePath)
	if err != nil {
		cx.logger.Debug("live lookup miss", "module", modulePath, "error", err)
		return registry.Ptr{}, false
	}
	ptr, ok := cx.registry.Lookup(mod, id)
	if !ok {
		cx.logger.Debug("live lookup miss", "module", modulePath, "id", id.String())
	}
	return ptr, ok
}
