package live

import (
	"github.com/hardik-satasiya/makepad/pkg/livenode"
)

// Optional is a child component that exists only once a document mentions
// it. Applying into an empty Optional constructs the value first.
type Optional[T any, P Constructible[T]] struct {
	HookBase
	value P
}

// Apply materializes the value if needed and applies into it.
func (o *Optional[T, P]) Apply(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) int {
	if o.value != nil {
		return o.value.Apply(cx, from, index, nodes)
	}
	inner := New[T, P](cx)
	next := inner.Apply(cx, from, index, nodes)
	o.value = inner
	return next
}

// Get returns the value if present.
func (o *Optional[T, P]) Get() (P, bool) {
	return o.value, o.value != nil
}

// IsSome reports whether the value is present.
func (o *Optional[T, P]) IsSome() bool {
	return o.value != nil
}

// Set stores v. A nil v empties the optional.
func (o *Optional[T, P]) Set(v P) {
	o.value = v
}

// Clear empties the optional.
func (o *Optional[T, P]) Clear() {
	o.value = nil
}

// Unwrap returns the value as an Applier, or nil.
func (o *Optional[T, P]) Unwrap() Applier {
	if o.value == nil {
		return nil
	}
	return o.value
}

// LiveType reports T.
func (o *Optional[T, P]) LiveType() LiveType {
	return TypeOf[T]()
}

// ToFrameComponent promotes the held value.
func (o *Optional[T, P]) ToFrameComponent() (FrameComponent, bool) {
	if o.value == nil {
		return nil, false
	}
	return o.value.ToFrameComponent()
}
