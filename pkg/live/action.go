package live

import (
	"reflect"

	"github.com/hardik-satasiya/makepad/pkg/livenode"
)

// Cloner is implemented by action types that hold references and need a
// deep copy when the action is cloned.
type Cloner[A any] interface {
	Clone() A
}

// Defaulter is implemented by action types whose default is not the zero value.
type Defaulter[A any] interface {
	Default() A
}

// Action is a type-erased, cloneable user action. The zero Action is the
// absent action.
type Action struct {
	value any
	typ   reflect.Type
	clone func(any) any
}

// NoAction is the absent action.
var NoAction = Action{}

// NewAction erases a. The clone operation for A is recorded here.
func NewAction[A any](a A) Action {
	return Action{
		value: a,
		typ:   reflect.TypeFor[A](),
		clone: cloneAction[A],
	}
}

func cloneAction[A any](v any) any {
	a := v.(A)
	if c, ok := any(a).(Cloner[A]); ok {
		return c.Clone()
	}
	return a
}

// IsNone reports whether the action is absent.
func (a Action) IsNone() bool {
	return a.typ == nil
}

// LiveType returns the type of the held action.
func (a Action) LiveType() LiveType {
	return LiveType{t: a.typ}
}

// BoxClone returns a new handle holding a clone of the action.
func (a Action) BoxClone() Action {
	if a.IsNone() {
		return a
	}
	return Action{value: a.clone(a.value), typ: a.typ, clone: a.clone}
}

// IsAction reports whether act holds an A.
func IsAction[A any](act Action) bool {
	return act.typ != nil && act.typ == reflect.TypeFor[A]()
}

// CastAction returns a clone of the held A. Any other action, including the
// absent one, yields A's default value.
func CastAction[A any](act Action) A {
	if IsAction[A](act) {
		return act.clone(act.value).(A)
	}
	return defaultAction[A]()
}

// CastActionID is CastAction paired with a correlation id passed through
// unchanged, for keyed handler tables.
func CastActionID[A any](act Action, id livenode.LiveID) (livenode.LiveID, A) {
	return id, CastAction[A](act)
}

func defaultAction[A any]() A {
	var zero A
	if d, ok := any(zero).(Defaulter[A]); ok {
		return d.Default()
	}
	return zero
}
