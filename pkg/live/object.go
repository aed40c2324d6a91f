package live

// Object is a type-erased handle to an Applier. Its type tag is taken from
// the stored value when the handle is created, so it always matches the
// value's real type.
type Object struct {
	value Applier
	tag   LiveType
}

// Erase wraps v in an Object.
func Erase(v Applier) Object {
	if v == nil {
		return Object{}
	}
	return Object{value: v, tag: LiveTypeOf(v)}
}

// Applier returns the stored value.
func (o Object) Applier() Applier {
	return o.value
}

// LiveType returns the type tag.
func (o Object) LiveType() LiveType {
	return o.tag
}

// IsNil reports whether the handle is empty.
func (o Object) IsNil() bool {
	return o.value == nil
}

// ToFrameComponent promotes the stored value through its Hook.
func (o Object) ToFrameComponent() (FrameComponent, bool) {
	if o.value == nil {
		return nil, false
	}
	return o.value.ToFrameComponent()
}

// unwrapper is implemented by wrappers such as Optional that stand for the
// value they hold.
type unwrapper interface {
	Unwrap() Applier
}

// Is reports whether o holds a T.
func Is[T any](o Object) bool {
	return !o.tag.IsZero() && o.tag == TypeOf[T]()
}

// CastMut returns the stored *T, or false when o does not hold a T.
func CastMut[T any](o Object) (*T, bool) {
	if !Is[T](o) {
		return nil, false
	}
	v := o.value
	if u, ok := v.(unwrapper); ok {
		v = u.Unwrap()
	}
	p, ok := any(v).(*T)
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}

// Cast returns a copy of the stored T, or false when o does not hold a T.
func Cast[T any](o Object) (T, bool) {
	p, ok := CastMut[T](o)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}
