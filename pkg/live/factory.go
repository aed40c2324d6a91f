package live

import (
	"github.com/hardik-satasiya/makepad/pkg/livenode"
	"github.com/hardik-satasiya/makepad/pkg/registry"
)

// Factory constructs components of one registered type.
type Factory interface {
	NewComponent(cx *Cx) Applier
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(cx *Cx) Applier

func (f FactoryFunc) NewComponent(cx *Cx) Applier {
	return f(cx)
}

// Register makes T constructible by LiveType and by type name through cx.
// Types implementing Registrar get their LiveRegister hook called once.
func Register[T any, P Constructible[T]](cx *Cx) LiveType {
	lt := TypeOf[T]()
	if _, ok := cx.factories[lt]; ok {
		return lt
	}
	cx.factories[lt] = FactoryFunc(func(cx *Cx) Applier {
		return construct[T, P](cx)
	})
	cx.names[lt.ID()] = lt
	if r, ok := any(P(new(T))).(Registrar); ok {
		r.LiveRegister(cx)
	}
	return lt
}

// RegisteredTypes returns the types registered on cx.
func (cx *Cx) RegisteredTypes() []TypeInfo {
	out := make([]TypeInfo, 0, len(cx.factories))
	for lt := range cx.factories {
		out = append(out, typeInfo(lt))
	}
	return out
}

// TypeByName resolves a registered type from its name identifier.
func (cx *Cx) TypeByName(id livenode.LiveID) (LiveType, bool) {
	lt, ok := cx.names[id]
	return lt, ok
}

// NewComponent constructs a registered type without applying anything.
func (cx *Cx) NewComponent(lt LiveType) (Applier, bool) {
	f, ok := cx.factories[lt]
	if !ok {
		return nil, false
	}
	cx.metrics.observeConstruct("factory")
	return f.NewComponent(cx), true
}

// NewComponentByName constructs a registered type by its name identifier.
func (cx *Cx) NewComponentByName(id livenode.LiveID) (Applier, bool) {
	lt, ok := cx.TypeByName(id)
	if !ok {
		return nil, false
	}
	return cx.NewComponent(lt)
}

// NewComponentFromPtr constructs a registered type and applies the document
// node ptr addresses, like NewFromPtr for types only known at run time.
func (cx *Cx) NewComponentFromPtr(lt LiveType, ptr registry.Ptr) (Applier, bool) {
	obj, ok := cx.NewComponent(lt)
	if !ok {
		return nil, false
	}
	applyPtr(cx, obj, FromNewFromDoc(ptr.File), ptr)
	return obj, true
}
