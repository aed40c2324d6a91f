package live

import (
	"reflect"
	"sort"

	"github.com/hardik-satasiya/makepad/pkg/livenode"
)

// LiveType identifies a concrete Go type. It is stable for the life of the
// process and comparable, so it can key maps.
type LiveType struct {
	t reflect.Type
}

// TypeOf returns the LiveType of T.
func TypeOf[T any]() LiveType {
	return LiveType{t: reflect.TypeFor[T]()}
}

// typed is implemented by wrappers that report the type they stand for.
type typed interface {
	LiveType() LiveType
}

// LiveTypeOf returns the LiveType of the concrete value v. Pointers report
// their element type, so a *Button and TypeOf[Button]() agree.
func LiveTypeOf(v any) LiveType {
	if v == nil {
		return LiveType{}
	}
	if tv, ok := v.(typed); ok {
		return tv.LiveType()
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return LiveType{t: t}
}

// IsZero reports whether lt identifies no type.
func (lt LiveType) IsZero() bool {
	return lt.t == nil
}

// Name returns the unqualified type name, e.g. "Button".
func (lt LiveType) Name() string {
	if lt.t == nil {
		return ""
	}
	return lt.t.Name()
}

// ID returns the identifier documents use to name this type.
func (lt LiveType) ID() livenode.LiveID {
	return livenode.ID(lt.Name())
}

func (lt LiveType) String() string {
	if lt.t == nil {
		return "<nil>"
	}
	return lt.t.String()
}

// FieldInfo describes one live field of a type.
type FieldInfo struct {
	Name string
	Type string
}

// TypeInfo describes a live type and its fields.
type TypeInfo struct {
	Type   LiveType
	Name   string
	Fields []FieldInfo
}

// TypeInfoOf returns the live fields of T, sorted by name.
func TypeInfoOf[T any]() TypeInfo {
	return typeInfo(TypeOf[T]())
}

func typeInfo(lt LiveType) TypeInfo {
	info := TypeInfo{Type: lt, Name: lt.Name()}
	if lt.t == nil || lt.t.Kind() != reflect.Struct {
		return info
	}
	for _, f := range structInfoOf(lt.t).order {
		info.Fields = append(info.Fields, FieldInfo{Name: f.name, Type: f.typ.String()})
	}
	sort.Slice(info.Fields, func(i, j int) bool { return info.Fields[i].Name < info.Fields[j].Name })
	return info
}
