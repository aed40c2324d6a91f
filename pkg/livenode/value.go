package livenode

import (
	"fmt"
	"strconv"
)

// ValueKind identifies what a node carries.
type ValueKind int

const (
	// KindNone is an explicit empty value.
	KindNone ValueKind = iota
	// KindBool is a boolean scalar.
	KindBool
	// KindInt64 is a signed integer scalar.
	KindInt64
	// KindFloat64 is a floating point scalar.
	KindFloat64
	// KindStr is a string scalar.
	KindStr
	// KindColor is a packed ARGB color scalar.
	KindColor
	// KindID is a reference to another identifier.
	KindID
	// KindObject opens a named-field object.
	KindObject
	// KindArray opens a positional list.
	KindArray
	// KindClose ends the innermost open object or array.
	KindClose
)

func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindStr:
		return "str"
	case KindColor:
		return "color"
	case KindID:
		return "id"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindClose:
		return "close"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is the payload of a node. Only the field matching Kind is meaningful.
type Value struct {
	Kind  ValueKind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	Color uint32
	ID    LiveID
}

// Constructors for each value kind.
func None() Value             { return Value{Kind: KindNone} }
func Bool(v bool) Value       { return Value{Kind: KindBool, Bool: v} }
func Int(v int64) Value       { return Value{Kind: KindInt64, Int: v} }
func Float(v float64) Value   { return Value{Kind: KindFloat64, Float: v} }
func Str(v string) Value      { return Value{Kind: KindStr, Str: v} }
func Color(argb uint32) Value { return Value{Kind: KindColor, Color: argb} }
func IDRef(id LiveID) Value   { return Value{Kind: KindID, ID: id} }
func ObjectOpen() Value       { return Value{Kind: KindObject} }
func ArrayOpen() Value        { return Value{Kind: KindArray} }
func CloseMarker() Value      { return Value{Kind: KindClose} }

// IsOpen reports whether the value opens a nested object or array.
func (v Value) IsOpen() bool {
	return v.Kind == KindObject || v.Kind == KindArray
}

// IsClose reports whether the value ends a nested object or array.
func (v Value) IsClose() bool {
	return v.Kind == KindClose
}

// IsScalar reports whether the value is a leaf.
func (v Value) IsScalar() bool {
	return !v.IsOpen() && !v.IsClose()
}

// IsNumber reports whether the value is an integer or float.
func (v Value) IsNumber() bool {
	return v.Kind == KindInt64 || v.Kind == KindFloat64
}

// AsFloat returns the numeric value as float64.
func (v Value) AsFloat() (float64, bool) {
	switch v.Kind {
	case KindInt64:
		return float64(v.Int), true
	case KindFloat64:
		return v.Float, true
	}
	return 0, false
}

// Interface returns the Go value of a scalar. Structural values return nil.
func (v Value) Interface() any {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindInt64:
		return v.Int
	case KindFloat64:
		return v.Float
	case KindStr:
		return v.Str
	case KindColor:
		return v.Color
	case KindID:
		return v.ID.String()
	}
	return nil
}

func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt64:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat64:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindStr:
		return strconv.Quote(v.Str)
	case KindColor:
		return fmt.Sprintf("#%08x", v.Color)
	case KindID:
		return v.ID.String()
	case KindObject:
		return "{"
	case KindArray:
		return "["
	case KindClose:
		return "}"
	}
	return "none"
}
