package live

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"

	"github.com/hardik-satasiya/makepad/pkg/livenode"
)

const tagName = "live"

type fieldMeta struct {
	id    livenode.LiveID
	name  string
	index []int
	typ   reflect.Type
	// keep fields hold runtime state that ApplyClear must not reset.
	keep bool
}

type structMeta struct {
	name   string
	fields map[livenode.LiveID]*fieldMeta
	order  []*fieldMeta
}

// structCache holds one structMeta per struct type.
var structCache sync.Map

var applierType = reflect.TypeFor[Applier]()

func structInfoOf(t reflect.Type) *structMeta {
	if v, ok := structCache.Load(t); ok {
		return v.(*structMeta)
	}
	meta := &structMeta{
		name:   t.String(),
		fields: make(map[livenode.LiveID]*fieldMeta),
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, ok := f.Tag.Lookup(tagName)
		if !ok || !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fm := &fieldMeta{
			id:    livenode.ID(name),
			name:  name,
			index: f.Index,
			typ:   f.Type,
			keep:  opts == "keep",
		}
		meta.fields[fm.id] = fm
		meta.order = append(meta.order, fm)
	}
	v, _ := structCache.LoadOrStore(t, meta)
	return v.(*structMeta)
}

// ApplyStruct applies the subtree at index to obj, a pointer to a struct,
// dispatching each child node to the field whose `live:"name"` tag matches
// its identifier. Nested Appliers are applied recursively; scalar values are
// decoded into their field with weak typing, so an int node fills a float64
// field. Unmatched identifiers go to obj.ApplyValueUnknown. Under
// FromApplyClear, tagged fields the overlay does not mention are reset to
// their defaults, except fields tagged with the keep option:
//
//	Animator animation.Animator `live:"animator,keep"`
//
// A scalar at index is handed to obj.ApplyValue when obj is a ValueApplier;
// such objects cannot be applied starting at their first field.
//
// BeforeApply and AfterApply are called around the walk. The returned index
// is the node after the object's close, or after the last consumed field
// when index pointed at a first field.
func ApplyStruct(cx *Cx, obj Applier, from ApplyFrom, index int, nodes livenode.Nodes) int {
	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("live.ApplyStruct: %T is not a pointer to a struct", obj))
	}
	if index < 0 || index >= len(nodes) {
		return len(nodes)
	}
	elem := rv.Elem()
	meta := structInfoOf(elem.Type())

	// Only the call made by the enclosing field walk sees fieldApply set.
	inField := cx.fieldApply > 0
	saved := cx.fieldApply
	cx.fieldApply = 0
	defer func() { cx.fieldApply = saved }()

	if v := nodes[index].Value; inField && v.IsScalar() {
		if _, ok := obj.(ValueApplier); !ok {
			cx.ApplyErrorValueMismatch(from, index, nodes, fmt.Errorf("%s wants an object, got %s", meta.name, v.Kind))
			return nodes.SkipNode(index)
		}
	}

	cx.pushOrigin(meta.name)
	defer cx.popOrigin()
	cx.metrics.observeApply(from)

	obj.BeforeApply(cx, from, index, nodes)

	var seen map[livenode.LiveID]bool
	if from.Kind() == KindApplyClear {
		seen = make(map[livenode.LiveID]bool)
	}

	next := index
	switch v := nodes[index].Value; {
	case v.IsClose():
		next = index + 1
	case !v.IsOpen():
		if va, ok := obj.(ValueApplier); ok {
			next = va.ApplyValue(cx, from, index, nodes)
			seen = nil
			break
		}
		next = applyFields(cx, obj, meta, elem, from, index, nodes, seen)
	default:
		next = applyFields(cx, obj, meta, elem, from, index+1, nodes, seen)
	}

	if seen != nil {
		resetUnseen(cx, meta, elem, seen)
	}

	obj.AfterApply(cx, from, index, nodes)
	return next
}

// applyFields walks sibling fields starting at i until the enclosing close
// or the end of the stream.
func applyFields(cx *Cx, obj Applier, meta *structMeta, elem reflect.Value, from ApplyFrom, i int, nodes livenode.Nodes, seen map[livenode.LiveID]bool) int {
	for i < len(nodes) {
		n := nodes[i]
		if n.Value.IsClose() {
			return i + 1
		}
		fm, ok := meta.fields[n.ID]
		if !ok {
			i = obj.ApplyValueUnknown(cx, from, i, nodes)
			continue
		}
		if seen != nil {
			seen[fm.id] = true
		}
		i = applyField(cx, elem.FieldByIndex(fm.index), from, i, nodes)
	}
	return i
}

func applyField(cx *Cx, fv reflect.Value, from ApplyFrom, i int, nodes livenode.Nodes) int {
	if a, ok := applierOf(cx, fv); ok {
		cx.fieldApply++
		defer func() { cx.fieldApply-- }()
		return a.Apply(cx, from, i, nodes)
	}

	v := nodes[i].Value
	switch v.Kind {
	case livenode.KindArray:
		if fv.Kind() == reflect.Slice {
			return applySlice(cx, fv, from, i, nodes)
		}
	case livenode.KindObject:
		return decodeObject(cx, fv, from, i, nodes)
	}

	if err := decodeScalar(v, fv); err != nil {
		cx.ApplyErrorValueMismatch(from, i, nodes, err)
	}
	return nodes.SkipNode(i)
}

// applierOf returns the Applier living in fv, allocating nil pointers.
func applierOf(cx *Cx, fv reflect.Value) (Applier, bool) {
	switch {
	case fv.Kind() == reflect.Pointer && fv.Type().Implements(applierType):
		if fv.IsNil() {
			fv.Set(newElem(cx, fv.Type().Elem()))
		}
		return fv.Interface().(Applier), true
	case fv.Kind() == reflect.Interface && fv.Type().Implements(applierType) && !fv.IsNil():
		return fv.Interface().(Applier), true
	case fv.CanAddr() && fv.Addr().Type().Implements(applierType):
		return fv.Addr().Interface().(Applier), true
	}
	return nil, false
}

// newElem constructs a *t the way New does.
func newElem(cx *Cx, t reflect.Type) reflect.Value {
	p := reflect.New(t)
	if in, ok := p.Interface().(Initializer); ok {
		in.Init(cx)
	}
	if h, ok := p.Interface().(Hook); ok {
		h.AfterNew(cx)
	}
	return p
}

// applySlice replaces the slice in fv with the items of the array at i.
func applySlice(cx *Cx, fv reflect.Value, from ApplyFrom, i int, nodes livenode.Nodes) int {
	et := fv.Type().Elem()
	out := reflect.MakeSlice(fv.Type(), 0, len(nodes.Children(i)))
	j := i + 1
	for j < len(nodes) && !nodes[j].Value.IsClose() {
		item := reflect.New(et).Elem()
		if et.Kind() == reflect.Pointer {
			item.Set(newElem(cx, et.Elem()))
		} else if in, ok := item.Addr().Interface().(Initializer); ok {
			in.Init(cx)
		}
		if a, ok := applierOf(cx, item); ok {
			cx.fieldApply++
			j = a.Apply(cx, from, j, nodes)
			cx.fieldApply--
		} else if nodes[j].Value.IsScalar() {
			if err := decodeScalar(nodes[j].Value, item); err != nil {
				cx.ApplyErrorValueMismatch(from, j, nodes, err)
				j = nodes.SkipNode(j)
				continue
			}
			j++
		} else {
			cx.ApplyErrorValueMismatch(from, j, nodes, fmt.Errorf("cannot store %s in %s", nodes[j].Value.Kind, et))
			j = nodes.SkipNode(j)
			continue
		}
		out = reflect.Append(out, item)
	}
	fv.Set(out)
	return nodes.SkipNode(i)
}

// decodeObject stores a plain object subtree in a non-Applier field such as
// a nested config struct or a map.
func decodeObject(cx *Cx, fv reflect.Value, from ApplyFrom, i int, nodes livenode.Nodes) int {
	m := subtreeValue(nodes, i)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          tagName,
		Result:           fv.Addr().Interface(),
	})
	if err == nil {
		err = dec.Decode(m)
	}
	if err != nil {
		cx.ApplyErrorValueMismatch(from, i, nodes, err)
	}
	return nodes.SkipNode(i)
}

// subtreeValue converts the subtree at i into maps, slices and scalars.
func subtreeValue(nodes livenode.Nodes, i int) any {
	v := nodes[i].Value
	switch v.Kind {
	case livenode.KindObject:
		m := make(map[string]any)
		for _, c := range nodes.Children(i) {
			m[nodes[c].ID.String()] = subtreeValue(nodes, c)
		}
		return m
	case livenode.KindArray:
		var s []any
		for _, c := range nodes.Children(i) {
			s = append(s, subtreeValue(nodes, c))
		}
		return s
	}
	return v.Interface()
}

func decodeScalar(v livenode.Value, fv reflect.Value) error {
	if !fv.CanSet() {
		return fmt.Errorf("field of type %s is not settable", fv.Type())
	}
	if v.Kind == livenode.KindNone {
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}
	if !v.IsScalar() {
		return fmt.Errorf("cannot store %s in %s", v.Kind, fv.Type())
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          tagName,
		Result:           fv.Addr().Interface(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(v.Interface())
}

// resetUnseen restores every tagged field not in seen to the value a freshly
// constructed object of the same type has.
func resetUnseen(cx *Cx, meta *structMeta, elem reflect.Value, seen map[livenode.LiveID]bool) {
	var fresh reflect.Value
	for _, fm := range meta.order {
		if seen[fm.id] || fm.keep {
			continue
		}
		if !fresh.IsValid() {
			fresh = reflect.New(elem.Type())
			if in, ok := fresh.Interface().(Initializer); ok {
				in.Init(cx)
			}
			fresh = fresh.Elem()
		}
		elem.FieldByIndex(fm.index).Set(fresh.FieldByIndex(fm.index))
	}
}

// ReadField returns the scalar stored in obj's field tagged id. Fields
// holding a ValueReporter report through it.
func ReadField(obj any, id livenode.LiveID) (livenode.Value, bool) {
	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return livenode.Value{}, false
	}
	elem := rv.Elem()
	fm, ok := structInfoOf(elem.Type()).fields[id]
	if !ok {
		return livenode.Value{}, false
	}
	fv := elem.FieldByIndex(fm.index)
	if fv.CanAddr() {
		if r, ok := fv.Addr().Interface().(ValueReporter); ok {
			return r.ToLiveValue(), true
		}
	}
	return scalarOf(fv)
}

func scalarOf(fv reflect.Value) (livenode.Value, bool) {
	switch fv.Kind() {
	case reflect.Bool:
		return livenode.Bool(fv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return livenode.Int(fv.Int()), true
	case reflect.Uint8, reflect.Uint16, reflect.Uint, reflect.Uint64:
		return livenode.Int(int64(fv.Uint())), true
	case reflect.Uint32:
		return livenode.Color(uint32(fv.Uint())), true
	case reflect.Float32, reflect.Float64:
		return livenode.Float(fv.Float()), true
	case reflect.String:
		return livenode.Str(fv.String()), true
	}
	return livenode.Value{}, false
}

// Snapshot returns the tagged fields of obj as plain values, recursing into
// nested structs. Useful for dumping a live object.
func Snapshot(obj any) map[string]any {
	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	out := make(map[string]any)
	for _, fm := range structInfoOf(rv.Type()).order {
		out[fm.name] = snapshotValue(rv.FieldByIndex(fm.index))
	}
	return out
}

// Snapshotter is implemented by fields whose state Snapshot cannot see
// through their tagged fields, such as component lists.
type Snapshotter interface {
	LiveSnapshot() any
}

func snapshotValue(fv reflect.Value) any {
	if fv.CanAddr() {
		if s, ok := fv.Addr().Interface().(Snapshotter); ok {
			return s.LiveSnapshot()
		}
		if u, ok := fv.Addr().Interface().(unwrapper); ok {
			inner := u.Unwrap()
			if inner == nil {
				return nil
			}
			return Snapshot(inner)
		}
	}
	switch fv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if fv.IsNil() {
			return nil
		}
		return snapshotValue(fv.Elem())
	case reflect.Struct:
		if !fv.CanAddr() {
			p := reflect.New(fv.Type())
			p.Elem().Set(fv)
			return Snapshot(p.Interface())
		}
		return Snapshot(fv.Addr().Interface())
	case reflect.Slice:
		out := make([]any, 0, fv.Len())
		for i := 0; i < fv.Len(); i++ {
			out = append(out, snapshotValue(fv.Index(i)))
		}
		return out
	}
	if fv.CanInterface() {
		return fv.Interface()
	}
	return nil
}
