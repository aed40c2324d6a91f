package live

import (
	"reflect"
	"testing"

	"github.com/hardik-satasiya/makepad/pkg/livenode"
)

func TestObjectCast(t *testing.T) {
	cx, _ := newTestCx()
	l := New[label](cx)
	l.Text = "x"
	obj := Erase(l)

	if !Is[label](obj) || Is[panel](obj) {
		t.Error("Is reports the wrong type")
	}
	if obj.LiveType() != TypeOf[label]() {
		t.Errorf("LiveType = %v", obj.LiveType())
	}

	p, ok := CastMut[label](obj)
	if !ok || p != l {
		t.Errorf("CastMut = %p, %v; want the erased pointer", p, ok)
	}

	c, ok := Cast[label](obj)
	if !ok {
		t.Fatal("Cast failed")
	}
	c.Text = "changed"
	if l.Text != "x" {
		t.Error("Cast should return a copy")
	}

	if _, ok := CastMut[panel](obj); ok {
		t.Error("CastMut to the wrong type succeeded")
	}
	if _, ok := Cast[panel](obj); ok {
		t.Error("Cast to the wrong type succeeded")
	}
}

func TestObjectNil(t *testing.T) {
	obj := Erase(nil)
	if !obj.IsNil() || !obj.LiveType().IsZero() {
		t.Error("erased nil should be empty")
	}
	if Is[label](obj) {
		t.Error("nil object reports a type")
	}
	if _, ok := CastMut[label](obj); ok {
		t.Error("CastMut on nil succeeded")
	}
	if _, ok := obj.ToFrameComponent(); ok {
		t.Error("nil object is a frame component")
	}
}

func TestObjectOptional(t *testing.T) {
	cx, _ := newTestCx()
	opt := &Optional[label, *label]{}
	obj := Erase(opt)
	if !Is[label](obj) {
		t.Error("an optional reports the type it holds")
	}
	if _, ok := CastMut[label](obj); ok {
		t.Error("an empty optional holds nothing")
	}

	opt.Apply(cx, FromNew, 0, livenode.Build().Object(livenode.EmptyID).Str(idText, "o").End().Nodes())
	l, ok := CastMut[label](obj)
	if !ok || l.Text != "o" {
		t.Errorf("CastMut = %+v, %v", l, ok)
	}
}

type mode int

const (
	modeBusy mode = iota
	modeIdle
)

func (mode) Default() mode { return modeIdle }

type hovered struct {
	Path []string
}

func (h hovered) Clone() hovered {
	return hovered{Path: append([]string(nil), h.Path...)}
}

func TestCastAction(t *testing.T) {
	act := NewAction(clicked{Count: 3})
	if act.IsNone() || !IsAction[clicked](act) || IsAction[mode](act) {
		t.Error("action type checks failed")
	}
	if act.LiveType() != TypeOf[clicked]() {
		t.Errorf("LiveType = %v", act.LiveType())
	}

	tests := []struct {
		name string
		act  Action
		want clicked
	}{
		{"match", act, clicked{Count: 3}},
		{"other type", NewAction(modeBusy), clicked{}},
		{"none", NoAction, clicked{}},
	}
	for _, tt := range tests {
		if got := CastAction[clicked](tt.act); got != tt.want {
			t.Errorf("%s: CastAction = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestCastActionDefault(t *testing.T) {
	if got := CastAction[mode](NoAction); got != modeIdle {
		t.Errorf("none: got %v, want idle", got)
	}
	if got := CastAction[mode](NewAction(clicked{})); got != modeIdle {
		t.Errorf("other type: got %v, want idle", got)
	}
	if got := CastAction[mode](NewAction(modeBusy)); got != modeBusy {
		t.Errorf("match: got %v, want busy", got)
	}
}

func TestActionClone(t *testing.T) {
	src := hovered{Path: []string{"root", "button"}}
	act := NewAction(src)

	got := CastAction[hovered](act)
	got.Path[0] = "mutated"
	if src.Path[0] != "root" {
		t.Error("casting should clone through Clone")
	}

	boxed := act.BoxClone()
	if !IsAction[hovered](boxed) {
		t.Fatal("BoxClone lost the type")
	}
	if again := CastAction[hovered](boxed); !reflect.DeepEqual(again.Path, []string{"root", "button"}) {
		t.Errorf("Path = %v", again.Path)
	}
	if !NoAction.BoxClone().IsNone() {
		t.Error("cloning no action should stay empty")
	}
}

func TestCastActionID(t *testing.T) {
	id, c := CastActionID[clicked](NewAction(clicked{Count: 1}), livenode.ID("ok_button"))
	if id != livenode.ID("ok_button") || c.Count != 1 {
		t.Errorf("got %v, %+v", id, c)
	}

	id, c = CastActionID[clicked](NoAction, livenode.ID("cancel"))
	if id != livenode.ID("cancel") || c.Count != 0 {
		t.Errorf("got %v, %+v", id, c)
	}
}
