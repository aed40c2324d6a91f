package live

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/hardik-satasiya/makepad/pkg/livenode"
	"github.com/hardik-satasiya/makepad/pkg/registry"
)

const testModule = "example.com/ui/main"

func docNodes() livenode.Nodes {
	return livenode.Build().
		Object(livenode.EmptyID).
		Object(livenode.ID("title")).Str(idText, "hello").Float(idWidth, 40).End().
		Object(livenode.ID("caption")).Str(idText, "small").End().
		End().
		Nodes()
}

func registerDoc(t *testing.T, cx *Cx) registry.FileID {
	t.Helper()
	mod, err := registry.ParseModuleID(testModule)
	if err != nil {
		t.Fatalf("ParseModuleID: %v", err)
	}
	file, err := cx.Registry().Register(mod, "ui/main.yaml", docNodes())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return file
}

func mustLookup(t *testing.T, cx *Cx, id string) registry.Ptr {
	t.Helper()
	mod, _ := registry.ParseModuleID(testModule)
	ptr, ok := cx.Registry().Lookup(mod, livenode.ID(id))
	if !ok {
		t.Fatalf("no entry %q", id)
	}
	return ptr
}

func TestNewUsesInit(t *testing.T) {
	cx, _ := newTestCx()
	l := New[label](cx)
	if l.Text != "" || l.Width != 100 || !l.Visible {
		t.Errorf("New = %+v, want Init defaults", l)
	}
}

func TestNewFromModulePathID(t *testing.T) {
	cx, _ := newTestCx()
	registerDoc(t, cx)

	l, ok := NewFromModulePathID[label](cx, testModule, livenode.ID("title"))
	if !ok {
		t.Fatal("title not found")
	}
	if l.Text != "hello" || l.Width != 40 {
		t.Errorf("label = %q/%v, want hello/40", l.Text, l.Width)
	}
	if l.lastFrom.Kind() != KindNewFromDoc {
		t.Errorf("lastFrom = %s", l.lastFrom)
	}
	if file, ok := l.lastFrom.FileID(); !ok || file != 0 {
		t.Errorf("FileID = %v, %v", file, ok)
	}
	if len(cx.Diagnostics()) != 0 {
		t.Errorf("unexpected diagnostics: %v", cx.Diagnostics())
	}
}

func TestNewFromModulePathIDMiss(t *testing.T) {
	cx, handler := newTestCx()
	registerDoc(t, cx)

	tests := []struct {
		name   string
		module string
		id     livenode.LiveID
	}{
		{"unknown id", testModule, livenode.ID("missing")},
		{"unknown module", "example.com/other", livenode.ID("title")},
		{"invalid module path", "not a path", livenode.ID("title")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := NewFromModulePathID[label](cx, tt.module, tt.id)
			if ok || l != nil {
				t.Errorf("got %+v, %v; want nil, false", l, ok)
			}
		})
	}
	if len(cx.Diagnostics()) != 0 || len(handler.errs) != 0 {
		t.Errorf("misses should not be reported: %v", cx.Diagnostics())
	}
}

func TestNewFromPtr(t *testing.T) {
	cx, _ := newTestCx()
	file := registerDoc(t, cx)
	ptr := mustLookup(t, cx, "caption")
	if ptr.File != file {
		t.Errorf("ptr.File = %v, want %v", ptr.File, file)
	}

	l := NewFromPtr[label](cx, ptr)
	if l.Text != "small" || l.Width != 100 {
		t.Errorf("label = %q/%v, want small/100", l.Text, l.Width)
	}
}

func TestNewFromDanglingPtr(t *testing.T) {
	cx, handler := newTestCx()
	l := NewFromPtr[label](cx, registry.Ptr{File: 3, Index: 1})

	// The default object is returned.
	if l.Width != 100 || l.befores != 0 {
		t.Errorf("label = %+v", l)
	}
	diags := cx.Diagnostics()
	if len(diags) != 1 || diags[0].Kind != DiagDanglingPtr {
		t.Errorf("diagnostics = %v, want one dangling pointer", diags)
	}
	if len(handler.errs) != 1 {
		t.Errorf("handler got %d errors, want 1", len(handler.errs))
	}
}

func TestReloadAfterDocumentUpdate(t *testing.T) {
	cx, _ := newTestCx()
	file := registerDoc(t, cx)
	ptr := mustLookup(t, cx, "caption")
	l := NewFromPtr[label](cx, ptr)

	edited := livenode.Build().
		Object(livenode.EmptyID).
		Object(livenode.ID("title")).Str(idText, "hello").Float(idWidth, 40).End().
		Object(livenode.ID("caption")).Str(idText, "bigger").End().
		End().
		Nodes()
	if err := cx.Registry().UpdateDocument(file, edited); err != nil {
		t.Fatalf("UpdateDocument: %v", err)
	}

	Reload(cx, l, ptr)
	if l.Text != "bigger" {
		t.Errorf("text = %q, want bigger", l.Text)
	}
	if l.lastFrom.Kind() != KindUpdateFromDoc {
		t.Errorf("lastFrom = %s", l.lastFrom)
	}
	if l.news != 1 {
		t.Errorf("news = %d, reload must not construct again", l.news)
	}
}

func TestApplyFrom(t *testing.T) {
	tests := []struct {
		from    ApplyFrom
		kind    ApplyKind
		fromDoc bool
		str     string
	}{
		{FromNew, KindNew, false, "new"},
		{ApplyFrom{}, KindNew, false, "new"},
		{FromAnimate, KindAnimate, false, "animate"},
		{FromApplyOver, KindApplyOver, false, "apply_over"},
		{FromApplyClear, KindApplyClear, false, "apply_clear"},
		{FromNewFromDoc(2), KindNewFromDoc, true, "new_from_doc(file2)"},
		{FromUpdateFromDoc(5), KindUpdateFromDoc, true, "update_from_doc(file5)"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.from.Kind(); got != tt.kind {
				t.Errorf("Kind = %v, want %v", got, tt.kind)
			}
			if got := tt.from.IsFromDoc(); got != tt.fromDoc {
				t.Errorf("IsFromDoc = %v, want %v", got, tt.fromDoc)
			}
			if got := tt.from.String(); got != tt.str {
				t.Errorf("String = %q, want %q", got, tt.str)
			}
			if _, ok := tt.from.FileID(); ok != tt.fromDoc {
				t.Errorf("FileID ok = %v, want %v", ok, tt.fromDoc)
			}
		})
	}
}

type registrarType struct {
	HookBase
	Name string `live:"name"`
}

var registrarCalls int

func (r *registrarType) LiveRegister(cx *Cx) { registrarCalls++ }

func (r *registrarType) Apply(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) int {
	return ApplyStruct(cx, r, from, index, nodes)
}

func TestRegisterFactory(t *testing.T) {
	registrarCalls = 0
	cx, _ := newTestCx()

	lt := Register[registrarType](cx)
	if again := Register[registrarType](cx); again != lt {
		t.Errorf("second Register = %v, want %v", again, lt)
	}
	if registrarCalls != 1 {
		t.Errorf("LiveRegister ran %d times, want 1", registrarCalls)
	}
	Register[label](cx)

	if got, ok := cx.TypeByName(livenode.ID("registrarType")); !ok || got != lt {
		t.Errorf("TypeByName = %v, %v", got, ok)
	}
	if n := len(cx.RegisteredTypes()); n != 2 {
		t.Errorf("RegisteredTypes has %d entries, want 2", n)
	}

	obj, ok := cx.NewComponentByName(livenode.ID("label"))
	if !ok {
		t.Fatal("label factory missing")
	}
	l, ok := obj.(*label)
	if !ok {
		t.Fatalf("component is %T", obj)
	}
	if l.Width != 100 || l.news != 1 {
		t.Errorf("label = %+v, want constructed like New", l)
	}

	if _, ok := cx.NewComponentByName(livenode.ID("button")); ok {
		t.Error("unregistered name constructed a component")
	}
	if _, ok := cx.NewComponent(TypeOf[panel]()); ok {
		t.Error("unregistered type constructed a component")
	}
}

func TestNewComponentFromPtr(t *testing.T) {
	cx, _ := newTestCx()
	registerDoc(t, cx)
	lt := Register[label](cx)
	ptr := mustLookup(t, cx, "title")

	obj, ok := cx.NewComponentFromPtr(lt, ptr)
	if !ok {
		t.Fatal("NewComponentFromPtr failed")
	}
	l, ok := Cast[label](Erase(obj))
	if !ok || l.Text != "hello" {
		t.Errorf("Cast = %+v, %v", l, ok)
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	cx, _ := newTestCx(WithMetrics(m))

	l := New[label](cx)
	NewApply[label](cx, FromNew, 0, livenode.Build().Object(livenode.EmptyID).Int(livenode.ID("bogus"), 1).End().Nodes())
	ApplyOver(cx, l, livenode.Build().Object(livenode.EmptyID).End().Nodes())

	counters := []struct {
		name string
		c    prometheus.Collector
	}{
		{"constructs new", m.constructs.WithLabelValues("new")},
		{"constructs new_apply", m.constructs.WithLabelValues("new_apply")},
		{"applies new", m.applies.WithLabelValues("new")},
		{"applies apply_over", m.applies.WithLabelValues("apply_over")},
		{"diagnostics no_matching_field", m.diagnostics.WithLabelValues("no_matching_field")},
	}
	for _, c := range counters {
		if got := testutil.ToFloat64(c.c); got != 1 {
			t.Errorf("%s = %v, want 1", c.name, got)
		}
	}

	if _, err := NewMetrics(reg); err == nil {
		t.Error("collectors should register once per registry")
	}
}

func TestNilMetricsRecordNothing(t *testing.T) {
	var m *Metrics
	m.observeApply(FromNew)
	m.observeConstruct("new")
	m.observeDiagnostic(DiagValueMismatch)
}
