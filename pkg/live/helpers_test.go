package live

import (
	"github.com/hardik-satasiya/makepad/pkg/errors"
	"github.com/hardik-satasiya/makepad/pkg/livenode"
)

var (
	idText    = livenode.ID("text")
	idWidth   = livenode.ID("width")
	idVisible = livenode.ID("visible")
)

type recordingHandler struct {
	errs []*errors.LiveError
}

func (h *recordingHandler) HandleError(err *errors.LiveError)  { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError) {}

func newTestCx(opts ...Option) (*Cx, *recordingHandler) {
	h := &recordingHandler{}
	return NewCx(append([]Option{WithErrorHandler(h)}, opts...)...), h
}

// label is a leaf component with non-zero defaults.
type label struct {
	HookBase
	Text    string  `live:"text"`
	Width   float64 `live:"width"`
	Visible bool    `live:"visible"`

	news, befores, afters int
	lastFrom              ApplyFrom
}

func (l *label) Init(cx *Cx) {
	l.Width = 100
	l.Visible = true
}

func (l *label) AfterNew(cx *Cx) { l.news++ }

func (l *label) BeforeApply(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) {
	l.befores++
}

func (l *label) AfterApply(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) {
	l.afters++
	l.lastFrom = from
}

func (l *label) Apply(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) int {
	return ApplyStruct(cx, l, from, index, nodes)
}

type padding struct {
	Left float64 `live:"left"`
	Top  float64 `live:"top"`
}

// panel nests every kind of field ApplyStruct handles.
type panel struct {
	HookBase
	A       int                     `live:"a"`
	Title   *label                  `live:"title"`
	Footer  Optional[label, *label] `live:"footer"`
	Tags    []string                `live:"tags"`
	Items   []*label                `live:"items"`
	Padding padding                 `live:"padding"`
	hidden  int
}

func (p *panel) Apply(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) int {
	return ApplyStruct(cx, p, from, index, nodes)
}

// onlyA knows a single field.
type onlyA struct {
	HookBase
	A int `live:"a"`
}

func (o *onlyA) Apply(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) int {
	return ApplyStruct(cx, o, from, index, nodes)
}

// nestedRoot holds a struct field that itself holds a struct field.
type nestedRoot struct {
	HookBase
	Outer nestedOuter `live:"outer"`
	Y     int         `live:"y"`
	Z     int         `live:"z"`
}

func (r *nestedRoot) Apply(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) int {
	return ApplyStruct(cx, r, from, index, nodes)
}

type nestedOuter struct {
	HookBase
	Inner nestedInner `live:"inner"`
	X     int         `live:"x"`
}

func (o *nestedOuter) Apply(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) int {
	return ApplyStruct(cx, o, from, index, nodes)
}

type nestedInner struct {
	HookBase
	Q int `live:"q"`
}

func (n *nestedInner) Apply(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) int {
	return ApplyStruct(cx, n, from, index, nodes)
}

type clicked struct{ Count int }

// box is a frame component.
type box struct {
	HookBase
	Color uint32 `live:"color"`
}

func (b *box) Apply(cx *Cx, from ApplyFrom, index int, nodes livenode.Nodes) int {
	return ApplyStruct(cx, b, from, index, nodes)
}

func (b *box) ToFrameComponent() (FrameComponent, bool) { return b, true }

func (b *box) HandleEventDyn(cx *Cx, ev *Event) Action {
	if ev.Kind == EventPointerUp {
		ev.Handled = true
		return NewAction(clicked{Count: 1})
	}
	return NoAction
}

func (b *box) DrawDyn(cx *Cx) {
	cx.PushDraw(DrawOp{Component: "box", Attrs: map[string]any{"color": b.Color}})
}
