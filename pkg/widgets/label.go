package widgets

import (
	"fmt"

	"github.com/hardik-satasiya/makepad/pkg/live"
	"github.com/hardik-satasiya/makepad/pkg/livenode"
)

// Label displays a line of text.
//
// A document may write a label as a bare string, which sets its text:
//
//	title: Hello
type Label struct {
	live.HookBase
	// Text is the displayed string.
	Text string `live:"text"`
	// Color is the packed ARGB text color. Defaults to white.
	Color uint32 `live:"color"`
	// FontSize defaults to 16.
	FontSize float64 `live:"font_size"`
}

// Init sets the defaults.
func (l *Label) Init(cx *live.Cx) {
	l.Color = 0xffffffff
	l.FontSize = 16
}

func (l *Label) Apply(cx *live.Cx, from live.ApplyFrom, index int, nodes livenode.Nodes) int {
	return live.ApplyStruct(cx, l, from, index, nodes)
}

// ApplyValue accepts a bare string as the label text.
func (l *Label) ApplyValue(cx *live.Cx, from live.ApplyFrom, index int, nodes livenode.Nodes) int {
	v := nodes[index].Value
	switch v.Kind {
	case livenode.KindStr:
		l.Text = v.Str
	case livenode.KindID:
		l.Text = v.ID.String()
	default:
		cx.ApplyErrorValueMismatch(from, index, nodes, fmt.Errorf("label wants a string, got %s", v.Kind))
	}
	return index + 1
}

// ToLiveValue reports the text.
func (l *Label) ToLiveValue() livenode.Value {
	return livenode.Str(l.Text)
}

func (l *Label) ToFrameComponent() (live.FrameComponent, bool) {
	return l, true
}

// HandleEventDyn ignores events.
func (l *Label) HandleEventDyn(cx *live.Cx, ev *live.Event) live.Action {
	return live.NoAction
}

func (l *Label) DrawDyn(cx *live.Cx) {
	cx.PushDraw(live.DrawOp{
		Component: "Label",
		Attrs: map[string]any{
			"text":      l.Text,
			"color":     l.Color,
			"font_size": l.FontSize,
		},
	})
}
