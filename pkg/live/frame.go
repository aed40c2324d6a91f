package live

import (
	"time"

	"github.com/hardik-satasiya/makepad/pkg/livenode"
)

// EventKind identifies an event delivered by the event loop.
type EventKind int

const (
	EventNone EventKind = iota
	// EventNextFrame advances animations.
	EventNextFrame
	EventPointerDown
	EventPointerUp
	EventPointerHoverIn
	EventPointerHoverOut
)

// Event is an input or timing event.
type Event struct {
	Kind EventKind
	Time time.Time
	X, Y float64
	// Handled is set by the component that consumed the event.
	Handled bool
}

// FrameComponent is the optional drawable, event-handling capability.
// Objects opt in through Hook.ToFrameComponent.
type FrameComponent interface {
	Applier
	HandleEventDyn(cx *Cx, ev *Event) Action
	DrawDyn(cx *Cx)
}

// ApplyDraw merges nodes into fc and draws it.
func ApplyDraw(cx *Cx, fc FrameComponent, nodes livenode.Nodes) {
	ApplyOver(cx, fc, nodes)
	fc.DrawDyn(cx)
}
