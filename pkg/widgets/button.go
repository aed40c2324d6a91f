package widgets

import (
	"github.com/hardik-satasiya/makepad/pkg/animation"
	"github.com/hardik-satasiya/makepad/pkg/live"
	"github.com/hardik-satasiya/makepad/pkg/livenode"
	"github.com/hardik-satasiya/makepad/pkg/registry"
)

// Animator tracks and states Button reads from its document.
var (
	TrackHover = livenode.ID("hover")
	TrackDown  = livenode.ID("down")
	StateOn    = livenode.ID("on")
	StateOff   = livenode.ID("off")
)

// ButtonAction is emitted by Button.HandleEventDyn.
type ButtonAction int

const (
	// ButtonNone is the default when an action is not a ButtonAction.
	ButtonNone ButtonAction = iota
	// ButtonPressed is emitted on pointer down.
	ButtonPressed
	// ButtonClicked is emitted on pointer up after a press.
	ButtonClicked
)

func (a ButtonAction) String() string {
	switch a {
	case ButtonPressed:
		return "pressed"
	case ButtonClicked:
		return "clicked"
	}
	return "none"
}

// Button is a clickable component with hover and press animations.
//
// The hover and down tracks of its animator move between their on and off
// states as the pointer enters, leaves, presses and releases the button.
// Both tracks are optional.
type Button struct {
	live.HookBase
	Text     string  `live:"text"`
	Color    uint32  `live:"color"`
	Scale    float64 `live:"scale"`
	Disabled bool    `live:"disabled"`
	// Icon is an optional label drawn after the text.
	Icon     live.Optional[Label, *Label] `live:"icon"`
	Animator animation.Animator           `live:"animator,keep"`

	hovered bool
	pressed bool
}

// Init sets the defaults.
func (b *Button) Init(cx *live.Cx) {
	b.Color = 0xff404040
	b.Scale = 1
}

func (b *Button) Apply(cx *live.Cx, from live.ApplyFrom, index int, nodes livenode.Nodes) int {
	return live.ApplyStruct(cx, b, from, index, nodes)
}

// AfterApply starts the animator on first construction from a document and
// re-applies its states after the document changes.
func (b *Button) AfterApply(cx *live.Cx, from live.ApplyFrom, index int, nodes livenode.Nodes) {
	switch from.Kind() {
	case live.KindNewFromDoc:
		b.InitAnimator(cx)
	case live.KindUpdateFromDoc:
		b.ApplyAnimator(cx)
	}
}

func (b *Button) ToFrameComponent() (live.FrameComponent, bool) {
	return b, true
}

// InitAnimator cuts every track to its default state.
func (b *Button) InitAnimator(cx *live.Cx) {
	b.Animator.Init(cx, b)
}

// ApplyAnimator re-applies the current animator states.
func (b *Button) ApplyAnimator(cx *live.Cx) {
	b.Animator.Reapply(cx, b)
}

func (b *Button) CutTo(cx *live.Cx, track livenode.LiveID, state registry.Ptr) {
	b.Animator.CutTo(cx, b, track, state)
}

func (b *Button) AnimateTo(cx *live.Cx, track livenode.LiveID, state registry.Ptr) {
	b.Animator.AnimateTo(cx, b, track, state)
}

func (b *Button) AnimatorHandleEvent(cx *live.Cx, ev *live.Event) bool {
	return b.Animator.HandleEvent(cx, b, ev)
}

// toggle moves track to its on or off state when the document defines both.
func (b *Button) toggle(cx *live.Cx, track livenode.LiveID, on, animate bool) {
	onPtr, ok := b.Animator.State(cx, track, StateOn)
	if !ok {
		return
	}
	offPtr, ok := b.Animator.State(cx, track, StateOff)
	if !ok {
		return
	}
	live.ToggleAnimator(cx, b, on, animate, track, onPtr, offPtr)
}

// IsHovered reports whether the pointer is over the button.
func (b *Button) IsHovered() bool {
	return b.hovered
}

// HandleEventDyn animates hover and press and emits ButtonAction values.
// Disabled buttons ignore pointer events.
func (b *Button) HandleEventDyn(cx *live.Cx, ev *live.Event) live.Action {
	if ev.Kind == live.EventNextFrame {
		b.AnimatorHandleEvent(cx, ev)
		return live.NoAction
	}
	if b.Disabled || ev.Handled {
		return live.NoAction
	}
	switch ev.Kind {
	case live.EventPointerHoverIn:
		b.hovered = true
		b.toggle(cx, TrackHover, true, true)
	case live.EventPointerHoverOut:
		b.hovered = false
		b.toggle(cx, TrackHover, false, true)
	case live.EventPointerDown:
		b.pressed = true
		b.toggle(cx, TrackDown, true, false)
		ev.Handled = true
		return live.NewAction(ButtonPressed)
	case live.EventPointerUp:
		if !b.pressed {
			return live.NoAction
		}
		b.pressed = false
		b.toggle(cx, TrackDown, false, true)
		ev.Handled = true
		return live.NewAction(ButtonClicked)
	}
	return live.NoAction
}

func (b *Button) DrawDyn(cx *live.Cx) {
	cx.PushDraw(live.DrawOp{
		Component: "Button",
		Attrs: map[string]any{
			"text":     b.Text,
			"color":    b.Color,
			"scale":    b.Scale,
			"disabled": b.Disabled,
		},
	})
	if fc, ok := b.Icon.ToFrameComponent(); ok {
		fc.DrawDyn(cx)
	}
}
