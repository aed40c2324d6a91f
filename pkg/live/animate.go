package live

import (
	"github.com/hardik-satasiya/makepad/pkg/livenode"
	"github.com/hardik-satasiya/makepad/pkg/registry"
)

// Animate is implemented by components that route UI state into an animator.
type Animate interface {
	InitAnimator(cx *Cx)
	ApplyAnimator(cx *Cx)
	// CutTo moves track to state immediately.
	CutTo(cx *Cx, track livenode.LiveID, state registry.Ptr)
	// AnimateTo eases track toward state.
	AnimateTo(cx *Cx, track livenode.LiveID, state registry.Ptr)
	// AnimatorHandleEvent advances animation state and reports whether a
	// redraw is needed.
	AnimatorHandleEvent(cx *Cx, ev *Event) bool
}

// ToggleAnimator moves track to state1 or state2 depending on isState1,
// easing when shouldAnimate is set and cutting otherwise.
func ToggleAnimator(cx *Cx, a Animate, isState1, shouldAnimate bool, track livenode.LiveID, state1, state2 registry.Ptr) {
	state := state2
	if isState1 {
		state = state1
	}
	if shouldAnimate {
		a.AnimateTo(cx, track, state)
	} else {
		a.CutTo(cx, track, state)
	}
}
