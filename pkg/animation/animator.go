package animation

import (
	"slices"
	"time"

	"github.com/hardik-satasiya/makepad/pkg/live"
	"github.com/hardik-satasiya/makepad/pkg/livenode"
	"github.com/hardik-satasiya/makepad/pkg/registry"
)

// DefaultDuration is used for states that do not give a duration.
const DefaultDuration = 200 * time.Millisecond

var (
	idDefault  = livenode.ID("default")
	idDuration = livenode.ID("duration")
	idEase     = livenode.ID("ease")
	idApply    = livenode.ID("apply")
)

// Animator moves the fields of a live component between the states listed in
// its animator block. Embed it in a component as a field tagged with the keep
// option and forward the live.Animate methods to it:
//
//	type Button struct {
//	    live.HookBase
//	    Scale    float64            `live:"scale"`
//	    Animator animation.Animator `live:"animator,keep"`
//	}
//
//	func (b *Button) CutTo(cx *live.Cx, track livenode.LiveID, state registry.Ptr) {
//	    b.Animator.CutTo(cx, b, track, state)
//	}
type Animator struct {
	live.HookBase

	ptr    registry.Ptr
	loaded bool
	tracks map[livenode.LiveID]*track
}

type track struct {
	state      registry.Ptr
	stateID    livenode.LiveID
	transition *Transition
	fields     []animatedField
}

type animatedField struct {
	id    livenode.LiveID
	tween Tween[livenode.Value]
}

// Apply remembers where the animator block lives in its document. The block
// itself is not applied anywhere; states are read from it on demand.
func (a *Animator) Apply(cx *live.Cx, from live.ApplyFrom, index int, nodes livenode.Nodes) int {
	if file, ok := from.FileID(); ok && index < len(nodes) && nodes[index].Value.IsOpen() {
		a.ptr = registry.Ptr{File: file, Index: index}
		a.loaded = true
	}
	return nodes.SkipNode(index)
}

// IsLoaded reports whether the animator was applied from a document.
func (a *Animator) IsLoaded() bool {
	return a.loaded
}

func (a *Animator) block(cx *live.Cx) (*registry.Document, bool) {
	if !a.loaded {
		return nil, false
	}
	return cx.Registry().PtrToDoc(a.ptr)
}

// Tracks returns the track identifiers of the animator block in document order.
func (a *Animator) Tracks(cx *live.Cx) []livenode.LiveID {
	doc, ok := a.block(cx)
	if !ok {
		return nil
	}
	var out []livenode.LiveID
	for _, c := range doc.Nodes.Children(a.ptr.Index) {
		if doc.Nodes[c].Value.Kind == livenode.KindObject {
			out = append(out, doc.Nodes[c].ID)
		}
	}
	return out
}

// State resolves the state node of a track.
func (a *Animator) State(cx *live.Cx, trackID, state livenode.LiveID) (registry.Ptr, bool) {
	doc, ok := a.block(cx)
	if !ok {
		return registry.Ptr{}, false
	}
	ti, ok := doc.Nodes.ChildByName(a.ptr.Index, trackID)
	if !ok {
		return registry.Ptr{}, false
	}
	si, ok := doc.Nodes.ChildByName(ti, state)
	if !ok || doc.Nodes[si].Value.Kind != livenode.KindObject {
		return registry.Ptr{}, false
	}
	return registry.Ptr{File: a.ptr.File, Index: si}, true
}

// DefaultState resolves the state a track's default field names.
func (a *Animator) DefaultState(cx *live.Cx, trackID livenode.LiveID) (registry.Ptr, bool) {
	doc, ok := a.block(cx)
	if !ok {
		return registry.Ptr{}, false
	}
	ti, ok := doc.Nodes.ChildByName(a.ptr.Index, trackID)
	if !ok {
		return registry.Ptr{}, false
	}
	di, ok := doc.Nodes.ChildByName(ti, idDefault)
	if !ok {
		return registry.Ptr{}, false
	}
	v := doc.Nodes[di].Value
	switch v.Kind {
	case livenode.KindID:
		return a.State(cx, trackID, v.ID)
	case livenode.KindStr:
		return a.State(cx, trackID, livenode.ID(v.Str))
	}
	return registry.Ptr{}, false
}

// CurrentState returns the state a track was last moved to.
func (a *Animator) CurrentState(trackID livenode.LiveID) (registry.Ptr, bool) {
	tr, ok := a.tracks[trackID]
	if !ok {
		return registry.Ptr{}, false
	}
	return tr.state, true
}

// IsInState reports whether a track was last moved to the state named state.
func (a *Animator) IsInState(trackID, state livenode.LiveID) bool {
	tr, ok := a.tracks[trackID]
	return ok && tr.stateID == state
}

// Init cuts every track to its default state.
func (a *Animator) Init(cx *live.Cx, target live.Applier) {
	for _, trackID := range a.Tracks(cx) {
		if state, ok := a.DefaultState(cx, trackID); ok {
			a.CutTo(cx, target, trackID, state)
		}
	}
}

// Reapply cuts every track to the state it is in, picking up document edits.
// Tracks never moved go to their default state.
func (a *Animator) Reapply(cx *live.Cx, target live.Applier) {
	for _, trackID := range a.Tracks(cx) {
		tr, ok := a.tracks[trackID]
		if !ok {
			if state, ok := a.DefaultState(cx, trackID); ok {
				a.CutTo(cx, target, trackID, state)
			}
			continue
		}
		if state, ok := a.State(cx, trackID, tr.stateID); ok {
			a.CutTo(cx, target, trackID, state)
		}
	}
}

func (a *Animator) track(trackID livenode.LiveID) *track {
	if a.tracks == nil {
		a.tracks = make(map[livenode.LiveID]*track)
	}
	tr, ok := a.tracks[trackID]
	if !ok {
		tr = &track{}
		a.tracks[trackID] = tr
	}
	return tr
}

// stateValues returns the children of the state's apply object.
func stateValues(doc *registry.Document, state registry.Ptr) []int {
	ai, ok := doc.Nodes.ChildByName(state.Index, idApply)
	if !ok || doc.Nodes[ai].Value.Kind != livenode.KindObject {
		return nil
	}
	return doc.Nodes.Children(ai)
}

// overlay starts an animate stream for trackID.
func overlay(trackID livenode.LiveID) *livenode.Builder {
	return livenode.Build().
		Object(livenode.EmptyID).
		IDRef(livenode.IDFrom, trackID)
}

// CutTo moves a track to state at once, applying the state's values to target.
func (a *Animator) CutTo(cx *live.Cx, target live.Applier, trackID livenode.LiveID, state registry.Ptr) {
	doc, ok := cx.Registry().PtrToDoc(state)
	if !ok {
		cx.Logger().Warn("animator state not found", "track", trackID.String(), "state", state.String())
		return
	}
	tr := a.track(trackID)
	if tr.transition != nil {
		tr.transition.Stop()
	}
	tr.state = state
	tr.stateID = doc.Nodes[state.Index].ID
	tr.fields = nil

	b := overlay(trackID)
	for _, c := range stateValues(doc, state) {
		b.Append(doc.Nodes.Subtree(c))
	}
	target.Apply(cx, live.FromAnimate, 0, b.Nodes())
}

// AnimateTo eases a track from the target's current values to state. The
// duration and curve come from the state's duration and ease fields. Moving
// a track to the state it is already in or heading to does nothing.
func (a *Animator) AnimateTo(cx *live.Cx, target live.Applier, trackID livenode.LiveID, state registry.Ptr) {
	doc, ok := cx.Registry().PtrToDoc(state)
	if !ok {
		cx.Logger().Warn("animator state not found", "track", trackID.String(), "state", state.String())
		return
	}
	tr := a.track(trackID)
	stateID := doc.Nodes[state.Index].ID
	if tr.stateID == stateID && tr.transition != nil {
		return
	}

	tr.state = state
	tr.stateID = stateID
	tr.fields = tr.fields[:0]
	snap := overlay(trackID)
	snapped := false
	for _, c := range stateValues(doc, state) {
		n := doc.Nodes[c]
		if from, ok := live.ReadField(target, n.ID); ok && interpolable(from, n.Value) {
			tr.fields = append(tr.fields, animatedField{
				id:    n.ID,
				tween: Tween[livenode.Value]{Begin: from, End: n.Value, Lerp: lerpValue},
			})
			continue
		}
		snap.Append(doc.Nodes.Subtree(c))
		snapped = true
	}
	if snapped {
		target.Apply(cx, live.FromAnimate, 0, snap.Nodes())
	}

	tr.transition = NewTransition(stateDuration(doc, state), stateCurve(doc, state))
	logger := cx.Logger()
	tr.transition.OnStatus(func(s Status) {
		if s == StatusDone {
			logger.Debug("animator track settled", "track", trackID.String(), "state", stateID.String())
		}
	})
	tr.transition.Start()
}

func stateDuration(doc *registry.Document, state registry.Ptr) time.Duration {
	i, ok := doc.Nodes.ChildByName(state.Index, idDuration)
	if !ok {
		return DefaultDuration
	}
	secs, ok := doc.Nodes[i].Value.AsFloat()
	if !ok || secs < 0 {
		return DefaultDuration
	}
	return time.Duration(secs * float64(time.Second))
}

// stateCurve reads a state's ease: a curve name, or a list of the four
// cubic-bezier control values.
func stateCurve(doc *registry.Document, state registry.Ptr) Curve {
	i, ok := doc.Nodes.ChildByName(state.Index, idEase)
	if !ok {
		return LinearCurve
	}
	var name string
	switch v := doc.Nodes[i].Value; v.Kind {
	case livenode.KindStr:
		name = v.Str
	case livenode.KindID:
		name = v.ID.String()
	case livenode.KindArray:
		var p []float64
		for _, c := range doc.Nodes.Children(i) {
			f, ok := doc.Nodes[c].Value.AsFloat()
			if !ok {
				return LinearCurve
			}
			p = append(p, f)
		}
		if len(p) == 4 {
			return CubicBezier(p[0], p[1], p[2], p[3])
		}
	}
	if c, ok := CurveByName(name); ok {
		return c
	}
	return LinearCurve
}

func interpolable(from, to livenode.Value) bool {
	switch {
	case from.IsNumber() && to.IsNumber():
		return true
	case from.Kind == livenode.KindColor && to.Kind == livenode.KindColor:
		return true
	}
	return false
}

func lerpValue(from, to livenode.Value, t float64) livenode.Value {
	switch {
	case from.Kind == livenode.KindColor:
		return livenode.Color(LerpColor(from.Color, to.Color, t))
	case from.Kind == livenode.KindInt64 && to.Kind == livenode.KindInt64:
		return livenode.Int(LerpInt64(from.Int, to.Int, t))
	}
	a, _ := from.AsFloat()
	b, _ := to.AsFloat()
	return livenode.Float(LerpFloat64(a, b, t))
}

// IsAnimating reports whether any track is still moving.
func (a *Animator) IsAnimating() bool {
	for _, tr := range a.tracks {
		if tr.transition != nil && tr.transition.IsRunning() {
			return true
		}
	}
	return false
}

// HandleEvent advances running tracks on a next-frame event, applying the
// interpolated values to target. It reports whether target changed and needs
// a redraw.
func (a *Animator) HandleEvent(cx *live.Cx, target live.Applier, ev *live.Event) bool {
	if ev.Kind != live.EventNextFrame {
		return false
	}
	now := ev.Time
	if now.IsZero() {
		now = Now()
	}

	ids := make([]livenode.LiveID, 0, len(a.tracks))
	for id := range a.tracks {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	redraw := false
	for _, id := range ids {
		tr := a.tracks[id]
		if tr.transition == nil || !tr.transition.IsRunning() {
			continue
		}
		tr.transition.Tick(now)
		if len(tr.fields) == 0 {
			continue
		}
		b := overlay(id)
		for _, f := range tr.fields {
			b.Value(f.id, f.tween.At(tr.transition))
		}
		target.Apply(cx, live.FromAnimate, 0, b.Nodes())
		redraw = true
	}
	return redraw
}

// LiveSnapshot reports the state of each track by name.
func (a *Animator) LiveSnapshot() any {
	out := make(map[string]any, len(a.tracks))
	for id, tr := range a.tracks {
		out[id.String()] = tr.stateID.String()
	}
	return out
}
