package animation

import (
	"fmt"
	"time"
)

// Status is the phase of a Transition.
type Status int

const (
	// StatusIdle is a transition that was never started or was stopped.
	StatusIdle Status = iota
	// StatusRunning is a started transition that has not reached its end.
	StatusRunning
	// StatusDone is a transition that reached progress 1.
	StatusDone
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusDone:
		return "done"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Transition eases a value from 0 to 1 over Duration.
//
// A transition has no timer. Start records the start time from the package
// clock (see [SetClock]) and the owner calls Tick with each frame time,
// usually from a next-frame event.
type Transition struct {
	// Duration is the length of the transition. Zero or less finishes on
	// the first tick.
	Duration time.Duration
	// Curve eases linear progress. Nil means linear.
	Curve func(float64) float64

	value    float64
	status   Status
	start    time.Time
	watchers map[int]func(Status)
	nextID   int
}

// NewTransition returns an idle transition.
func NewTransition(d time.Duration, curve func(float64) float64) *Transition {
	return &Transition{Duration: d, Curve: curve}
}

// Start restarts the transition from 0 at the current clock time.
func (tr *Transition) Start() {
	tr.value = 0
	tr.start = Now()
	tr.setStatus(StatusRunning)
}

// Tick advances the transition to now and reports whether it still runs.
// A transition that is not running ignores ticks.
func (tr *Transition) Tick(now time.Time) bool {
	if tr.status != StatusRunning {
		return false
	}
	progress := 1.0
	if tr.Duration > 0 {
		progress = min(max(float64(now.Sub(tr.start))/float64(tr.Duration), 0), 1)
	}
	tr.value = progress
	if tr.Curve != nil {
		tr.value = tr.Curve(progress)
	}
	if progress < 1 {
		return true
	}
	tr.value = 1
	tr.setStatus(StatusDone)
	return false
}

// Value returns the eased progress of the last tick.
func (tr *Transition) Value() float64 {
	return tr.value
}

// Stop freezes the transition at its current value.
func (tr *Transition) Stop() {
	if tr.status == StatusRunning {
		tr.setStatus(StatusIdle)
	}
}

// Status returns the current phase.
func (tr *Transition) Status() Status {
	return tr.status
}

// IsRunning reports whether Tick still has work to do.
func (tr *Transition) IsRunning() bool {
	return tr.status == StatusRunning
}

// OnStatus registers fn to run on every status change and returns a function
// that removes it.
func (tr *Transition) OnStatus(fn func(Status)) func() {
	if tr.watchers == nil {
		tr.watchers = make(map[int]func(Status))
	}
	id := tr.nextID
	tr.nextID++
	tr.watchers[id] = fn
	return func() { delete(tr.watchers, id) }
}

func (tr *Transition) setStatus(s Status) {
	if tr.status == s {
		return
	}
	tr.status = s
	for _, fn := range tr.watchers {
		fn(s)
	}
}
