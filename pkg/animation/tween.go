package animation

import "math"

// Tween interpolates between Begin and End.
type Tween[T any] struct {
	Begin T
	End   T
	// Lerp interpolates between a and b at progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t. A tween without Lerp jumps
// straight to End.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// At evaluates the tween at the transition's current value.
func (tw *Tween[T]) At(tr *Transition) T {
	return tw.Evaluate(tr.Value())
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpInt64 interpolates between two integers, rounding to the nearest.
func LerpInt64(a, b int64, t float64) int64 {
	return int64(math.Round(LerpFloat64(float64(a), float64(b), t)))
}

// LerpColor interpolates each channel of two packed ARGB colors.
func LerpColor(a, b uint32, t float64) uint32 {
	channel := func(shift uint) uint32 {
		ca := float64((a >> shift) & 0xff)
		cb := float64((b >> shift) & 0xff)
		return uint32(math.Round(LerpFloat64(ca, cb, t))) << shift
	}
	return channel(24) | channel(16) | channel(8) | channel(0)
}
