package animation

import (
	"math"
	"strings"
)

// Curve maps linear progress in [0, 1] to eased progress. Curves return 0 at
// 0 and 1 at 1.
type Curve = func(float64) float64

// LinearCurve returns t unchanged.
func LinearCurve(t float64) float64 {
	return t
}

// Named curves. The bezier ones match their CSS namesakes.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn    = CubicBezier(0.42, 0, 1, 1)
	EaseOut   = CubicBezier(0, 0, 0.58, 1)
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)

	InQuad    Curve = func(t float64) float64 { return t * t }
	OutQuad   Curve = func(t float64) float64 { return t * (2 - t) }
	InOutQuad Curve = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}
)

var curvesByName = map[string]Curve{
	"linear":      LinearCurve,
	"ease":        Ease,
	"ease_in":     EaseIn,
	"ease_out":    EaseOut,
	"ease_in_out": EaseInOut,
	"in_quad":     InQuad,
	"out_quad":    OutQuad,
	"in_out_quad": InOutQuad,
}

// CurveByName resolves a curve name as written in documents, such as
// "ease_in_out". Dashes are accepted in place of underscores.
func CurveByName(name string) (Curve, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	c, ok := curvesByName[key]
	return c, ok
}

// CubicBezier returns the CSS cubic-bezier() curve through (0,0), the control
// points (x1,y1) and (x2,y2), and (1,1). x1 and x2 are clamped to [0, 1] so
// the curve stays a function of t.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	b := bezier{x1: clampUnit(x1), y1: y1, x2: clampUnit(x2), y2: y2}
	return b.at
}

type bezier struct{ x1, y1, x2, y2 float64 }

func (b bezier) at(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return bezierComponent(b.y1, b.y2, b.solve(t))
}

// solve finds the curve parameter whose x equals x. Newton steps usually
// converge; bisection takes over when the slope flattens.
func (b bezier) solve(x float64) float64 {
	const eps = 1e-7
	u := x
	for range 8 {
		dx := bezierComponent(b.x1, b.x2, u) - x
		if math.Abs(dx) < eps {
			return u
		}
		slope := bezierSlope(b.x1, b.x2, u)
		if math.Abs(slope) < eps {
			break
		}
		u = clampUnit(u - dx/slope)
	}

	lo, hi := 0.0, 1.0
	u = x
	for range 32 {
		dx := bezierComponent(b.x1, b.x2, u) - x
		if math.Abs(dx) < eps {
			break
		}
		if dx > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) / 2
	}
	return u
}

// bezierComponent evaluates one coordinate of the curve with control values
// p1 and p2 at parameter u.
func bezierComponent(p1, p2, u float64) float64 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}

func bezierSlope(p1, p2, u float64) float64 {
	v := 1 - u
	return 3*v*v*p1 + 6*v*u*(p2-p1) + 3*u*u*(1-p2)
}

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}
