package animation_test

import (
	"fmt"
	"time"

	"github.com/hardik-satasiya/makepad/pkg/animation"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

// This example drives a transition from frame times.
func ExampleTransition() {
	clk := &fixedClock{now: time.Unix(0, 0)}
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	tr := animation.NewTransition(400*time.Millisecond, nil)
	tr.OnStatus(func(status animation.Status) {
		fmt.Println("status:", status)
	})

	tr.Start()
	for _, ms := range []int{100, 200, 400} {
		tr.Tick(clk.now.Add(time.Duration(ms) * time.Millisecond))
		fmt.Printf("value: %.2f\n", tr.Value())
	}

	// Output:
	// status: running
	// value: 0.25
	// value: 0.50
	// status: done
	// value: 1.00
}

// This example interpolates colors with a tween.
func ExampleTween() {
	opacity := animation.Tween[float64]{Begin: 0, End: 1, Lerp: animation.LerpFloat64}
	fade := animation.Tween[uint32]{Begin: 0xff000000, End: 0xffffffff, Lerp: animation.LerpColor}

	fmt.Printf("opacity at 0.5: %.1f\n", opacity.Evaluate(0.5))
	fmt.Printf("color at 0.5: %#08x\n", fade.Evaluate(0.5))

	// Output:
	// opacity at 0.5: 0.5
	// color at 0.5: 0xff808080
}

// This example shows how to create a custom tween with a Lerp function.
func ExampleTween_customType() {
	type Point struct {
		X, Y float64
	}

	pointTween := &animation.Tween[Point]{
		Begin: Point{0, 0},
		End:   Point{100, 200},
		Lerp: func(a, b Point, t float64) Point {
			return Point{
				X: animation.LerpFloat64(a.X, b.X, t),
				Y: animation.LerpFloat64(a.Y, b.Y, t),
			}
		},
	}

	midpoint := pointTween.Evaluate(0.5)
	fmt.Printf("Midpoint: (%.0f, %.0f)\n", midpoint.X, midpoint.Y)

	// Output:
	// Midpoint: (50, 100)
}

// This example resolves a curve by the name a document uses.
func ExampleCurveByName() {
	curve, ok := animation.CurveByName("ease-in-out")
	fmt.Println(ok)
	fmt.Printf("Progress 0.0 -> %.2f\n", curve(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", curve(0.5))
	fmt.Printf("Progress 0.8 -> %.2f\n", curve(0.8))
	fmt.Printf("Progress 1.0 -> %.2f\n", curve(1.0))

	// Output:
	// true
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.50
	// Progress 0.8 -> 0.92
	// Progress 1.0 -> 1.00
}
