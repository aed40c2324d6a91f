// Package animation animates live components between states described in
// their documents.
//
// # Core Components
//
//   - [Transition]: eases a value from 0.0 to 1.0 over a duration. It is
//     driven by [Transition.Tick] from the frame events the component
//     receives.
//
//   - [Tween]: interpolates between begin and end values of any type.
//
//   - Curves: easing functions such as [EaseIn], [EaseOut] and [EaseInOut].
//     [CurveByName] resolves the names documents use.
//
//   - [Animator]: the state side of live.Animate. It reads tracks and states
//     from the component's document and applies them with live.FromAnimate.
//
// # Documents
//
// An animator block groups states by track. Each track names its default
// state; each state may give a duration in seconds, an ease and the values to
// apply:
//
//	button:
//	  animator:
//	    hover:
//	      default: !id off
//	      off:
//	        duration: 0.1
//	        apply: {scale: 1.0}
//	      on:
//	        duration: 0.2
//	        ease: ease_out
//	        apply: {scale: 1.1, color: "#4682b4"}
//
// Numbers and colors are interpolated. Other values are applied when the
// animation starts.
package animation
