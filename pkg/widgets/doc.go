// Package widgets provides live components that can be built from documents.
//
// Call [Register] once per context so documents can name the components:
//
//	cx := live.NewCx(live.WithRegistry(reg))
//	widgets.Register(cx)
//	root := live.NewFromPtr[widgets.View](cx, ptr)
//
// A [View] holds a list of child components. Each list item names the type
// of the child it creates:
//
//	main:
//	  color: "#202020"
//	  children:
//	    - Label: {text: Hello}
//	    - Button:
//	        text: OK
//	        animator:
//	          hover:
//	            default: !id off
//	            off: {apply: {color: "#404040"}}
//	            on: {duration: 0.15, apply: {color: "#4682b4"}}
//
// Every component here is a live.FrameComponent: it draws into the context
// frame and handles pointer and frame events. [Button] animates its hover
// state and emits a [ButtonAction] when clicked.
package widgets
