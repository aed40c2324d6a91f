package widgets

import "github.com/hardik-satasiya/makepad/pkg/live"

// Register makes every component in this package constructible by name
// through cx.
func Register(cx *live.Cx) {
	live.Register[Label](cx)
	live.Register[Button](cx)
	live.Register[View](cx)
}
