// Package drivers contains the paddle drivers available to a match.
// Import it for side effects to register them.
package drivers

import (
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Human reads the keyboard actions mapped to its side.
type Human struct{}

// ID returns "human".
func (Human) ID() string { return "human" }

// Title returns the display name.
func (Human) Title() string { return "Player" }

// Axis folds Up/Down into the axis sample.
func (Human) Axis(in core.InputFrame, _ registry.View) float64 {
	return in.Axis()
}

func init() {
	registry.Register("human", func(registry.Options) registry.Driver {
		return Human{}
	})
}
