package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMapper translates Bubble Tea key messages to match actions.
// With two keyboard players the left paddle uses w/s and the right paddle
// the arrow keys; a single player may use either.
type KeyMapper struct {
	twoPlayers bool
}

// NewKeyMapper creates a key mapper. twoPlayers splits the keyboard.
func NewKeyMapper(twoPlayers bool) *KeyMapper {
	return &KeyMapper{twoPlayers: twoPlayers}
}

// MapKey translates a key message to a side and action.
// Returns ActionNone for unbound keys and isQuit for quit requests.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (side core.Side, action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.SideNone, core.ActionQuit, true
	}

	arrowSide := core.SideLeft
	if km.twoPlayers {
		arrowSide = core.SideRight
	}

	switch key {
	case "w":
		return core.SideLeft, core.ActionUp, false
	case "s":
		return core.SideLeft, core.ActionDown, false
	case "up":
		return arrowSide, core.ActionUp, false
	case "down":
		return arrowSide, core.ActionDown, false
	case "p", " ":
		return core.SideLeft, core.ActionPause, false
	case "r":
		return core.SideLeft, core.ActionRestart, false
	case "b", "esc":
		return core.SideNone, core.ActionBack, false
	}

	return core.SideNone, core.ActionNone, false
}

// MapKeyToMultiFrame updates a multi-input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	side, action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && side != core.SideNone {
		frame.Set(side, action)
	}
	return isQuit
}

// heldInput keeps movement keys active for a few ticks after each press.
// Terminals only report key presses and auto-repeats, never releases.
type heldInput struct {
	hold      int
	remaining map[core.Side]map[core.Action]int
}

func newHeldInput(hold int) *heldInput {
	return &heldInput{
		hold:      max(hold, 1),
		remaining: make(map[core.Side]map[core.Action]int),
	}
}

// absorb takes movement actions out of pressed and starts holding them.
func (h *heldInput) absorb(pressed core.MultiInputFrame) {
	for side, frame := range pressed.BySide {
		for _, a := range []core.Action{core.ActionUp, core.ActionDown} {
			if !frame.Has(a) {
				continue
			}
			if h.remaining[side] == nil {
				h.remaining[side] = make(map[core.Action]int)
			}
			h.remaining[side][a] = h.hold
			// A fresh press cancels the opposite direction.
			if a == core.ActionUp {
				delete(h.remaining[side], core.ActionDown)
			} else {
				delete(h.remaining[side], core.ActionUp)
			}
		}
	}
}

// apply adds the held actions to frame and counts them down.
func (h *heldInput) apply(frame *core.MultiInputFrame) {
	for side, actions := range h.remaining {
		for a, n := range actions {
			frame.Set(side, a)
			if n <= 1 {
				delete(actions, a)
			} else {
				actions[a] = n - 1
			}
		}
	}
}
