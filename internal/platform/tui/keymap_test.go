package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name       string
		twoPlayers bool
		msg        tea.KeyMsg
		side       core.Side
		action     core.Action
		quit       bool
	}{
		{"w moves left up", false, runeKey('w'), core.SideLeft, core.ActionUp, false},
		{"s moves left down", true, runeKey('s'), core.SideLeft, core.ActionDown, false},
		{"arrow solo", false, tea.KeyMsg{Type: tea.KeyUp}, core.SideLeft, core.ActionUp, false},
		{"arrow versus", true, tea.KeyMsg{Type: tea.KeyDown}, core.SideRight, core.ActionDown, false},
		{"pause", false, runeKey('p'), core.SideLeft, core.ActionPause, false},
		{"restart", false, runeKey('r'), core.SideLeft, core.ActionRestart, false},
		{"back", false, tea.KeyMsg{Type: tea.KeyEsc}, core.SideNone, core.ActionBack, false},
		{"quit", false, runeKey('q'), core.SideNone, core.ActionQuit, true},
		{"ctrl+c", true, tea.KeyMsg{Type: tea.KeyCtrlC}, core.SideNone, core.ActionQuit, true},
		{"unbound", false, runeKey('x'), core.SideNone, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side, action, quit := NewKeyMapper(tt.twoPlayers).MapKey(tt.msg)
			if side != tt.side || action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = (%v, %v, %v), expected (%v, %v, %v)",
					side, action, quit, tt.side, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMultiFrame(t *testing.T) {
	km := NewKeyMapper(true)
	frame := core.NewMultiInputFrame()

	if km.MapKeyToMultiFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame) {
		t.Fatal("up is not a quit key")
	}
	if !frame.Side(core.SideRight).Has(core.ActionUp) {
		t.Error("right side should have Up")
	}
	if frame.Side(core.SideLeft).Has(core.ActionUp) {
		t.Error("left side should be untouched")
	}
}

func TestHeldInput(t *testing.T) {
	h := newHeldInput(3)

	pressed := core.NewMultiInputFrame()
	pressed.Set(core.SideLeft, core.ActionUp)
	pressed.Set(core.SideLeft, core.ActionPause)
	h.absorb(pressed)

	for i := range 3 {
		frame := core.NewMultiInputFrame()
		h.apply(&frame)
		if !frame.Side(core.SideLeft).Has(core.ActionUp) {
			t.Fatalf("tick %d: Up should still be held", i)
		}
		if frame.Has(core.ActionPause) {
			t.Fatal("one-shot actions must not be held")
		}
	}

	frame := core.NewMultiInputFrame()
	h.apply(&frame)
	if frame.Has(core.ActionUp) {
		t.Error("Up should be released after the hold expires")
	}
}

func TestHeldInputOppositeCancels(t *testing.T) {
	h := newHeldInput(5)

	up := core.NewMultiInputFrame()
	up.Set(core.SideRight, core.ActionUp)
	h.absorb(up)

	down := core.NewMultiInputFrame()
	down.Set(core.SideRight, core.ActionDown)
	h.absorb(down)

	frame := core.NewMultiInputFrame()
	h.apply(&frame)
	if frame.Side(core.SideRight).Axis() != -1 {
		t.Errorf("Axis() = %v, expected the newest press to win", frame.Side(core.SideRight).Axis())
	}
}
