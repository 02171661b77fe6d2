package core

// Side identifies one half of the field and the paddle that defends it.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "None"
	}
}

// Opponent returns the other side. SideNone maps to itself.
func (s Side) Opponent() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // move paddle up
	ActionDown           // move paddle down
	ActionRestart        // restart after game over
	ActionQuit           // exit
	ActionPause          // pause/unpause
	ActionBack           // leave the current screen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one player during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Axis folds Up/Down into a vertical axis sample in [-1, 1].
// Up is positive: world Y grows upwards.
func (f InputFrame) Axis() float64 {
	axis := 0.0
	if f.Has(ActionUp) {
		axis++
	}
	if f.Has(ActionDown) {
		axis--
	}
	return axis
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// MultiInputFrame contains input for both sides for a single tick.
// The platform fills it from the keyboard; drivers decide what to do with it.
type MultiInputFrame struct {
	BySide map[Side]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		BySide: make(map[Side]InputFrame),
	}
}

// Side returns the input frame for a side, or an empty frame.
func (m MultiInputFrame) Side(s Side) InputFrame {
	if frame, ok := m.BySide[s]; ok {
		return frame
	}
	return NewInputFrame()
}

// Set marks an action for the given side.
func (m *MultiInputFrame) Set(s Side, a Action) {
	if m.BySide == nil {
		m.BySide = make(map[Side]InputFrame)
	}
	frame := m.Side(s)
	frame.Set(a)
	m.BySide[s] = frame
}

// Has reports whether either side triggered the action.
func (m MultiInputFrame) Has(a Action) bool {
	for _, frame := range m.BySide {
		if frame.Has(a) {
			return true
		}
	}
	return false
}

// Clear resets all inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for s := range m.BySide {
		frame := m.BySide[s]
		frame.Clear()
		m.BySide[s] = frame
	}
}
