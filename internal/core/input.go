package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows games to work with high-level intents rather than
// raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // A, Left arrow - move paddle left (doubles as launch aim)
	ActionRight         // D, Right arrow - move paddle right
	ActionLaunch        // Space - release the ball from the paddle
	ActionQuit          // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLaunch:
		return "Launch"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick:
// the actions triggered this frame plus the mouse state. Cursor position
// survives Clear so the last known position stays available, mirroring
// how a windowing system reports the cursor for as long as it is inside
// the window.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// MouseClicked is true if the primary mouse button was pressed this frame.
	MouseClicked bool

	// CursorX, CursorY hold the last known cursor position in screen cells.
	// Valid only when HasCursor is true.
	CursorX, CursorY int
	HasCursor        bool
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

// SetCursor records the cursor position in screen cells.
func (f *InputFrame) SetCursor(x, y int) {
	f.CursorX = x
	f.CursorY = y
	f.HasCursor = true
}

// Clear resets per-frame state (actions and click) for the next frame.
// The cursor position is retained.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.MouseClicked = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.MouseClicked = f.MouseClicked
	clone.CursorX = f.CursorX
	clone.CursorY = f.CursorY
	clone.HasCursor = f.HasCursor
	return clone
}
