package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveLeft           // A, Left arrow - push player left
	ActionMoveRight          // D, Right arrow - push player right
	ActionFlipGravity        // Space - invert gravity
	ActionRestart            // R key - restart game after game over
	ActionPause              // P, Escape - pause/unpause game
	ActionQuit               // Q, Ctrl+C - exit game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionFlipGravity:
		return "FlipGravity"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the horizontal direction of a movement action:
// -1 for MoveLeft, +1 for MoveRight. ok is false for every other action.
func (a Action) Direction() (dir int, ok bool) {
	switch a {
	case ActionMoveLeft:
		return -1, true
	case ActionMoveRight:
		return 1, true
	default:
		return 0, false
	}
}

// InputFrame represents the input for a single simulation tick.
// Actions answers "was this triggered at all"; Queue keeps every
// occurrence in arrival order, since movement is last-command-wins.
type InputFrame struct {
	Actions map[Action]bool
	Queue   []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Queue = append(f.Queue, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Directions returns the movement directions queued this frame, oldest first.
func (f InputFrame) Directions() []int {
	var dirs []int
	for _, a := range f.Queue {
		if d, ok := a.Direction(); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Queue = f.Queue[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Queue = append([]Action(nil), f.Queue...)
	return clone
}
