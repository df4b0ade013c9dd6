package core

// Action is a semantic game intent, decoupled from physical keys.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Move the cursor up
	ActionDown             // Move the cursor down
	ActionLeft             // Move the cursor left
	ActionRight            // Move the cursor right
	ActionRotateCW         // Rotate the selected triad clockwise
	ActionRotateCCW        // Rotate the selected triad counter-clockwise
	ActionPause            // Toggle pause
	ActionRestart          // Start a new game after game over
	ActionHelp             // Toggle the full key help
	ActionQuit             // Leave the session
)

var actionNames = [...]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionRotateCW:  "RotateCW",
	ActionRotateCCW: "RotateCCW",
	ActionPause:     "Pause",
	ActionRestart:   "Restart",
	ActionHelp:      "Help",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
