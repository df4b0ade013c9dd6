package core

// EventKind identifies an engine notification.
type EventKind int

const (
	EventTileExploded EventKind = iota // A matched tile left the board
	EventMoveAdvanced                  // An accepted rotate command was counted
	EventBombExpired                   // A bomb ran out of moves; the session ends
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventTileExploded:
		return "TileExploded"
	case EventMoveAdvanced:
		return "MoveAdvanced"
	case EventBombExpired:
		return "BombExpired"
	default:
		return "Unknown"
	}
}

// Event is a notification emitted by the controller.
// Coord, Type and TileID are zero for MoveAdvanced.
type Event struct {
	Kind   EventKind
	Coord  Coord
	Type   TileType
	TileID uint64
}

// StepResult contains everything that happened during one controller step.
type StepResult struct {
	State   State
	Rotated []Triad // Rotation steps applied, in order
	Events  []Event // Notifications in emission order
	Moves   []Move  // Tiles that fell
	Spawned []*Tile // Tiles created by refill
	Matches []Coord // Distinct coordinates exploded
}

// Count returns how many events of the given kind the result carries.
func (r StepResult) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// merge appends other into r and takes its state.
func (r *StepResult) merge(other StepResult) {
	r.State = other.State
	r.Rotated = append(r.Rotated, other.Rotated...)
	r.Events = append(r.Events, other.Events...)
	r.Moves = append(r.Moves, other.Moves...)
	r.Spawned = append(r.Spawned, other.Spawned...)
	r.Matches = append(r.Matches, other.Matches...)
}
