package core

// DefaultBombLimit is the number of moves a fresh bomb survives.
const DefaultBombLimit = 7

// BombTracker is the registry of live bombs.
//
// Every accepted move is broadcast to the registered tiles through Advance.
// A tile must be removed from the registry before it is destroyed so the
// broadcast never reaches a tile that left the board.
type BombTracker struct {
	limit int
	live  []*Tile // registration order, keeps Advance output deterministic
}

// NewBombTracker creates an empty registry whose bombs start at limit moves.
func NewBombTracker(limit int) *BombTracker {
	if limit <= 0 {
		limit = DefaultBombLimit
	}
	return &BombTracker{limit: limit}
}

// Limit returns the countdown given to newly spawned bombs.
func (bt *BombTracker) Limit() int {
	return bt.limit
}

// SetLimit changes the countdown for bombs spawned from now on.
func (bt *BombTracker) SetLimit(limit int) {
	if limit > 0 {
		bt.limit = limit
	}
}

// Spawn arms a bomb on t with the current limit.
// A tile that already carries a bomb is re-armed, not registered twice.
func (bt *BombTracker) Spawn(t *Tile) {
	if t.Bomb != nil {
		t.Bomb.Remaining = bt.limit
		return
	}
	t.Bomb = &Bomb{Remaining: bt.limit}
	bt.live = append(bt.live, t)
}

// Remove deregisters t. Unknown tiles are ignored.
func (bt *BombTracker) Remove(t *Tile) {
	for i, lt := range bt.live {
		if lt == t {
			bt.live = append(bt.live[:i], bt.live[i+1:]...)
			return
		}
	}
}

// Advance decrements every live bomb by one move and returns the tiles whose
// countdown reached zero. Expired bombs leave the registry.
func (bt *BombTracker) Advance() []*Tile {
	var expired []*Tile
	kept := bt.live[:0]
	for _, t := range bt.live {
		t.Bomb.Remaining--
		if t.Bomb.Remaining <= 0 {
			t.Bomb.Remaining = 0
			expired = append(expired, t)
			continue
		}
		kept = append(kept, t)
	}
	bt.live = kept
	return expired
}

// IsExpired reports whether t carries a bomb that has run out of moves.
func (bt *BombTracker) IsExpired(t *Tile) bool {
	return t.Bomb != nil && t.Bomb.Remaining <= 0
}

// Len returns the number of live bombs.
func (bt *BombTracker) Len() int {
	return len(bt.live)
}

// Live returns the tiles carrying live bombs in registration order.
func (bt *BombTracker) Live() []*Tile {
	return append([]*Tile(nil), bt.live...)
}

// Clear deregisters every bomb.
func (bt *BombTracker) Clear() {
	bt.live = nil
}
