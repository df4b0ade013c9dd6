package core

import "sort"

// State is the controller's position in the resolve cycle.
type State int

const (
	StateIdle      State = iota // Waiting for a rotate command
	StateRotating               // A dot is being turned, matches not found yet
	StateResolving              // Exploding, collapsing and refilling until stable
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRotating:
		return "Rotating"
	case StateResolving:
		return "Resolving"
	default:
		return "Unknown"
	}
}

// DefaultAttemptLimit is how many 120 degree turns a rotate command may take
// while looking for a match. Three turns bring the triad back to where it was.
const DefaultAttemptLimit = 3

// Options configures a Controller.
type Options struct {
	AttemptLimit int // Rotation steps per command, default 3
	BombLimit    int // Moves a new bomb survives, default DefaultBombLimit
}

// Controller drives the resolve cycle of one board:
// rotate -> match -> explode -> collapse/refill -> re-match, until stable.
//
// It is a step machine. Rotate starts a cycle, and each call to Step performs
// one transition once the board is settled, so presentation can animate
// between transitions. ResolveCascade runs a whole cycle at once for callers
// without animation.
type Controller struct {
	board *Board
	rot   *Rotator
	bombs *BombTracker
	opts  Options

	state     State
	dot       Dot
	clockwise bool
	attempt   int

	moves   int
	over    bool
	touched map[int]bool // Columns with holes since the last collapse
}

// NewController creates a controller for b.
func NewController(b *Board, opts Options) *Controller {
	if opts.AttemptLimit <= 0 {
		opts.AttemptLimit = DefaultAttemptLimit
	}
	return &Controller{
		board:   b,
		rot:     NewRotator(),
		bombs:   NewBombTracker(opts.BombLimit),
		opts:    opts,
		touched: make(map[int]bool),
	}
}

// Board returns the controlled board.
func (c *Controller) Board() *Board {
	return c.board
}

// Bombs returns the bomb registry.
func (c *Controller) Bombs() *BombTracker {
	return c.bombs
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Attempt returns the rotation step count of the command in flight.
func (c *Controller) Attempt() int {
	return c.attempt
}

// Moves returns the number of accepted rotate commands.
func (c *Controller) Moves() int {
	return c.moves
}

// Over reports whether a bomb expired and the session has ended.
func (c *Controller) Over() bool {
	return c.over
}

// IsBoardSettled reports whether no tile has pending movement or rotation.
func (c *Controller) IsBoardSettled() bool {
	return c.board.IsSettled() && !c.rot.AnyRotating(c.board.grid)
}

// IsRotating reports whether dot d is mid-rotation.
func (c *Controller) IsRotating(d Dot) bool {
	return c.board.grid.ValidDot(d) && c.rot.IsRotating(c.board.grid, d)
}

// FindMatches returns the distinct matched coordinates on the board.
// The board must be full.
func (c *Controller) FindMatches() []Coord {
	return FindMatches(c.board.grid)
}

// Rotate starts a rotate command on dot d.
//
// The first rotation step is applied immediately. The command is rejected
// with ErrInvalidCommand, and nothing changes, when a cycle is already in
// progress, the board is unsettled or the dot is mid-rotation. After a bomb
// expired every command fails with ErrSessionOver.
func (c *Controller) Rotate(d Dot, clockwise bool) error {
	if c.over {
		return ErrSessionOver
	}
	g := c.board.grid
	if !g.ValidDot(d) {
		dw, dh := g.DotDimensions()
		return outOfBounds("dot", d.X, d.Y, dw, dh)
	}
	if c.state != StateIdle {
		return invalidCommand("rotate %v while %v", d, c.state)
	}
	if c.rot.IsRotating(g, d) {
		return invalidCommand("%v is mid-rotation", d)
	}
	if !c.board.IsSettled() {
		return invalidCommand("rotate %v while board is unsettled", d)
	}

	if _, err := c.rot.Rotate(g, d, clockwise); err != nil {
		return err
	}
	c.state = StateRotating
	c.dot = d
	c.clockwise = clockwise
	c.attempt = 1
	return nil
}

// Step performs one transition of the state machine.
// Nothing happens while the controller is idle or the board is unsettled.
func (c *Controller) Step() StepResult {
	res := StepResult{State: c.state}
	if c.state == StateIdle || !c.IsBoardSettled() {
		return res
	}

	switch c.state {
	case StateRotating:
		c.stepRotating(&res)
	case StateResolving:
		c.stepResolving(&res)
	}

	res.State = c.state
	return res
}

func (c *Controller) stepRotating(res *StepResult) {
	g := c.board.grid

	if matches := FindMatches(g); len(matches) > 0 {
		c.explode(matches, res)
		c.advanceMove(res)
		c.state = StateResolving
		return
	}

	if c.attempt < c.opts.AttemptLimit {
		order, err := c.rot.Rotate(g, c.dot, c.clockwise)
		if err == nil {
			c.attempt++
			res.Rotated = append(res.Rotated, order)
			return
		}
	}

	// No match in any position: the rotation stands as a move.
	c.advanceMove(res)
	c.state = StateIdle
}

func (c *Controller) stepResolving(res *StepResult) {
	g := c.board.grid

	if len(c.touched) > 0 {
		cols := make([]int, 0, len(c.touched))
		for x := range c.touched {
			cols = append(cols, x)
		}
		sort.Ints(cols)
		clear(c.touched)

		res.Moves = append(res.Moves, Collapse(g, cols)...)
		res.Spawned = append(res.Spawned, c.board.Refill(RefillRequests(g))...)
		return
	}

	if matches := FindMatches(g); len(matches) > 0 {
		c.explode(matches, res)
		return
	}
	c.state = StateIdle
}

// ResolveCascade runs the current cycle to completion, settling every tile
// instantly between transitions. It returns the accumulated result.
func (c *Controller) ResolveCascade() StepResult {
	total := StepResult{State: c.state}
	for c.state != StateIdle {
		c.board.SettleAll()
		total.merge(c.Step())
	}
	c.board.SettleAll()
	total.State = c.state
	return total
}

// Explode removes the tiles at coords from the board.
//
// Coordinates are deduplicated first, so a tile shared by overlapping triads
// is removed once; empty cells are skipped. Bombs on removed tiles leave the
// registry before the tile is dropped. One TileExploded event is returned per
// removed tile. The controller then resolves the holes on following steps.
//
// Like Rotate, the command is only accepted while idle on a settled board.
func (c *Controller) Explode(coords []Coord) ([]Event, error) {
	if c.over {
		return nil, ErrSessionOver
	}
	if c.state != StateIdle || !c.IsBoardSettled() {
		return nil, invalidCommand("explode while %v or unsettled", c.state)
	}
	var res StepResult
	c.explode(coords, &res)
	return res.Events, nil
}

func (c *Controller) explode(coords []Coord, res *StepResult) {
	g := c.board.grid
	for _, at := range Dedup(coords) {
		t := g.Get(at)
		if t == nil {
			continue
		}
		if t.Bomb != nil {
			c.bombs.Remove(t)
		}
		g.Set(at, nil)
		c.touched[at.X] = true

		res.Matches = append(res.Matches, at)
		res.Events = append(res.Events, Event{
			Kind:   EventTileExploded,
			Coord:  at,
			Type:   t.Type,
			TileID: t.ID,
		})
	}
	if len(c.touched) > 0 && c.state == StateIdle {
		c.state = StateResolving
	}
}

// advanceMove counts one move and broadcasts it to the bombs.
func (c *Controller) advanceMove(res *StepResult) {
	c.moves++
	res.Events = append(res.Events, Event{Kind: EventMoveAdvanced})

	for _, t := range c.bombs.Advance() {
		c.over = true
		res.Events = append(res.Events, Event{
			Kind:   EventBombExpired,
			Coord:  t.Coord(),
			Type:   t.Type,
			TileID: t.ID,
		})
	}
}

// SpawnBomb arms a bomb on a random tile of the top row that has none yet
// and returns its coordinate.
func (c *Controller) SpawnBomb() (Coord, error) {
	if c.over {
		return Coord{}, ErrSessionOver
	}
	g := c.board.grid
	w, h := g.Dimensions()

	var candidates []*Tile
	for x := 0; x < w; x++ {
		if t := g.Get(C(x, h-1)); t != nil && t.Bomb == nil {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return Coord{}, invalidCommand("no tile available for a bomb")
	}

	t := candidates[c.board.rng.Intn(len(candidates))]
	c.bombs.Spawn(t)
	return t.Coord(), nil
}

// SpawnBombAt arms a bomb on the tile at at.
func (c *Controller) SpawnBombAt(at Coord) error {
	if c.over {
		return ErrSessionOver
	}
	t := c.board.grid.Get(at)
	if t == nil {
		return invalidCommand("no tile at %v", at)
	}
	c.bombs.Spawn(t)
	return nil
}

// Teardown removes every tile from the board, deregistering bombs first, and
// ends the session. The controller rejects all further commands.
func (c *Controller) Teardown() {
	c.bombs.Clear()
	c.rot.Reset()
	g := c.board.grid
	w, h := g.Dimensions()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			g.Set(C(x, y), nil)
		}
	}
	clear(c.touched)
	c.state = StateIdle
	c.over = true
}
