// Package hexic implements Hexic, a match-3 puzzle on a hexagonal grid.
// Rotate three neighbouring tiles around a dot to line up three of a kind;
// matches explode, tiles fall and new ones drop in. In the classic mode
// bombs appear as the score grows and end the game when their countdown
// runs out.
package hexic

import (
	"fmt"

	"github.com/Arlandrian/HexicClone/internal/config"
	"github.com/Arlandrian/HexicClone/internal/core"
	hcore "github.com/Arlandrian/HexicClone/internal/games/hexic/core"
	"github.com/Arlandrian/HexicClone/internal/registry"
)

// Mode selects the rule set.
type Mode string

const (
	ModeClassic Mode = "hexic"
	ModeZen     Mode = "hexic_zen" // No bombs, play forever
)

// Game adapts a Hexic session to the platform: input, animation and
// rendering.
type Game struct {
	mode    Mode
	cfg     config.HexicConfig
	custom  bool // cfg was injected and must not be reloaded
	runtime core.RuntimeConfig

	s      *session
	anim   *Animator
	skins  map[int]skin
	cursor hcore.Dot

	tick      uint64
	dt        float32
	paused    bool
	tooSmall  bool
	lastCombo int // Tiles exploded by the latest command
	err       error
}

// configPath and difficultyPreset are set from the CLI before games start.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset; unknown names keep the
// config's own difficulty.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig loads the config the CLI selected, falling back to defaults.
func LoadConfig() (config.HexicConfig, error) {
	cfg, err := config.LoadHexic(configPath)
	if err != nil {
		return config.DefaultHexicConfig(), err
	}
	if difficultyPreset != "" {
		config.ApplyHexicPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// New creates a game that loads its config on Reset.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// NewWithConfig creates a game with a fixed config.
func NewWithConfig(mode Mode, cfg config.HexicConfig) *Game {
	return &Game{mode: mode, cfg: cfg, custom: true}
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return New(ModeClassic)
	})
	registry.Register(string(ModeZen), func() registry.Game {
		return New(ModeZen)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Hexic (Zen)"
	}
	return "Hexic"
}

// Reset starts a new game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if !g.custom {
		// A broken config file still gives a playable game with defaults.
		g.cfg, _ = LoadConfig()
	}

	s, err := newSession(g.mode, g.cfg, runtime.Seed)
	g.err = err
	if err != nil {
		g.cfg = config.DefaultHexicConfig()
		s, err = newSession(g.mode, g.cfg, runtime.Seed)
		if err != nil {
			panic(fmt.Errorf("hexic: default config rejected: %w", err))
		}
	}
	g.s = s
	g.anim = NewAnimator(g.cfg.Animation, s.board)
	g.skins = buildSkins(g.cfg)

	dw, dh := s.board.Grid().DotDimensions()
	g.cursor = hcore.D(dw/2, dh/2)

	g.tick = 0
	g.dt = 1.0 / float32(core.Max(runtime.TickRate, 1))
	g.paused = false
	g.lastCombo = 0
	g.checkScreenSize(runtime.ScreenW, runtime.ScreenH)
}

// Err returns why the last Reset fell back to the default config, if it did.
func (g *Game) Err() error {
	return g.err
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.checkScreenSize(w, h)
}

func (g *Game) checkScreenSize(w, h int) {
	minW, minH := minScreen(g.cfg.Board.Width, g.cfg.Board.Height)
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.s.over {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)
	switch {
	case in.Has(core.ActionRotateCW):
		g.rotate(true)
	case in.Has(core.ActionRotateCCW):
		g.rotate(false)
	}

	g.anim.Update(g.dt)
	if g.s.ctrl.State() != hcore.StateIdle && g.s.ctrl.IsBoardSettled() {
		g.absorb(g.s.ctrl.Step())
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	dw, dh := g.s.board.Grid().DotDimensions()
	x, y := g.cursor.X, g.cursor.Y

	switch {
	case in.Has(core.ActionLeft):
		x--
	case in.Has(core.ActionRight):
		x++
	}
	// Dot rows are half a tile apart; screen up is increasing y.
	switch {
	case in.Has(core.ActionUp):
		y++
	case in.Has(core.ActionDown):
		y--
	}

	g.cursor = hcore.D(core.Clamp(x, 0, dw-1), core.Clamp(y, 0, dh-1))
}

// rotate issues a rotate command on the cursor dot. Commands arriving while
// the board is busy are dropped.
func (g *Game) rotate(clockwise bool) {
	tri := g.s.board.Grid().TriadOf(g.cursor)
	if err := g.s.ctrl.Rotate(g.cursor, clockwise); err != nil {
		return
	}
	g.lastCombo = 0

	order := tri
	if clockwise {
		order = tri.Reversed()
	}
	g.anim.Rotated(order)
}

// absorb starts the animations for a controller step and applies its
// events to the session.
func (g *Game) absorb(res hcore.StepResult) {
	for _, order := range res.Rotated {
		g.anim.Rotated(order)
	}
	for _, e := range res.Events {
		if e.Kind == hcore.EventTileExploded {
			g.anim.Exploded(e)
			g.lastCombo++
		}
	}
	for _, m := range res.Moves {
		g.anim.Fell(m.Tile, float32(m.From.Y))
	}
	g.anim.Refilled(res.Spawned)

	g.s.apply(res)
	if g.s.over {
		g.anim.Finish()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.s.score,
		Moves:    g.s.ctrl.Moves(),
		GameOver: g.s.over,
		Paused:   g.paused || g.tooSmall,
	}
}
