package cave

import (
	"math/rand"

	"github.com/vovakirdan/cavedash/internal/config"
	"github.com/vovakirdan/cavedash/internal/core"
	"github.com/vovakirdan/cavedash/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeSprint  Mode = "sprint"
)

// SessionState is the explicit outcome state machine. Won and Lost are
// mutually exclusive by construction; the exit-revealed flag is orthogonal.
type SessionState uint8

const (
	StatePlaying SessionState = iota
	StateWon
	StateLost
)

// String returns the state name used in snapshots.
func (s SessionState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Player is the digger: tile coordinates, facing, a 4-phase walk animation
// counter, and the last-move timestamp that drives the crush grace period.
type Player struct {
	X, Y       int
	FacingLeft bool
	AnimPhase  int
	LastMoveMS float64
}

// Game implements the cave-digger game.
type Game struct {
	mode Mode
	rng  *rand.Rand

	cfg     config.CaveConfig
	runtime core.RuntimeConfig
	audio   core.AudioSink

	grid      *Grid
	player    Player
	camera    Camera
	timer     Timer
	explosion Explosion

	state            SessionState
	score            int
	diamonds         int
	diamondsRequired int

	exitRevealed bool
	exitX, exitY int
	exitAppearMS float64

	tick      uint64
	clockMS   float64 // simulated wall clock, advances tickDurMS per step
	tickDurMS float64

	lastPhysicsMS float64
	lastAnimMS    float64

	paused   bool
	tooSmall bool

	// Layout computed from screen size
	hudHeight  int
	viewW      int
	viewH      int
	mapOffsetX int
	mapOffsetY int
}

// Package-level variables set by the CLI before game creation,
// following the platform convention.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	layoutRows       []string
)

// SetConfigPath sets the config file path for subsequent resets.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset: easy, normal or hard.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// SetLayout replaces procedural generation with a fixed text layout for
// subsequent resets. Pass nil to restore generation. Rows should already
// have been validated with ParseLayout.
func SetLayout(rows []string) {
	layoutRows = rows
}

// New creates a classic-mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewSprint creates a sprint-mode game: same caves, tighter timer,
// smaller diamond quota.
func NewSprint() *Game {
	return &Game{mode: ModeSprint}
}

func init() {
	registry.Register("cave", func() registry.Game {
		return New()
	})
	registry.Register("cave_sprint", func() registry.Game {
		return NewSprint()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSprint {
		return "cave_sprint"
	}
	return "cave"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSprint {
		return "Cave Dash (Sprint)"
	}
	return "Cave Dash"
}

// Reset (re)initializes the whole session atomically: terminal flags,
// score, exit state, a freshly generated cave and a re-snapped camera.
// No entity survives a reset with stale state.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadCave(configPath)
	if err != nil {
		cfg = config.DefaultCaveConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCavePreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeSprint {
		cfg.Rules.TimeLimitSeconds = cfg.Sprint.TimeLimitSeconds
		cfg.Rules.DiamondsRequired = cfg.Sprint.DiamondsRequired
	}

	g.cfg = cfg
	g.runtime = rt
	g.audio = rt.Audio
	if g.audio == nil {
		g.audio = core.NopAudio{}
	}
	g.rng = rand.New(rand.NewSource(rt.Seed))

	g.tick = 0
	g.clockMS = 0
	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickDurMS = 1000.0 / float64(tickRate)
	g.lastPhysicsMS = 0
	g.lastAnimMS = 0

	g.state = StatePlaying
	g.score = 0
	g.diamonds = 0
	g.diamondsRequired = cfg.Rules.DiamondsRequired
	g.exitRevealed = false
	g.exitX, g.exitY = 0, 0
	g.exitAppearMS = 0
	g.paused = false

	g.grid = generateLevel(g.rng, cfg.Level, cfg.Rules.DiamondsRequired)
	g.player = Player{X: SpawnX, Y: SpawnY}
	if len(layoutRows) > 0 {
		if grid, px, py, layoutErr := ParseLayout(layoutRows); layoutErr == nil {
			g.grid = grid
			g.player = Player{X: px, Y: py}
		}
	}
	g.timer = NewTimer(cfg.Rules.TimeLimitSeconds, cfg.Rules.WarningThresholdSeconds, g.clockMS, g.audio)
	g.explosion = NewExplosion(cfg.Explosion.MaxRadius, float64(cfg.Timing.ExplosionFrameMS))

	g.computeLayout(rt.ScreenW, rt.ScreenH)
	g.camera = NewCamera(g.grid.W, g.grid.H, g.viewW, g.viewH, cfg.Camera.Speed, cfg.Camera.Deadzone)
	g.camera.Snap(g.player.X, g.player.Y)
}

// LoadLayout replaces the generated cave with a text layout (custom cave
// files and scripted scenarios). Score, timer and exit state are reset as
// if a fresh level had started.
func (g *Game) LoadLayout(rows []string) error {
	grid, px, py, err := ParseLayout(rows)
	if err != nil {
		return err
	}

	g.grid = grid
	g.player = Player{X: px, Y: py}
	g.state = StatePlaying
	g.score = 0
	g.diamonds = 0
	g.exitRevealed = false
	g.clockMS = 0
	g.lastPhysicsMS = 0
	g.lastAnimMS = 0
	g.timer = NewTimer(g.cfg.Rules.TimeLimitSeconds, g.cfg.Rules.WarningThresholdSeconds, g.clockMS, g.audio)
	g.explosion = NewExplosion(g.cfg.Explosion.MaxRadius, float64(g.cfg.Timing.ExplosionFrameMS))

	g.camera = NewCamera(g.grid.W, g.grid.H, g.viewW, g.viewH, g.cfg.Camera.Speed, g.cfg.Camera.Deadzone)
	g.camera.Snap(g.player.X, g.player.Y)
	return nil
}

// computeLayout sizes the viewport from the screen, clamped to the grid.
func (g *Game) computeLayout(screenW, screenH int) {
	g.hudHeight = 2

	if screenW < 24 || screenH < g.hudHeight+8 {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.viewW = core.Min(g.grid.W, screenW)
	g.viewH = core.Min(g.grid.H, screenH-g.hudHeight)
	g.mapOffsetX = (screenW - g.viewW) / 2
	g.mapOffsetY = g.hudHeight
}

// Step advances the game by one tick. Per-frame order is fixed:
// timer, explosion, walk animation, movement, physics, camera.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Mute and restart are observed in every state.
	if in.Has(core.ActionMute) {
		g.audio.ToggleMute()
	}
	if in.Has(core.ActionRestart) && g.state != StatePlaying {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
			Audio:    g.runtime.Audio,
		})
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) && g.state == StatePlaying {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.clockMS += g.tickDurMS
	now := g.clockMS

	if g.state == StatePlaying {
		if g.timer.Update(now) {
			// Time ran out: same terminal effect as a crush.
			g.killPlayer(now)
		}
	}

	g.explosion.Update(now, g.grid)

	if g.state == StatePlaying {
		g.updateWalkAnimation(now)
		g.handleMovement(in, now)
	}
	if g.state == StatePlaying {
		if now-g.lastPhysicsMS >= float64(g.cfg.Timing.PhysicsIntervalMS) {
			g.lastPhysicsMS = now
			g.stepPhysics(now)
		}
		g.camera.Follow(g.player.X, g.player.Y, g.tickDurMS/1000)
	}

	return core.StepResult{State: g.State()}
}

// updateWalkAnimation cycles the player's walk phase on its own cadence
// while the player is actively moving. Independent of the physics cadence.
func (g *Game) updateWalkAnimation(nowMS float64) {
	interval := float64(g.cfg.Timing.AnimationIntervalMS)
	if nowMS-g.lastAnimMS < interval {
		return
	}
	g.lastAnimMS = nowMS
	if nowMS-g.player.LastMoveMS <= interval*2 {
		g.player.AnimPhase = (g.player.AnimPhase + 1) % 4
	}
}

// handleMovement resolves at most one directional intent per tick.
// Horizontal intents win over vertical ones for deterministic resolution.
func (g *Game) handleMovement(in core.InputFrame, nowMS float64) {
	switch {
	case in.Has(core.ActionLeft):
		g.movePlayer(-1, 0, nowMS)
	case in.Has(core.ActionRight):
		g.movePlayer(1, 0, nowMS)
	case in.Has(core.ActionUp):
		g.movePlayer(0, -1, nowMS)
	case in.Has(core.ActionDown):
		g.movePlayer(0, 1, nowMS)
	}
}

// movePlayer interprets a directional intent against the grid: digging,
// collection, exit entry and boulder pushing, per the movement rules.
func (g *Game) movePlayer(dx, dy int, nowMS float64) {
	nx, ny := g.player.X+dx, g.player.Y+dy
	dest := g.grid.Get(nx, ny)

	legal := dest == TileEmpty || dest == TileDirt || dest == TileDiamond ||
		(dest == TileExit && g.exitRevealed)
	if !legal {
		return
	}

	switch dest {
	case TileDiamond:
		g.score += g.cfg.Rules.PointsPerDiamond
		g.diamonds++
		g.audio.Play(core.CueCollect)
		if g.diamonds >= g.diamondsRequired && !g.exitRevealed {
			g.revealExit(nowMS)
		}
	case TileDirt:
		g.audio.Play(core.CueDig)
	case TileExit:
		g.state = StateWon
		g.timer.Freeze()
		g.audio.Play(core.CueVictory)
		return // no position update on the winning step
	}

	g.grid.Set(nx, ny, TileEmpty)
	g.player.X, g.player.Y = nx, ny
	if dx != 0 {
		g.player.FacingLeft = dx < 0
	}
	g.player.AnimPhase = (g.player.AnimPhase + 1) % 4
	g.player.LastMoveMS = nowMS

	// Horizontal moves shove an adjacent boulder one cell further if the
	// cell beyond it is free.
	if dx != 0 {
		bx := nx + dx
		if g.grid.Get(bx, ny) == TileBoulder && g.grid.Get(bx+dx, ny) == TileEmpty && !g.playerAt(bx+dx, ny) {
			g.grid.Set(bx, ny, TileEmpty)
			g.grid.Set(bx+dx, ny, TileBoulder)
			g.audio.Play(core.CuePush)
		}
	}

	// The viewport must never lag a discrete step.
	g.camera.Snap(g.player.X, g.player.Y)
}

// revealExit performs the one-shot exit reveal: a cell outside the player's
// immediate neighborhood and not directly below a boulder, so the exit is
// never instantly fatal. Once revealed the exit never moves.
func (g *Game) revealExit(nowMS float64) {
	x, y, ok := g.pickExitCell()
	if !ok {
		return
	}
	g.grid.Set(x, y, TileExit)
	g.exitX, g.exitY = x, y
	g.exitRevealed = true
	g.exitAppearMS = nowMS
	g.audio.Play(core.CueReveal)
}

// pickExitCell searches for a dirt or empty cell at least 3 cells away from
// the player on some axis with no boulder directly above. Random probes
// first, then a deterministic sweep, then the sweep again without the
// distance rule on degenerate caves.
func (g *Game) pickExitCell() (int, int, bool) {
	suitable := func(x, y int, checkDistance bool) bool {
		t := g.grid.Get(x, y)
		if t != TileDirt && t != TileEmpty {
			return false
		}
		if g.grid.Get(x, y-1) == TileBoulder {
			return false
		}
		if checkDistance &&
			core.Abs(x-g.player.X) <= 2 && core.Abs(y-g.player.Y) <= 2 {
			return false
		}
		return true
	}

	// Random probes need a non-empty interior; tiny custom layouts fall
	// straight through to the sweep.
	if g.grid.W > 2 && g.grid.H > 2 {
		for i := 0; i < 200; i++ {
			x := 1 + g.rng.Intn(g.grid.W-2)
			y := 1 + g.rng.Intn(g.grid.H-2)
			if suitable(x, y, true) {
				return x, y, true
			}
		}
	}
	for _, checkDistance := range []bool{true, false} {
		for y := 1; y < g.grid.H-1; y++ {
			for x := 1; x < g.grid.W-1; x++ {
				if suitable(x, y, checkDistance) {
					return x, y, true
				}
			}
		}
	}
	return 0, 0, false
}

// killPlayer ends the session in a loss and starts the explosion at the
// player's position. Idempotent: a dead player cannot die again.
func (g *Game) killPlayer(nowMS float64) {
	if g.state != StatePlaying {
		return
	}
	g.state = StateLost
	g.timer.Freeze()
	g.audio.Play(core.CueDeath)
	g.explosion.Trigger(g.player.X, g.player.Y, nowMS, g.grid)
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Diamonds: g.diamonds,
		GameOver: g.state != StatePlaying,
		Won:      g.state == StateWon,
		TimedOut: g.state == StateLost && g.timer.Phase() == TimerExpired,
		Paused:   g.paused,
	}
}
