// Package game composes a chase session for the platform: it builds the
// simulation from config, feeds frame timestamps through the fixed-step
// scheduler, maps input actions to direction changes and renders the
// result into a core.Screen.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-chase/internal/chase"
	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/maze"
)

// ID is the identifier used for score storage.
const ID = "chase"

// customID marks a session built from an inline config layout.
const customID = "custom"

// Game is one play session. It is not safe for concurrent use; the
// platform drives it from a single goroutine.
type Game struct {
	cfg    config.ChaseConfig
	layout maze.Layout
	seed   int64

	state *chase.State
	sched *chase.Scheduler

	screenW int
	screenH int

	paused   bool
	cleared  bool
	tooSmall bool

	best    int
	lives   int
	message string
}

// New builds a session. rc.Seed is used as-is; the platform picks a
// time-based seed when the user did not ask for one.
func New(cfg config.ChaseConfig, rc core.RuntimeConfig) (*Game, error) {
	layout, err := resolveLayout(cfg)
	if err != nil {
		return nil, err
	}
	grid, err := layout.Map()
	if err != nil {
		return nil, err
	}

	spawns, err := buildSpawns(cfg, layout)
	if err != nil {
		return nil, err
	}

	state, err := chase.NewState(grid, chase.Config{
		Player:  spawns.player,
		Enemies: spawns.enemies,
		Reward:  cfg.Scoring.CollectReward,
		Policy:  chase.NewPursuePolicy(cfg.Policy.ReevaluateChance),
		Rand:    rand.New(rand.NewSource(rc.Seed)),
	})
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		cfg:    cfg,
		layout: layout,
		seed:   rc.Seed,
		state:  state,
		sched:  chase.NewScheduler(cfg.Timing.Step(), cfg.Timing.MaxDelta()),
	}
	g.Resize(rc.ScreenW, rc.ScreenH)
	return g, nil
}

func resolveLayout(cfg config.ChaseConfig) (maze.Layout, error) {
	if len(cfg.Layout) > 0 {
		return maze.Layout{ID: customID, Title: "Custom", Rows: cfg.Layout}, nil
	}
	id := cfg.Maze
	if id == "" {
		id = maze.DefaultID
	}
	return maze.Get(id)
}

type spawnSet struct {
	player  chase.Spawn
	enemies []chase.EnemySpawn
}

// buildSpawns merges explicit config starts with the layout defaults.
func buildSpawns(cfg config.ChaseConfig, layout maze.Layout) (spawnSet, error) {
	var set spawnSet

	p := layout.Player
	switch {
	case cfg.Player.Start != nil:
		p = maze.Point{Row: cfg.Player.Start.Row, Col: cfg.Player.Start.Col}
	case layout.ID == customID:
		return set, fmt.Errorf("game: player.start is required with an inline layout")
	}
	set.player = chase.Spawn{Row: p.Row, Col: p.Col, Rate: cfg.Player.Rate}

	for i, e := range cfg.Enemies {
		var at maze.Point
		switch {
		case e.Start != nil:
			at = maze.Point{Row: e.Start.Row, Col: e.Start.Col}
		case i < len(layout.Enemies):
			at = layout.Enemies[i]
		default:
			return set, fmt.Errorf("game: enemy %q has no start and maze %q has only %d enemy spawns",
				e.Label, layout.ID, len(layout.Enemies))
		}
		set.enemies = append(set.enemies, chase.EnemySpawn{
			Spawn: chase.Spawn{Row: at.Row, Col: at.Col, Rate: e.Rate},
			Label: e.Label,
			Mode:  chase.ModePursue,
		})
	}

	return set, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Chase: " + g.layout.Title
}

// MazeID returns the layout the session was built from.
func (g *Game) MazeID() string {
	return g.layout.ID
}

// Seed returns the seed the session was built with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Resize updates the screen size used by Render.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	rows, cols := g.layout.Size()
	minW, minH := cols+2, rows+hudHeight+footerHeight
	g.tooSmall = w < minW || h < minH
}

// Restart resets the maze, entities and score. Best and lives are kept.
func (g *Game) Restart(now time.Time) {
	g.state.Reset()
	g.cleared = false
	g.message = ""
	g.sched.Sync(now)
}

// Frame feeds one frame: it applies input and runs as many fixed simulation
// steps as the time since the previous frame allows.
func (g *Game) Frame(in core.InputFrame, now time.Time) core.StepResult {
	var res core.StepResult

	if in.Has(core.ActionRestart) {
		g.Restart(now)
		return g.result(res)
	}
	if in.Has(core.ActionPause) && !g.cleared {
		g.paused = !g.paused
	}
	if g.idle() {
		// Keep the clock current so resuming does not replay the pause.
		g.sched.Sync(now)
		return g.result(res)
	}

	g.applyDirection(in)
	res.Ticks = g.sched.Frame(now, func(dt float64) {
		if g.cleared {
			return
		}
		g.tick(dt, &res)
	})
	return g.result(res)
}

// Step applies input and runs exactly one fixed step, bypassing the
// wall clock. Used for replays and tests.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult

	if in.Has(core.ActionRestart) {
		g.state.Reset()
		g.cleared = false
		g.message = ""
		return g.result(res)
	}
	if in.Has(core.ActionPause) && !g.cleared {
		g.paused = !g.paused
	}
	if g.idle() {
		return g.result(res)
	}

	g.applyDirection(in)
	g.tick(g.sched.Step().Seconds(), &res)
	res.Ticks = 1
	return g.result(res)
}

func (g *Game) idle() bool {
	return g.paused || g.cleared || g.tooSmall
}

func (g *Game) applyDirection(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.state.SetDirection(chase.DirUp)
	case in.Has(core.ActionDown):
		g.state.SetDirection(chase.DirDown)
	case in.Has(core.ActionLeft):
		g.state.SetDirection(chase.DirLeft)
	case in.Has(core.ActionRight):
		g.state.SetDirection(chase.DirRight)
	}
}

func (g *Game) tick(dt float64, res *core.StepResult) {
	r := g.state.Tick(dt)

	switch {
	case r.Captured:
		g.lives++
		g.best = max(g.best, r.LifeScore)
		g.message = fmt.Sprintf("Caught by %s! Life score %d", r.CapturedBy, r.LifeScore)
		res.Events = append(res.Events, core.Event{Kind: core.EventCaptured, By: r.CapturedBy, Score: r.LifeScore})
	case r.Collected:
		g.best = max(g.best, r.Score)
		res.Events = append(res.Events, core.Event{Kind: core.EventCollected, Score: r.Score})
		if g.state.Map().Remaining() == 0 {
			g.cleared = true
			g.message = fmt.Sprintf("Maze cleared with %d points", r.Score)
			res.Events = append(res.Events, core.Event{Kind: core.EventCleared, Score: r.Score})
		}
	}
}

func (g *Game) result(res core.StepResult) core.StepResult {
	res.State = g.State()
	return res
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.state.Score(),
		Best:      g.best,
		Remaining: g.state.Map().Remaining(),
		Lives:     g.lives,
		Ticks:     g.state.Ticks(),
		Paused:    g.paused,
	}
}

// Notify replaces the footer message. The next capture or clear overwrites it.
func (g *Game) Notify(msg string) {
	g.message = msg
}

// Cleared reports whether every collectible has been taken.
func (g *Game) Cleared() bool {
	return g.cleared
}

// Snapshot returns the simulation snapshot.
func (g *Game) Snapshot() chase.Snapshot {
	return g.state.Snapshot()
}

// Sim exposes read access to the simulation for renderers.
func (g *Game) Sim() *chase.State {
	return g.state
}
