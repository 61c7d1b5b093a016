package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/game"
	"github.com/vovakirdan/tui-chase/internal/highscore"
)

// submitTimeout bounds a single score submission.
const submitTimeout = 5 * time.Second

// scoreSubmittedMsg reports the outcome of an asynchronous score submission.
type scoreSubmittedMsg struct {
	entry highscore.Entry
	err   error
}

// Model is the Bubble Tea model for one chase session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	scores     highscore.Service
	player     string
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	shotDir    string

	lifeSaved  bool // Current life's score already submitted
	embedded   bool // Running inside a SessionModel; back returns to its menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a Bubble Tea model for g. scores may be nil, in which
// case nothing is persisted. logger may be nil.
func NewModel(g *game.Game, scores highscore.Service, cfg core.RuntimeConfig, player string, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.FPS <= 0 {
		cfg.FPS = core.DefaultConfig().FPS
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		scores:     scores,
		player:     player,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
		shotDir:    defaultScreenshotDir(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case scoreSubmittedMsg:
		return m.handleSubmitted(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Movement, pause and restart are
// queued for the next frame; the rest act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case action == core.ActionConfirm:
		if m.lifeSaved {
			return m, nil
		}
		m.lifeSaved = true
		return m, m.submitCmd(m.gameState.Score)

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the session running and only changes the viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick feeds one frame to the game and submits the score of every
// life that ended by capture during it.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.lifeSaved = false
	}

	result := m.game.Frame(m.inputFrame, now)
	m.gameState = result.State
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.FPS)}
	for _, ev := range result.Events {
		if ev.Kind != core.EventCaptured {
			continue
		}
		if !m.lifeSaved {
			cmds = append(cmds, m.submitCmd(ev.Score))
		}
		m.lifeSaved = false
	}

	return m, tea.Batch(cmds...)
}

// submitCmd records score off the UI goroutine. Zero scores are not kept.
func (m Model) submitCmd(score int) tea.Cmd {
	if m.scores == nil || score <= 0 {
		return nil
	}
	svc, player := m.scores, m.player
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		entry, err := svc.Submit(ctx, player, score)
		return scoreSubmittedMsg{entry: entry, err: err}
	}
}

func (m Model) handleSubmitted(msg scoreSubmittedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Error("score submission failed", "player", m.player, "error", msg.err)
		m.game.Notify("Could not save score")
		return m, nil
	}
	m.logger.Info("score saved", "player", msg.entry.Player, "score", msg.entry.Score, "id", msg.entry.ID)
	m.game.Notify(fmt.Sprintf("Saved %d for %s", msg.entry.Score, msg.entry.Player))
	return m, nil
}

// saveScreenshot writes the current frame as text and as a PNG.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", m.shotDir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	base := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s", m.game.ID(), timestamp))

	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("text screenshot failed", "error", err)
	}
	if err := m.game.SavePNG(base+".png", game.DefaultTileSize); err != nil {
		m.logger.Warn("png screenshot failed", "error", err)
		return
	}
	m.game.Notify("Screenshot saved")
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chase", "screenshots")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays g in the local terminal until the player quits or goes back.
func Run(g *game.Game, scores highscore.Service, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewModel(g, scores, cfg, player, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
