package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/game"
	"github.com/vovakirdan/tui-chase/internal/maze"
	"github.com/vovakirdan/tui-chase/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [maze]",
	Short: "Play a maze",
	Long: `Start playing the given maze, or the configured one.

Controls:
  Arrows/WASD/HJKL - Move
  P/Space          - Pause
  R                - Restart the maze
  Enter            - Save the current score
  Ctrl+S           - Screenshot (text and PNG in ~/.chase/screenshots)
  Esc/B, Q         - Quit

Difficulty options:
  easy   - Slower enemies that rarely change course
  normal - Speeds from the config
  hard   - Faster enemies that re-plan more often

Examples:
  chase play
  chase play open
  chase play pillars --difficulty hard
  chase play --config ./my-chase.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	if len(args) == 1 {
		if !maze.Exists(args[0]) {
			fail("unknown maze %q\nRun 'chase mazes' to see available mazes.", args[0])
		}
		cfg.Maze = args[0]
		cfg.Layout = nil
	}

	logger, closeLog, err := newLogger("chase")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	rc := runtimeConfig()
	g, err := game.New(cfg, rc)
	if err != nil {
		fail("cannot start game: %v", err)
	}
	logger.Info("game started", "maze", g.MazeID(), "seed", g.Seed())

	scores, closeScores := openScores(logger)
	defer closeScores()

	if err := tui.Run(g, scores, rc, playerName(), logger); err != nil {
		logger.Error("game loop failed", "error", err)
		closeScores()
		fail("running game: %v", err)
	}
}
