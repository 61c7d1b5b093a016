package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/game"
	"github.com/vovakirdan/tui-chase/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start chase with a maze picker menu",
	Long: `Start chase in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play the selected maze,
Tab for the high-score table. Leaving a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play maze
  Tab          - High scores
  Q            - Quit

Examples:
  chase menu
  chase menu --fps 30
  chase menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("chase")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	scores, closeScores := openScores(logger)
	defer closeScores()

	rc := runtimeConfig()
	player := playerName()
	current := cfg.Maze

	for {
		menuResult, err := tui.RunMenu(rc, current)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		rc = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(scores, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		current = menuResult.MazeID
		gameCfg := cfg
		gameCfg.Maze = current
		gameCfg.Layout = nil

		// Fresh seed for each game unless one was pinned.
		if flagSeed == 0 {
			rc.Seed = time.Now().UnixNano()
		}

		g, err := game.New(gameCfg, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		logger.Info("game started", "maze", g.MazeID(), "seed", g.Seed())

		if err := tui.Run(g, scores, rc, player, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
