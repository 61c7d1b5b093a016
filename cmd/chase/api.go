package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/game"
	"github.com/vovakirdan/tui-chase/internal/highscore"
	"github.com/vovakirdan/tui-chase/internal/maze"
	"github.com/vovakirdan/tui-chase/internal/storage"
)

var (
	flagAPIAddr  string
	flagAPIDebug bool
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the high-score HTTP API",
	Long: `Serve high scores as JSON over HTTP.

Endpoints:
  GET  /api/highscores/?limit=N        - Best scores, highest first
  POST /api/highscores/add/            - {"player": "...", "score": N}
  GET  /api/mazes/<id>/preview.png     - Picture of a maze at its start

Players point their client at the server with --scores-url.

Examples:
  chase api
  chase api --addr :9000 --db postgres://chase:secret@db/chase?sslmode=disable
  chase play --scores-url http://localhost:8080`,
	Args: cobra.NoArgs,
	Run:  runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":8080", "HTTP listen address")
	apiCmd.Flags().BoolVar(&flagAPIDebug, "debug", false, "Run gin in debug mode")
}

func runAPI(_ *cobra.Command, _ []string) {
	if !flagAPIDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "chase-api",
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	server := highscore.NewServer(highscore.NewStoreService(store), logger, mazePreview(gameCfg))

	logger.Info("starting high-score API", "address", flagAPIAddr, "driver", store.Driver())
	if err := server.ListenAndServe(flagAPIAddr); err != nil {
		store.Close()
		fail("server: %v", err)
	}
}

// mazePreview renders a maze at its start state with the given config.
func mazePreview(base config.ChaseConfig) highscore.PreviewFunc {
	return func(w io.Writer, mazeID string) error {
		if !maze.Exists(mazeID) {
			return fmt.Errorf("maze %q: %w", mazeID, highscore.ErrNotFound)
		}
		cfg := base
		cfg.Maze = mazeID
		cfg.Layout = nil

		g, err := game.New(cfg, core.DefaultConfig())
		if err != nil {
			return err
		}
		return g.EncodePNG(w, game.DefaultTileSize)
	}
}
