// chase is a terminal maze-chase game: eat every pellet, avoid the enemies.
//
// Usage:
//
//	chase play [maze]     - Play a maze directly
//	chase menu            - Start menu to pick mazes interactively
//	chase serve           - Start SSH server for remote play
//	chase api             - Start the high-score HTTP API
//	chase scores          - Show high scores
//	chase mazes           - List available mazes
//	chase config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Frame rate of the terminal loop (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path|dsn>       - SQLite path or postgres:// DSN (default: ~/.chase/scores.db)
//	--config <path>       - Custom chase.yaml
//	--difficulty <preset> - easy, normal or hard
//	--name <player>       - Name stored with your scores
//	--scores-url <url>    - Submit scores to a remote API instead of the local database
//	--log <path>          - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/highscore"
	"github.com/vovakirdan/tui-chase/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagName       string
	flagScoresURL  string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chase",
	Short: "Chase - a maze-chase arcade game for your terminal",
	Long: `Chase is a terminal maze-chase game. Eat every pellet in the maze
while the enemies hunt you down.

Available commands:
  play     - Play a maze directly
  menu     - Interactive maze picker menu
  serve    - Start SSH server for remote play
  api      - Start the high-score HTTP API
  scores   - View high scores
  mazes    - Show all available mazes
  config   - Print the effective configuration

Examples:
  chase play
  chase play pillars --difficulty hard
  chase menu --name alice
  chase serve --ssh :2222
  chase api --addr :8080 --db postgres://chase@localhost/chase?sslmode=disable`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate of the terminal loop")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chase/scores.db", "SQLite path or postgres:// DSN for scores")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom chase.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "", "Player name stored with scores (default: login name)")
	rootCmd.PersistentFlags().StringVar(&flagScoresURL, "scores-url", "", "Base URL of a remote high-score API")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mazesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads chase.yaml and applies the difficulty preset.
func loadGameConfig() (config.ChaseConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.FPS = flagFPS
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	return rc
}

// newLogger returns a file logger when --log is set. The TUI owns the
// terminal, so nothing is logged to it.
func newLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, func() { f.Close() }, nil
}

// openScores returns the score service: the remote API when --scores-url
// is set, the local database otherwise. A database that cannot be opened
// leaves the game playable without scores.
func openScores(logger *log.Logger) (highscore.Service, func()) {
	if flagScoresURL != "" {
		return highscore.NewClient(flagScoresURL), func() {}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "db", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil, func() {}
	}
	return highscore.NewStoreService(store), func() { store.Close() }
}

// playerName picks the name stored with scores.
func playerName() string {
	if flagName != "" {
		return storage.NormalizePlayer(flagName)
	}
	if u, err := user.Current(); err == nil {
		return storage.NormalizePlayer(u.Username)
	}
	return storage.DefaultPlayer
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
