package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/highscore"
	"github.com/vovakirdan/tui-chase/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best chase scores.

With --scores-url the list is read from a remote high-score API;
otherwise from the local database, together with play statistics.

Examples:
  chase scores
  chase scores --limit 25
  chase scores --scores-url http://localhost:8080
  chase scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultLimit, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all local scores")
}

func runScores(cmd *cobra.Command, _ []string) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flagScoresURL != "" {
		if flagScoresClear {
			fail("--clear only works on the local database")
		}
		entries, err := highscore.NewClient(flagScoresURL).Top(ctx, flagScoresLimit)
		if err != nil {
			fail("retrieving scores: %v", err)
		}
		printScores(entries)
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(ctx, highscore.GameID); err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Println("All chase scores deleted.")
		return
	}

	entries, err := highscore.NewStoreService(store).Top(ctx, flagScoresLimit)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}
	printScores(entries)
	if len(entries) == 0 {
		return
	}

	stats, err := store.GetGameStats(ctx, highscore.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Players: %d   Average: %.1f\n",
		stats.HighScore, stats.GamesCount, stats.Players, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}

func printScores(entries []highscore.Entry) {
	fmt.Println("High Scores - Chase")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'chase play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-*s  %-10s  %s\n", "Rank", storage.MaxPlayerName, "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-*s  %-10s  %s\n", "----", storage.MaxPlayerName, "------", "-----", "----")

	for i, e := range entries {
		fmt.Printf("  %-4d  %-*s  %-10d  %s\n", i+1, storage.MaxPlayerName, e.Player, e.Score,
			e.Date.Local().Format("2006-01-02 15:04"))
	}
}
