package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/maze"
)

var flagShowLayout bool

var mazesCmd = &cobra.Command{
	Use:   "mazes",
	Short: "List all available mazes",
	Long:  `Shows the mazes built into chase. Use --show to print their layouts.`,
	Args:  cobra.NoArgs,
	Run:   runMazes,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints chase.yaml as the game would use it, after the search order
and the --difficulty preset are applied. Redirect it to
~/.chase/configs/chase.yaml to start customizing.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	mazesCmd.Flags().BoolVar(&flagShowLayout, "show", false, "Print each maze layout")
}

func runMazes(_ *cobra.Command, _ []string) {
	mazes := maze.List()

	if len(mazes) == 0 {
		fmt.Println("No mazes available.")
		return
	}

	fmt.Println("Available mazes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range mazes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "-----")

	for _, m := range mazes {
		size := fmt.Sprintf("%dx%d", m.Rows, m.Cols)
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, m.ID, size, m.Title)
		if flagShowLayout {
			l, err := maze.Get(m.ID)
			if err != nil {
				continue
			}
			fmt.Println()
			fmt.Println("    " + strings.Join(l.Rows, "\n    "))
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Println("Run 'chase play <id>' to play a maze.")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}
