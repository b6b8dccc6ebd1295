package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/registry"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresReset bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show the best runs for a word pack",
	Long: `Display the best runs for the specified pack (the configured pack
when omitted), ranked by score and then by level reached.

Examples:
  hangman scores
  hangman scores animals
  hangman scores --all
  hangman scores animals --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show a summary of every pack")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete all runs of the pack")
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	// Open run storage
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresAll {
		if err := printAllStats(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		return
	}

	packID := appConfig.Game.Pack
	if len(args) > 0 {
		packID = args[0]
	}

	// Runs from words files use unregistered IDs, so unknown IDs are not an error
	if !registry.Exists(packID) {
		logger.Debug("pack not registered", "pack", packID)
	}
	title := registry.Title(packID)

	if flagScoresReset {
		if err := store.ClearRuns(packID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs for %s.\n", title)
		return
	}

	// Get top runs
	runs, err := store.TopRuns(packID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	// Display runs
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hangman play --pack %s' to set the first high score!\n", packID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-10s  %-14s  %s\n", "Rank", "Score", "Level", "Outcome", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-10s  %-14s  %s\n", "----", "-----", "-----", "-------", "------", "----")

	// Print runs
	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %-10s  %-14s  %s\n", i+1, r.Score, r.Level, r.Outcome, r.Player, dateStr)
	}

	// Show summary
	fmt.Println()
	if stats, err := store.GetPackStats(packID); err == nil {
		fmt.Printf("Best: %d   Runs: %d   Avg: %.1f   Completed: %d\n",
			stats.HighScore, stats.RunsCount, stats.AvgScore, stats.Completed)
	}
}

func printAllStats(store *storage.Store) error {
	all, err := store.GetAllPackStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Printf("  %-20s  %-5s  %-5s  %-6s  %-10s  %s\n", "Pack", "Runs", "Best", "Avg", "Completed", "Last played")
	fmt.Printf("  %-20s  %-5s  %-5s  %-6s  %-10s  %s\n", "----", "----", "----", "---", "---------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-20s  %-5d  %-5d  %-6.1f  %-10d  %s\n",
			registry.Title(id), s.RunsCount, s.HighScore, s.AvgScore, s.Completed,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
