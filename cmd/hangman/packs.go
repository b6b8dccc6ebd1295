package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/registry"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List all available word packs",
	Long:  `Shows a list of all word packs built into hangman.`,
	Args:  cobra.NoArgs,
	Run:   runPacks,
}

func runPacks(_ *cobra.Command, _ []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No packs available.")
		return
	}

	fmt.Println("Available packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Words", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "-----", "-----")

	// Print packs
	for _, p := range packs {
		count := "?"
		if words, err := registry.Load(p.ID); err == nil {
			count = fmt.Sprintf("%d", len(words))
		} else {
			logger.Warn("cannot load pack", "pack", p.ID, "err", err)
		}
		marker := ""
		if p.ID == appConfig.Game.Pack {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-6s  %s%s\n", maxIDLen, p.ID, count, p.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'hangman play --pack <id>' to play a pack.")
}
