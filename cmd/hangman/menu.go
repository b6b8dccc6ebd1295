package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a word pack picker menu",
	Long: `Start hangman in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a pack.
Press Esc during a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select pack
  Tab          - Scoreboard
  Q/Esc        - Quit

Examples:
  hangman menu
  hangman menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your runs (default: OS user)")
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open run storage
	store := openStore()

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	player := flagPlayer
	if player == "" {
		player = defaultPlayer()
	}

	fileLogger, closeLog := openFileLogger(appConfig)
	defer closeLog()

	cfg := runtimeConfig(width, height, appConfig.Game.Pack, player)
	sessionID := uuid.NewString()

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size or selection changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.Pack, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		packID := menuResult.PackID
		if packID == "" {
			break
		}

		words, err := registry.Load(packID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading pack: %v\n", err)
			continue
		}

		// Run the game
		result, err := tui.Run(tui.GameOptions{
			Words:     words,
			Store:     store,
			Logger:    fileLogger,
			Config:    cfg,
			SessionID: sessionID,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
		cfg.ScreenW, cfg.ScreenH = result.Config.ScreenW, result.Config.ScreenH

		if !result.BackToMenu {
			break
		}
		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
