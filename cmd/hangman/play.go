package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/platform/cli"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/registry"
	"github.com/vovakirdan/tui-hangman/internal/storage"
	"github.com/vovakirdan/tui-hangman/internal/wordlist"
)

var (
	flagPack   string
	flagWords  string
	flagPlain  bool
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a word pack",
	Long: `Start playing a word pack, or your own list of words.

Controls:
  a-z        - Guess a letter
  Enter      - Close a dialog
  Ctrl+R     - Restart from level 1
  Ctrl+S     - Save a screenshot
  ?          - Toggle full help
  Esc/Ctrl+C - Quit

Words files hold one word per line. Blank lines and lines starting
with # are skipped.

With --plain, or when stdin is not a terminal, the game runs in line
mode: type a letter and press Enter. "restart" starts over, "quit" leaves.

Examples:
  hangman play
  hangman play --pack animals
  hangman play --words ./words.txt
  echo -e "e\na\nquit" | hangman play --plain`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPack, "pack", "", "Word pack ID (see 'hangman packs')")
	playCmd.Flags().StringVar(&flagWords, "words", "", "Path to a words file (overrides --pack)")
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Line mode without the full-screen UI")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your runs (default: OS user)")
}

// resolveWords picks the words for a session from flags and config.
// It returns the words with the pack ID and title to record.
func resolveWords(cmd *cobra.Command) (words []string, packID, title string, err error) {
	packID = appConfig.Game.Pack
	wordsFile := appConfig.Game.WordsFile

	flags := cmd.Flags()
	if flags.Changed("pack") {
		packID = flagPack
		wordsFile = ""
	}
	if flags.Changed("words") {
		wordsFile = flagWords
	}

	if wordsFile != "" {
		words, err = wordlist.Resolve("", wordsFile)
		if err != nil {
			return nil, "", "", err
		}
		return words, "file:" + filepath.Base(wordsFile), "Custom Words", nil
	}

	words, err = wordlist.Resolve(packID, "")
	if err != nil {
		return nil, "", "", err
	}
	return words, packID, registry.Title(packID), nil
}

func runPlay(cmd *cobra.Command, _ []string) {
	words, packID, title, err := resolveWords(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, registry.ErrUnknownPack) {
			fmt.Fprintln(os.Stderr, "Run 'hangman packs' to see available packs.")
		}
		os.Exit(1)
	}

	player := flagPlayer
	if player == "" {
		player = defaultPlayer()
	}

	// Open run storage
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	sessionID := uuid.NewString()
	plain := flagPlain || !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd()))

	if plain {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Debug("line mode", "session", sessionID, "pack", packID, "levels", len(words))
		err = cli.Run(ctx, os.Stdin, os.Stdout, cli.Options{
			Words:           words,
			MaxWrongGuesses: appConfig.Game.MaxWrongGuesses,
			PackTitle:       title,
			Recorder:        storage.NewRecorder(store, logger, sessionID, packID, player),
			Logger:          logger,
		})
		if err != nil && ctx.Err() == nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	fileLogger, closeLog := openFileLogger(appConfig)
	defer closeLog()

	_, runErr := tui.Run(tui.GameOptions{
		Words:     words,
		Store:     store,
		Logger:    fileLogger,
		Config:    runtimeConfig(width, height, packID, player),
		SessionID: sessionID,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
