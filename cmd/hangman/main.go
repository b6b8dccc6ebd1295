// hangman is a terminal word-guessing game.
//
// Usage:
//
//	hangman packs            - List available word packs
//	hangman play             - Play a pack (or a words file)
//	hangman menu             - Start menu to pick packs interactively
//	hangman serve            - Start SSH server for remote play
//	hangman scores [pack]    - Show the best runs for a pack
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.hangman/config.yaml)
//	--db <path>         - Set database path (default: ~/.hangman/scores.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/storage"

	// Import word packs to register them
	_ "github.com/vovakirdan/tui-hangman/internal/wordlist"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

var (
	// Set by loadConfig before any subcommand runs
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - Guess the word before the gallows is complete",
	Long: `Hangman is a terminal word-guessing game.

Each level hides a word. Guess one letter at a time: a correct letter
opens every place it appears and scores +1, a wrong one scores -1 and
adds to the gallows. Seven wrong guesses end the game.

Available commands:
  packs    - Show all available word packs
  play     - Play a pack directly
  menu     - Interactive pack picker menu
  serve    - Start SSH server for remote play
  scores   - View the best runs

Examples:
  hangman packs
  hangman play --pack animals
  hangman play --words ./my-words.txt --plain
  hangman menu
  hangman serve --ssh :2222
  hangman scores animals`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(packsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	logger = newLogger(os.Stderr, cfg)
	return nil
}

// newLogger creates a logger at the configured level.
func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hangman",
	})
	if lvl, err := cfg.LogLevel(); err == nil {
		l.SetLevel(lvl)
	}
	return l
}

// openFileLogger returns a logger that writes to the configured log file,
// for use while the full-screen UI owns the terminal. Falls back to discarding.
func openFileLogger(cfg config.Config) (*log.Logger, func()) {
	path, err := config.ExpandPath(cfg.Log.File)
	if err != nil || path == "" {
		return newLogger(io.Discard, cfg), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Warn("cannot create log directory", "err", err)
		return newLogger(io.Discard, cfg), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger.Warn("cannot open log file", "path", path, "err", err)
		return newLogger(io.Discard, cfg), func() {}
	}
	return newLogger(f, cfg), func() { f.Close() }
}

// openStore opens the run database. On failure it warns and returns nil;
// the game still works without history.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open run database", "err", err)
		return nil
	}
	return store
}

// runtimeConfig builds the platform config from the loaded config.
func runtimeConfig(width, height int, pack, player string) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:         width,
		ScreenH:         height,
		MaxWrongGuesses: appConfig.Game.MaxWrongGuesses,
		Pack:            pack,
		Player:          player,
	}
}

// defaultPlayer returns the OS user name, or "player".
func defaultPlayer() string {
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return core.DefaultConfig().Player
}
