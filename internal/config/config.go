// Package config provides YAML-based configuration loading for the
// hangman platform.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config contains all configuration for the hangman platform.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// GameConfig defines gameplay parameters.
type GameConfig struct {
	MaxWrongGuesses int    `yaml:"max_wrong_guesses"`
	Pack            string `yaml:"pack"`       // Registered word pack ID
	WordsFile       string `yaml:"words_file"` // Overrides Pack when set
}

// StorageConfig defines where finished runs are persisted.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Used while the full-screen UI owns the terminal
}

// SSHConfig defines the remote play server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return lvl, nil
}

// Validate checks that all values are usable.
func (c Config) Validate() error {
	if c.Game.MaxWrongGuesses < 1 || c.Game.MaxWrongGuesses > 26 {
		return fmt.Errorf("%w: max_wrong_guesses must be in 1..26, got %d", ErrInvalid, c.Game.MaxWrongGuesses)
	}
	if c.Game.Pack == "" && c.Game.WordsFile == "" {
		return fmt.Errorf("%w: either game.pack or game.words_file is required", ErrInvalid)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("%w: storage.db_path is required", ErrInvalid)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("%w: ssh.idle_timeout_minutes must not be negative", ErrInvalid)
	}
	return nil
}
