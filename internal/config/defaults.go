package config

import (
	_ "embed"
)

//go:embed defaults/hangman.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			MaxWrongGuesses: 7,
			Pack:            "default",
		},
		Storage: StorageConfig{
			DBPath: "~/.hangman/scores.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.hangman/hangman.log",
		},
		SSH: SSHConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
