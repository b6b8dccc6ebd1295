package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config file checked after the user file.
const LocalPath = "configs/hangman.yaml"

// Environment variables that override file values.
const (
	EnvDBPath          = "HANGMAN_DB"
	EnvPack            = "HANGMAN_PACK"
	EnvWordsFile       = "HANGMAN_WORDS"
	EnvMaxWrongGuesses = "HANGMAN_MAX_WRONG_GUESSES"
	EnvLogLevel        = "HANGMAN_LOG_LEVEL"
	EnvSSHAddr         = "HANGMAN_SSH_ADDR"
)

// Load loads the configuration and applies environment overrides.
// Search order: customPath -> ~/.hangman/config.yaml -> ./configs/hangman.yaml -> embedded default.
// A .env file in the working directory is read for overrides, real
// environment variables win over it.
func Load(customPath string) (Config, error) {
	cfg, err := LoadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, EnvLookup(".env")); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFile loads the configuration from files only.
// Values missing from the chosen file keep their defaults.
func LoadFile(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// Unreadable or malformed candidates fall through to the next one.
	for _, path := range []string{userConfigPath("config.yaml"), LocalPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := Default()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// EnvLookup returns a lookup function over the process environment with the
// given dotenv file as a fallback. A missing or malformed dotenv file is ignored.
func EnvLookup(dotenvPath string) func(string) (string, bool) {
	dotenv, err := godotenv.Read(dotenvPath)
	if err != nil {
		dotenv = nil
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

// ApplyEnv overrides cfg with HANGMAN_* variables found by lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str(EnvDBPath, &cfg.Storage.DBPath)
	str(EnvPack, &cfg.Game.Pack)
	str(EnvWordsFile, &cfg.Game.WordsFile)
	str(EnvLogLevel, &cfg.Log.Level)
	str(EnvSSHAddr, &cfg.SSH.Address)

	if v, ok := lookup(EnvMaxWrongGuesses); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalid, EnvMaxWrongGuesses, v)
		}
		cfg.Game.MaxWrongGuesses = n
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hangman", filename)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
