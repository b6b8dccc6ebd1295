package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-hangman/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after files, .env, HANGMAN_* variables and
flags have been applied.

With --default, print the built-in config file instead. Save it as
~/.hangman/config.yaml or ./configs/hangman.yaml to customize.

Examples:
  hangman config
  hangman config --default > ~/.hangman/config.yaml
  HANGMAN_PACK=animals hangman config`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default config")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	data, err := yaml.Marshal(appConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
