package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hangman SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a pack picker menu and
its own game. Runs are stored per-server (all users share the same
leaderboard) under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hangman/host_key

Examples:
  hangman serve                           # Listen on :23235 with auto-generated key
  hangman serve --ssh :2222               # Listen on port 2222
  hangman serve --host-key ./my_host_key  # Use specific host key
  hangman serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	sshCfg := appConfig.SSH
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		sshCfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		sshCfg.HostKey = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		sshCfg.IdleTimeoutMinutes = flagIdleTimeout
	}

	cfg := tui.SSHServerConfig{
		Address:         sshCfg.Address,
		HostKeyPath:     sshCfg.HostKey,
		DBPath:          appConfig.Storage.DBPath,
		IdleTimeout:     time.Duration(sshCfg.IdleTimeoutMinutes) * time.Minute,
		MaxWrongGuesses: appConfig.Game.MaxWrongGuesses,
		Pack:            appConfig.Game.Pack,
		Logger:          logger.WithPrefix("hangman-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting hangman SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
