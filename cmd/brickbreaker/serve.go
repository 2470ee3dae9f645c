package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own launcher and its own game session.
Scores and notes are stored per server (all users share them).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.brickbreaker/host_key

Examples:
  brickbreaker serve                           # Listen on :23234 with auto-generated key
  brickbreaker serve --ssh :2222               # Listen on port 2222
  brickbreaker serve --host-key ./my_host_key  # Use specific host key
  brickbreaker serve --db ./brickbreaker.db    # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("brickbreaker-ssh", false)
	if err != nil {
		return err
	}
	defer closeLog()

	notesCfg := loadNotesConfig(logger)
	store := openStoreOrWarn(logger)
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Session: tui.SessionOptions{
			GameID:     breakout.GameID,
			Store:      store,
			NotesKey:   notesCfg.StorageKey,
			NotesLimit: notesCfg.ListLimit,
		},
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting brickbreaker SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		return err
	}
	return nil
}
