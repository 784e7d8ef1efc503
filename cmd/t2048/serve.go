package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server so players can connect and play 2048 remotely.

Every connection plays its own game. Finished games and the best score
are stored in the server's database.

Examples:
  t2048 serve
  t2048 serve --address :2222
  t2048 serve --host-key ~/.ssh/t2048_host_key

With --seed every session gets the same tile sequence.

Players connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "address", "", "Address to listen on (overrides server.address)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (overrides server.host_key_path)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle connection timeout (overrides server.idle_timeout)")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", -1, "Sessions allowed per address, 0 for no limit (overrides server.max_sessions_per_ip)")
}

// serveConfig applies the serve flags on top of the loaded configuration.
func serveConfig() tui.SSHServerConfig {
	cfg := tui.ServerConfigFrom(appConfig, flagSeed)
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}
	if flagMaxSessions >= 0 {
		cfg.MaxSessionsPerIP = flagMaxSessions
	}
	return cfg
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := serveConfig()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048-ssh",
		Level:           appConfig.LogLevel(),
	})

	tracker, store, closeStore := openTracker(logger)
	defer closeStore()

	var recorder tui.GameRecorder
	if store != nil {
		recorder = store
	}

	server, err := tui.NewSSHServer(cfg, tracker, recorder, logger)
	if err != nil {
		return err
	}

	logger.Info("best score loaded", "best", tracker.Best())
	return server.ListenAndServe()
}
