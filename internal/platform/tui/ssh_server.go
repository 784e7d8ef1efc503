package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/vovakirdan/tui-2048/internal/bestscore"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.t2048/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// MaxSessionsPerIP caps concurrent sessions from one address. 0 is unlimited.
	MaxSessionsPerIP int

	// Settings are the game rules for every session.
	Settings t2048.Settings
}

// ServerConfigFrom builds an SSH server config from the loaded configuration.
// A non-zero seed gives every session the same tile sequence.
func ServerConfigFrom(cfg config.Config, seed int64) SSHServerConfig {
	return SSHServerConfig{
		Address:          cfg.Server.Address,
		HostKeyPath:      cfg.Server.HostKeyPath,
		IdleTimeout:      cfg.Server.IdleTimeout,
		MaxSessionsPerIP: cfg.Server.MaxSessionsPerIP,
		Settings:         cfg.Settings(seed),
	}
}

// SSHServer wraps a Wish SSH server. Every session plays its own game;
// the best score is shared.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	tracker  *bestscore.Tracker
	recorder GameRecorder
	limiter  *SessionLimiter
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server. The tracker and recorder are shared
// by all sessions; recorder may be nil.
func NewSSHServer(cfg SSHServerConfig, tracker *bestscore.Tracker, recorder GameRecorder, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "t2048-ssh",
		})
	}
	if tracker == nil {
		tracker = bestscore.New(bestscore.NewMemoryStore(), logger)
	}

	srv := &SSHServer{
		config:   cfg,
		tracker:  tracker,
		recorder: recorder,
		limiter:  NewSessionLimiter(cfg.MaxSessionsPerIP),
		logger:   logger,
	}

	// Resolve host key path
	hostKeyPath := config.ExpandHome(cfg.HostKeyPath)
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".t2048", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if err := os.MkdirAll(hostKeyDir, 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	// The last middleware runs first
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			logging.Middleware(),
			srv.limitMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a game for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sshSession.Pty()

	model := NewModel(ModelOptions{
		Settings: s.config.Settings,
		Tracker:  s.tracker,
		Recorder: s.recorder,
		Logger:   s.logger.With("user", sshSession.User()),
		Width:    pty.Window.Width,
		Height:   pty.Window.Height,
		// Screenshots would land on the server, not the player's machine
		NoScreenshots: true,
	})

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// limitMiddleware rejects sessions beyond the per-address limit.
func (s *SSHServer) limitMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		ip := remoteIP(sshSession.RemoteAddr())

		if !s.limiter.Acquire(ip) {
			s.logger.Warn("session refused: too many sessions", "ip", ip, "limit", s.limiter.Limit())
			fmt.Fprintf(sshSession, "Too many active sessions from your address (limit %d). Please try again later.\r\n", s.limiter.Limit())
			sshSession.Exit(1)
			return
		}
		defer s.limiter.Release(ip)

		s.logger.Info("session started", "user", sshSession.User(), "ip", ip, "active", s.limiter.Active(ip))
		next(sshSession)
		s.logger.Info("session ended", "user", sshSession.User(), "ip", ip)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.Addr())

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		return fmt.Errorf("tui: SSH server failed: %w", err)
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionLimiter counts active sessions per remote address.
type SessionLimiter struct {
	mu     sync.Mutex
	limit  int
	counts map[string]int
}

// NewSessionLimiter creates a limiter. A limit of 0 or less allows any number.
func NewSessionLimiter(limit int) *SessionLimiter {
	return &SessionLimiter{limit: limit, counts: make(map[string]int)}
}

// Acquire reserves a session slot for ip.
func (l *SessionLimiter) Acquire(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.limit > 0 && l.counts[ip] >= l.limit {
		return false
	}
	l.counts[ip]++
	return true
}

// Release frees a slot taken by Acquire.
func (l *SessionLimiter) Release(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counts[ip]--
	if l.counts[ip] <= 0 {
		delete(l.counts, ip)
	}
}

// Active returns the number of sessions held by ip.
func (l *SessionLimiter) Active(ip string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.counts[ip]
}

// Limit returns the per-address limit.
func (l *SessionLimiter) Limit() int {
	return l.limit
}

// remoteIP strips the port from a remote address.
func remoteIP(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.IP.String()
	}
	return addr.String()
}
