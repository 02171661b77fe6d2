package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/match"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.pong/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Match is the configuration every session plays with.
	Match config.PongConfig

	// TickRate is the simulation rate for sessions.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Match:       config.DefaultPongConfig(),
		TickRate:    60,
	}
}

// SSHServer wraps a Wish SSH server that hosts one match per session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server. store may be nil to play without history.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "pong-ssh",
		})
	}
	if err := cfg.Match.Validate(); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".pong", "host_key")
	}

	// Ensure host key directory exists
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model, err := s.newSession(sshSession.User(), cfg)
	if err != nil {
		s.logger.Error("cannot start session", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// newSession builds a player-vs-CPU match for one remote user.
func (s *SSHServer) newSession(user string, cfg core.RuntimeConfig) (SessionModel, error) {
	logger := s.logger.With("user", user)
	game, err := pong.New(s.config.Match,
		pong.WithDrivers("human", "cpu"),
		pong.WithLogger(logger),
		pong.WithPresenter(match.PresenterFunc(func(r match.Result) {
			logger.Info("match finished", "winner", fmt.Sprintf("P%d", r.WinnerCode()),
				"score", fmt.Sprintf("%d-%d", r.LeftScore, r.RightScore))
		})),
	)
	if err != nil {
		return SessionModel{}, err
	}
	return NewSessionModel(game, s.store, cfg, logger)
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
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

// SessionModel manages a remote session flow: match <-> history.
type SessionModel struct {
	game        Model
	history     HistoryModel
	store       *storage.Store
	width       int
	height      int
	showHistory bool
}

// NewSessionModel creates a session and starts its match.
func NewSessionModel(game *pong.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (SessionModel, error) {
	gm, err := NewModel(game, store, cfg, logger)
	if err != nil {
		return SessionModel{}, err
	}
	gm.embedded = true

	return SessionModel{
		game:   gm,
		store:  store,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}, nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wsm.Width, wsm.Height
		newGame, _ := m.game.Update(msg)
		m.game = newGame.(Model)
		if m.showHistory {
			newHistory, _ := m.history.Update(msg)
			m.history = newHistory.(HistoryModel)
		}
		return m, nil
	}

	if m.showHistory {
		return m.updateHistory(msg)
	}
	return m.updateGame(msg)
}

// updateGame handles updates while the match is on screen.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	m.game = newModel.(Model)

	if m.game.BackPressed() {
		m.game.backPressed = false
		m.history = NewHistoryModel(m.store, m.width, m.height)
		m.history.embedded = true
		m.showHistory = true
	}
	return m, cmd
}

// updateHistory handles updates while the history is on screen.
// Ticks keep flowing to the paused or finished match.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m.updateGame(msg)
	}

	newModel, cmd := m.history.Update(msg)
	m.history = newModel.(HistoryModel)

	if m.history.IsGoingBack() {
		m.showHistory = false
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.showHistory {
		return m.history.View()
	}
	return m.game.View()
}
