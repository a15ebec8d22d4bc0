package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/core"
)

type sessionIDKey struct{}

// SSHServer serves one snake game per SSH session.
type SSHServer struct {
	config  config.Config
	address string
	server  *ssh.Server
	logger  *log.Logger
}

// NewSSHServer creates an SSH server from the ssh section of cfg.
// An empty host key path means ~/.termsnake/host_key; the key is generated on
// first start.
func NewSSHServer(cfg config.Config, logger *log.Logger) (*SSHServer, error) {
	hostKeyPath, err := config.ExpandHome(cfg.SSH.HostKey)
	if err != nil {
		return nil, err
	}
	if hostKeyPath == "" {
		dir, err := config.DataDir()
		if err != nil {
			return nil, err
		}
		hostKeyPath = filepath.Join(dir, "host_key")
	}

	// Ensure host key directory exists
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	srv := &SSHServer{
		config:  cfg,
		address: cfg.SSH.Address,
		logger:  logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.SSH.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}
	if timeout := cfg.IdleTimeout(); timeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(timeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	srv.server = server
	return srv, nil
}

// teaHandler creates a game sized to the session's PTY.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	logger := s.logger.With("session", sessionID(sess))

	pty, _, ok := sess.Pty()
	if !ok {
		logger.Warn("no PTY requested", "user", sess.User())
		wish.Fatalln(sess, "termsnake needs a terminal: connect with ssh -t")
		return nil, nil
	}

	model, err := newSessionModel(s.config, pty.Window.Width, pty.Window.Height, logger)
	if err != nil {
		logger.Warn("cannot start game", "width", pty.Window.Width, "height", pty.Window.Height, "error", err)
		wish.Fatalln(sess, "cannot start game:", err)
		return nil, nil
	}
	board := model.Game().Bounds()
	logger.Debug("game created", "width", board.Width, "height", board.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// sessionBounds resolves the board for a client terminal of known size.
// Unlike a local run it never falls back to the default size, which could be
// larger than the client's screen.
func sessionBounds(cfg config.Config, termW, termH int) (core.Bounds, error) {
	boardH := termH - HelpHeight
	if termW < 2 || boardH < 2 {
		return core.Bounds{}, fmt.Errorf("%w: terminal is %dx%d", core.ErrBoundsTooSmall, termW, termH)
	}
	return cfg.Bounds(termW, boardH)
}

// newSessionModel builds the game for one client terminal.
func newSessionModel(cfg config.Config, termW, termH int, logger *log.Logger) (Model, error) {
	b, err := sessionBounds(cfg, termW, termH)
	if err != nil {
		return Model{}, err
	}
	return NewModel(cfg, b, logger)
}

// loggingMiddleware tags the session with an id and logs its lifetime.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id := uuid.New().String()
		sess.Context().SetValue(sessionIDKey{}, id)

		start := time.Now()
		s.logger.Info("session started",
			"session", id,
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"session", id,
			"user", sess.User(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	}
}

func sessionID(sess ssh.Session) string {
	if id, ok := sess.Context().Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.address)

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
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

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.address
}
