package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type session interface {
	State() entity.SessionState
	StartNewGame(ctx context.Context, mode entity.Mode) (entity.SessionState, error)
	Reset(ctx context.Context) (entity.SessionState, error)
	BackToMenu(ctx context.Context) (entity.SessionState, error)
	Press(ctx context.Context, cell int) (entity.SessionState, error)
	ToggleAutoRestart(ctx context.Context) (entity.SessionState, error)
}

var errQuit = errors.New("quit")

// Server is a line based front-end: it reads commands from in and renders every session state to out.
type Server struct {
	logger *slog.Logger
	in     io.Reader

	mu  sync.Mutex
	out io.Writer

	handlers map[string]func(ctx context.Context, session session, args []string) error
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		in:     in,
		out:    out,

		handlers: make(map[string]func(context.Context, session, []string) error),
	}

	server.handlers["pvp"] = server.handleNewGame(entity.ModePlayer)
	server.handlers["cpu"] = server.handleNewGame(entity.ModeComputer)
	server.handlers["reset"] = server.handleReset
	server.handlers["auto"] = server.handleToggleAutoRestart
	server.handlers["menu"] = server.handleMenu
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit

	return server
}

// Publish - renders the state, called by the session on every change.
func (that *Server) Publish(_ context.Context, state entity.SessionState) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, err := io.WriteString(that.out, Render(state)); err != nil {
		return fmt.Errorf("failed to render state: %w", err)
	}

	return nil
}

// Run - processes commands until quit, end of input or ctx is done.
func (that *Server) Run(ctx context.Context, session session) error {
	log := that.logger.With("method", "Run")

	if err := that.Publish(ctx, session.State()); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read command: %w", err)
				}

				log.Info("input closed")
				return nil
			}

			err := that.handleLine(ctx, session, line)
			if errors.Is(err, errQuit) {
				return nil
			}

			if err != nil {
				log.Error("error processing command", "command", line, "error", err)
			}
		}
	}
}

func (that *Server) handleLine(ctx context.Context, session session, line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	if cell, err := strconv.Atoi(fields[0]); err == nil {
		return that.handlePress(ctx, session, cell)
	}

	handler, ok := that.handlers[fields[0]]
	if !ok {
		that.print("unknown command %q\n", fields[0])
		return that.handleHelp(ctx, session, nil)
	}

	return handler(ctx, session, fields[1:])
}

// handlePress - cells are numbered 1-9 for humans. A rejected move is ignored, the board simply does not change.
func (that *Server) handlePress(ctx context.Context, session session, cell int) error {
	_, err := session.Press(ctx, cell-1)
	if errors.Is(err, apperror.ErrMoveRejected) {
		that.logger.Debug("move ignored", "cell", cell, "reason", err)
		return nil
	}

	return err
}

func (that *Server) handleNewGame(mode entity.Mode) func(context.Context, session, []string) error {
	return func(ctx context.Context, session session, _ []string) error {
		if _, err := session.StartNewGame(ctx, mode); err != nil {
			return fmt.Errorf("failed to start game: %w", err)
		}

		return nil
	}
}

func (that *Server) handleReset(ctx context.Context, session session, _ []string) error {
	_, err := session.Reset(ctx)
	if errors.Is(err, apperror.ErrNoGameMode) {
		that.print("choose a game mode first: pvp or cpu\n")
		return nil
	}

	return err
}

func (that *Server) handleToggleAutoRestart(ctx context.Context, session session, _ []string) error {
	_, err := session.ToggleAutoRestart(ctx)
	return err
}

func (that *Server) handleMenu(ctx context.Context, session session, _ []string) error {
	_, err := session.BackToMenu(ctx)
	return err
}

func (that *Server) handleHelp(_ context.Context, _ session, _ []string) error {
	that.print(helpText)
	return nil
}

func (that *Server) handleQuit(_ context.Context, _ session, _ []string) error {
	return errQuit
}

func (that *Server) print(format string, args ...any) {
	that.mu.Lock()
	defer that.mu.Unlock()

	_, _ = fmt.Fprintf(that.out, format, args...)
}
