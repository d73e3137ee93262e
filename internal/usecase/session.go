package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type bot interface {
	Mark() entity.Mark
	NextMove(board entity.Board) (int, error)
}

// StatePublisher receives every state change of a session, in order.
// It is called with the session locked and must not call back into the session.
type StatePublisher interface {
	Publish(ctx context.Context, state entity.SessionState) error
}

type Options struct {
	AutoRestart      bool
	OpponentDelay    time.Duration
	CountdownSeconds int
	CountdownTick    time.Duration
}

// Session owns one board and everything around it: mode, turn, auto-restart countdown and the pending timers.
type Session struct {
	logger     *slog.Logger
	bot        bot
	scheduler  Scheduler
	publishers []StatePublisher
	options    Options

	// used by timer callbacks, the caller's context is gone by then
	baseCtx context.Context

	mu          sync.Mutex
	id          string
	mode        entity.Mode
	board       entity.Board
	turn        entity.Mark
	autoRestart bool
	countdown   *int
	generation  uint64
	taskSeq     uint64
	pending     map[uint64]Timer
	closed      bool
}

func NewSession(
	ctx context.Context,
	logger *slog.Logger,
	bot bot,
	scheduler Scheduler,
	options Options,
	publishers ...StatePublisher,
) *Session {
	id := uuid.NewString()

	return &Session{
		logger:     logger.With("component", "session", "sessionID", id),
		bot:        bot,
		scheduler:  scheduler,
		publishers: publishers,
		options:    options,
		baseCtx:    ctx,

		id:          id,
		mode:        entity.ModeMenu,
		turn:        entity.PlayerX,
		autoRestart: options.AutoRestart,
		pending:     make(map[uint64]Timer),
	}
}

func (that *Session) ID() string {
	return that.id
}

// State - returns the current snapshot.
func (that *Session) State() entity.SessionState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.stateLocked()
}

// StartNewGame - starts a fresh game in the given mode, pending timers of the previous game are cancelled.
func (that *Session) StartNewGame(ctx context.Context, mode entity.Mode) (entity.SessionState, error) {
	if !mode.IsValid() {
		return that.State(), fmt.Errorf("%w: %q", apperror.ErrInvalidMode, mode)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return that.stateLocked(), apperror.ErrSessionClosed
	}

	that.mode = mode
	that.newGameLocked()

	that.logger.Info("new game started", "mode", mode, "generation", that.generation)

	return that.notifyLocked(ctx), nil
}

// Reset - clears the board and keeps the mode.
func (that *Session) Reset(ctx context.Context) (entity.SessionState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return that.stateLocked(), apperror.ErrSessionClosed
	}

	if that.mode == entity.ModeMenu {
		return that.stateLocked(), apperror.ErrNoGameMode
	}

	that.newGameLocked()

	that.logger.Info("game reset", "generation", that.generation)

	return that.notifyLocked(ctx), nil
}

func (that *Session) BackToMenu(ctx context.Context) (entity.SessionState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return that.stateLocked(), apperror.ErrSessionClosed
	}

	that.mode = entity.ModeMenu
	that.cancelPendingLocked()
	that.board = entity.Board{}
	that.turn = entity.PlayerX
	that.countdown = nil

	return that.notifyLocked(ctx), nil
}

// Press - a human move on cell. Rejected moves leave the state unchanged.
func (that *Session) Press(ctx context.Context, cell int) (entity.SessionState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return that.stateLocked(), apperror.ErrSessionClosed
	}

	if that.mode == entity.ModeMenu {
		return that.stateLocked(), apperror.ErrNoGameMode
	}

	if tictactoe.Outcome(that.board).IsFinished() {
		return that.stateLocked(), apperror.ErrGameFinished
	}

	if that.mode == entity.ModeComputer && that.turn == that.bot.Mark() {
		return that.stateLocked(), apperror.ErrNotYourTurn
	}

	if err := that.playLocked(cell, that.turn); err != nil {
		return that.stateLocked(), fmt.Errorf("failed make turn: %w", err)
	}

	return that.notifyLocked(ctx), nil
}

// ToggleAutoRestart - switching it off stops a running countdown, switching it on after a finished game starts one.
func (that *Session) ToggleAutoRestart(ctx context.Context) (entity.SessionState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return that.stateLocked(), apperror.ErrSessionClosed
	}

	that.autoRestart = !that.autoRestart

	if that.countdown != nil {
		// a running countdown means the game is over, so no opponent move can be pending
		that.cancelPendingLocked()
		that.countdown = nil
	}

	that.startCountdownLocked()

	return that.notifyLocked(ctx), nil
}

// Close - cancels all pending timers, callbacks that still fire are no-ops.
func (that *Session) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.closed = true
	that.cancelPendingLocked()
}

func (that *Session) newGameLocked() {
	that.cancelPendingLocked()

	that.board = entity.Board{}
	that.turn = entity.PlayerX
	that.countdown = nil

	that.scheduleBotLocked()
}

// playLocked - applies the move, switches the turn or freezes it once the game is over.
func (that *Session) playLocked(cell int, mark entity.Mark) error {
	board, err := tictactoe.ApplyMove(that.board, cell, mark)
	if err != nil {
		return err
	}

	that.board = board

	outcome := tictactoe.Outcome(board)
	that.logger.Debug("move accepted", "cell", cell, "mark", mark, "outcome", outcome)

	if outcome.IsFinished() {
		that.logger.Info("game finished", "outcome", outcome, "generation", that.generation)
		that.startCountdownLocked()
		return nil
	}

	that.turn = mark.Opponent()
	that.scheduleBotLocked()

	return nil
}

func (that *Session) scheduleBotLocked() {
	if that.mode != entity.ModeComputer || that.turn != that.bot.Mark() {
		return
	}

	that.scheduleLocked(that.options.OpponentDelay, that.botMoveLocked)
}

func (that *Session) botMoveLocked() {
	log := that.logger.With("method", "botMove")

	cell, err := that.bot.NextMove(that.board)
	if err != nil {
		log.Error("bot failed to choose a cell", "error", err)
		return
	}

	if err = that.playLocked(cell, that.bot.Mark()); err != nil {
		log.Error("bot failed to make turn", "cell", cell, "error", err)
		return
	}

	that.notifyLocked(that.baseCtx)
}

func (that *Session) startCountdownLocked() {
	if !that.autoRestart || !tictactoe.Outcome(that.board).IsFinished() {
		return
	}

	seconds := that.options.CountdownSeconds
	that.countdown = &seconds

	that.scheduleLocked(that.options.CountdownTick, that.countdownTickLocked)
}

func (that *Session) countdownTickLocked() {
	if that.countdown == nil {
		return
	}

	if *that.countdown <= 1 {
		that.newGameLocked()
		that.logger.Info("game restarted automatically", "generation", that.generation)
		that.notifyLocked(that.baseCtx)

		return
	}

	next := *that.countdown - 1
	that.countdown = &next

	that.scheduleLocked(that.options.CountdownTick, that.countdownTickLocked)
	that.notifyLocked(that.baseCtx)
}

// scheduleLocked - runs task after delay unless the session moved to another generation in the meantime.
func (that *Session) scheduleLocked(delay time.Duration, task func()) {
	generation := that.generation

	that.taskSeq++
	taskID := that.taskSeq

	that.pending[taskID] = that.scheduler.AfterFunc(delay, func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		delete(that.pending, taskID)

		if that.closed || generation != that.generation {
			that.logger.Debug("stale task skipped", "taskGeneration", generation, "generation", that.generation)
			return
		}

		task()
	})
}

func (that *Session) cancelPendingLocked() {
	that.generation++

	for taskID, timer := range that.pending {
		timer.Stop()
		delete(that.pending, taskID)
	}
}

func (that *Session) stateLocked() entity.SessionState {
	outcome := tictactoe.Outcome(that.board)

	state := entity.SessionState{
		ID:          that.id,
		Mode:        that.mode,
		Board:       that.board,
		Turn:        that.turn,
		Outcome:     outcome,
		Winner:      outcome.Winner(),
		AutoRestart: that.autoRestart,
		Generation:  that.generation,
	}

	if that.countdown != nil {
		countdown := *that.countdown
		state.Countdown = &countdown
	}

	state.Status = StatusLine(state, that.bot.Mark())

	return state
}

func (that *Session) notifyLocked(ctx context.Context) entity.SessionState {
	state := that.stateLocked()

	for _, publisher := range that.publishers {
		if err := publisher.Publish(ctx, state); err != nil {
			that.logger.Error("failed to publish state", "error", err)
		}
	}

	return state
}
