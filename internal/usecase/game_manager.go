package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager applies one engine command per call: it loads the session,
// mutates its game, saves it back and returns it with a fresh view. Commands
// on a session are driven by a single connection, one at a time.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo) *GameManager {
	return &GameManager{
		logger: logger,

		sessionRepo: sessionRepo,
	}
}

// GetOrCreateSession resolves a session by ID, creating a fresh one when the
// ID is empty or the stored session has expired.
func (that *GameManager) GetOrCreateSession(ctx context.Context, id string) (*entity.Session, error) {
	if id == "" {
		return that.createSession(ctx, uuid.NewString())
	}

	session, err := that.sessionRepo.GetByID(ctx, id)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return that.createSession(ctx, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	return session, nil
}

// GetSession returns an existing session; it never creates one.
func (that *GameManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	return session, nil
}

// Play places the current mover's mark on the given cell. Occupied cells,
// cells outside the board and moves after the game ended leave the session
// unchanged.
func (that *GameManager) Play(ctx context.Context, sessionID string, cell int) (*entity.Session, error) {
	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Game.Play(cell)

	if err = that.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// JumpTo moves the session's cursor to the given history step.
func (that *GameManager) JumpTo(ctx context.Context, sessionID string, step int) (*entity.Session, error) {
	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err = session.Game.JumpTo(step); err != nil {
		return nil, fmt.Errorf("failed to jump to step %d: %w", step, err)
	}

	if err = that.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Undo steps the session's cursor back by one; no-op at the initial board.
func (that *GameManager) Undo(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Game.Undo()

	if err = that.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Redo steps the session's cursor forward by one; no-op at the latest board.
func (that *GameManager) Redo(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Game.Redo()

	if err = that.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Reset replaces the session's game with a fresh one.
func (that *GameManager) Reset(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Game.Reset()

	if err = that.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (that *GameManager) createSession(ctx context.Context, id string) (*entity.Session, error) {
	log := that.logger.With("method", "createSession")

	session := entity.NewSession(id)

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Info("session created", "session_id", session.ID)

	return session, nil
}

func (that *GameManager) saveSession(ctx context.Context, session *entity.Session) error {
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}
