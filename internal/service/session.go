package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/repository"
)

type SessionService interface {
	Resume(ctx context.Context, sessionID string) (*entity.Board, error)
	Pause(ctx context.Context, sessionID string, board *entity.Board) error
	Discard(ctx context.Context, sessionID string) error
}

type snapshotRepo interface {
	Save(ctx context.Context, sessionID string, snapshot entity.Snapshot) error
	GetByID(ctx context.Context, sessionID string) (entity.Snapshot, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

type sessionService struct {
	logger       *slog.Logger
	snapshotRepo snapshotRepo
}

func NewSessionService(logger *slog.Logger, snapshotRepo snapshotRepo) SessionService {
	return &sessionService{
		logger:       logger.With("component", "session"),
		snapshotRepo: snapshotRepo,
	}
}

// NewSessionID issues an identifier for a session that has none yet.
func NewSessionID() string {
	return uuid.New().String()
}

// Resume builds the board for a session from its last snapshot. A session
// without a snapshot starts a new game.
func (that *sessionService) Resume(ctx context.Context, sessionID string) (*entity.Board, error) {
	log := that.logger.With("method", "Resume", "sessionID", sessionID)

	snapshot, err := that.snapshotRepo.GetByID(ctx, sessionID)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		log.Debug("no snapshot stored, starting a new game")
		return entity.NewBoard(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	board := entity.Restore(snapshot)
	if snapshot.Display != board.Message() {
		log.Debug("stored display differs from restored board", "stored", snapshot.Display, "derived", board.Message())
	}

	log.Info("session resumed", "status", board.Status().String())

	return board, nil
}

// Pause persists the board so a later Resume can rebuild it.
func (that *sessionService) Pause(ctx context.Context, sessionID string, board *entity.Board) error {
	if err := that.snapshotRepo.Save(ctx, sessionID, board.Snapshot()); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	that.logger.Info("session paused", "sessionID", sessionID, "status", board.Status().String())

	return nil
}

func (that *sessionService) Discard(ctx context.Context, sessionID string) error {
	err := that.snapshotRepo.DeleteByID(ctx, sessionID)
	if err != nil && !errors.Is(err, repository.ErrSnapshotNotFound) {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}
