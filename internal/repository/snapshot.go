package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

const (
	fieldDisplay     = "display"
	fieldCurrentTurn = "current_turn"
	fieldSpacePrefix = "space"
)

type SnapshotRepository interface {
	Save(ctx context.Context, sessionID string, snapshot entity.Snapshot) error
	GetByID(ctx context.Context, sessionID string) (entity.Snapshot, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

// dbSnapshot keeps every session as a Redis hash with one field per space.
type dbSnapshot struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotRepository returns a Redis backed repository. A zero ttl keeps
// snapshots forever.
func NewSnapshotRepository(client *redis.Client, ttl time.Duration) SnapshotRepository {
	return &dbSnapshot{
		client: client,
		ttl:    ttl,
	}
}

func snapshotKey(sessionID string) string {
	return "session:" + sessionID
}

func spaceField(index int) string {
	return fieldSpacePrefix + strconv.Itoa(index)
}

func (that *dbSnapshot) Save(ctx context.Context, sessionID string, snapshot entity.Snapshot) error {
	key := snapshotKey(sessionID)

	values := make(map[string]any, entity.BoardSize+2)
	for i, owner := range snapshot.Spaces {
		values[spaceField(i)] = owner
	}
	values[fieldDisplay] = snapshot.Display
	values[fieldCurrentTurn] = snapshot.CurrentTurn

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, values)
		if that.ttl > 0 {
			pipe.Expire(ctx, key, that.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

func (that *dbSnapshot) GetByID(ctx context.Context, sessionID string) (entity.Snapshot, error) {
	fields, err := that.client.HGetAll(ctx, snapshotKey(sessionID)).Result()
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to get snapshot by id: %w", err)
	}

	if len(fields) == 0 {
		return entity.Snapshot{}, ErrSnapshotNotFound
	}

	// absent fields stay empty, Restore treats them as free spaces
	var snapshot entity.Snapshot
	for i := range snapshot.Spaces {
		snapshot.Spaces[i] = fields[spaceField(i)]
	}
	snapshot.Display = fields[fieldDisplay]
	snapshot.CurrentTurn = fields[fieldCurrentTurn]

	return snapshot, nil
}

func (that *dbSnapshot) DeleteByID(ctx context.Context, sessionID string) error {
	deleted, err := that.client.Del(ctx, snapshotKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete snapshot by id: %w", err)
	}

	if deleted == 0 {
		return ErrSnapshotNotFound
	}

	return nil
}
