package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/view"
)

type fakeSessions struct {
	resumed   *entity.Board
	resumeErr error
	paused    *entity.Board
}

func (that *fakeSessions) Resume(_ context.Context, _ string) (*entity.Board, error) {
	if that.resumeErr != nil {
		return nil, that.resumeErr
	}
	if that.resumed == nil {
		return entity.NewBoard(), nil
	}
	return that.resumed, nil
}

func (that *fakeSessions) Pause(_ context.Context, _ string, board *entity.Board) error {
	that.paused = board
	return nil
}

func runConsole(t *testing.T, sessions *fakeSessions, input string) string {
	t.Helper()

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	terminal := view.NewTerminal(&out, termenv.WithProfile(termenv.Ascii))

	c := New(logger, sessions, "local", strings.NewReader(input), &out, terminal)
	require.NoError(t, c.Run(context.Background()))

	return out.String()
}

func TestConsole_Run(t *testing.T) {
	t.Run("Plays a game to a win and pauses", func(t *testing.T) {
		// Given: a new session
		sessions := &fakeSessions{}

		// When: X completes the top row
		out := runConsole(t, sessions, "0\n3\n1\n4\n2\nquit\n")

		// Then: the win is shown and the finished board is persisted
		assert.Contains(t, out, "X wins")
		require.NotNil(t, sessions.paused)
		assert.Equal(t, entity.StatusWon, sessions.paused.Status())
	})

	t.Run("Rejected moves are explained", func(t *testing.T) {
		sessions := &fakeSessions{}

		out := runConsole(t, sessions, "4\n4\n12\nabc\n")

		assert.Contains(t, out, "cell is already occupied")
		assert.Contains(t, out, "invalid cell index")
		assert.Contains(t, out, `unknown command "abc"`)
		assert.Equal(t, entity.MarkerO, sessions.paused.CurrentTurn())
	})

	t.Run("New game resets the board", func(t *testing.T) {
		sessions := &fakeSessions{}

		runConsole(t, sessions, "0\n1\nnew\n")

		assert.Equal(t, entity.NewBoard(), sessions.paused)
	})

	t.Run("Resumes the stored game", func(t *testing.T) {
		// Given: a stored game where O is to move
		stored := entity.NewBoard()
		require.True(t, stored.AttemptMove(0))
		sessions := &fakeSessions{resumed: stored}

		// When: O plays
		runConsole(t, sessions, "8\n")

		// Then: the stored board was continued
		assert.Equal(t, entity.MarkerO, sessions.paused.Space(8).Owner())
		assert.Equal(t, entity.MarkerX, sessions.paused.Space(0).Owner())
	})

	t.Run("Resume failure starts a new game without saving it", func(t *testing.T) {
		// Given: the stored game cannot be read
		sessions := &fakeSessions{resumeErr: errors.New("redis down")}

		// When: a move is played on the replacement board
		out := runConsole(t, sessions, "4\nquit\n")

		// Then: the game is playable but the stored snapshot is not overwritten
		assert.Contains(t, out, "X turn")
		assert.Contains(t, out, "O turn")
		assert.Nil(t, sessions.paused)
	})
}
