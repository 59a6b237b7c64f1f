package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Snapshot(t *testing.T) {
	// Given: a game in progress
	board := NewBoard()
	playMoves(t, board, 4, 0)

	// When: a snapshot is taken
	snapshot := board.Snapshot()

	// Then: it holds the owners, the turn and the display text
	expected := Snapshot{
		Spaces:      [BoardSize]string{"O", "", "", "", "X", "", "", "", ""},
		Display:     "X turn",
		CurrentTurn: "X",
	}

	assert.Equal(t, expected, snapshot)
}

func TestRestore(t *testing.T) {
	t.Run("Round trip keeps owners, turn and status", func(t *testing.T) {
		games := map[string][]int{
			"empty":       {},
			"in progress": {4, 0, 8},
			"x wins":      {0, 3, 1, 4, 2},
			"o wins":      {0, 2, 1, 4, 8, 6},
			"tie":         {0, 1, 2, 4, 3, 5, 7, 6, 8},
			"double line": {1, 3, 2, 5, 4, 6, 8, 7, 0},
		}

		for name, moves := range games {
			t.Run(name, func(t *testing.T) {
				// Given: a board after some moves
				board := NewBoard()
				playMoves(t, board, moves...)

				// When: it is restored from its snapshot
				restored := Restore(board.Snapshot())

				// Then: the restored board matches the original
				assert.Equal(t, board, restored)
				assert.Equal(t, board.Snapshot(), restored.Snapshot())
			})
		}
	})

	t.Run("Winning highlight is recomputed", func(t *testing.T) {
		// Given: a snapshot of a won game whose display text is stale
		snapshot := Snapshot{
			Spaces:      [BoardSize]string{"X", "X", "X", "O", "O", "", "", "", ""},
			Display:     "O turn",
			CurrentTurn: "X",
		}

		// When: the board is restored
		board := Restore(snapshot)

		// Then: the win is derived from the spaces
		assert.Equal(t, StatusWon, board.Status())
		assert.Equal(t, MarkerX, board.Winner())
		assert.Equal(t, "X wins", board.Message())
		assert.True(t, board.Space(0).IsWinningSpace())
		assert.True(t, board.Space(5).IsLocked())
		assert.False(t, board.AttemptMove(5))
	})

	t.Run("Tie is recomputed", func(t *testing.T) {
		snapshot := Snapshot{
			Spaces:      [BoardSize]string{"X", "O", "X", "X", "O", "O", "O", "X", "X"},
			CurrentTurn: "X",
		}

		board := Restore(snapshot)

		assert.Equal(t, StatusTied, board.Status())
		assert.Equal(t, TieMessage, board.Message())
	})

	t.Run("Corrupt snapshot degrades to a fresh game", func(t *testing.T) {
		// Given: a snapshot with garbage everywhere
		snapshot := Snapshot{
			Spaces:      [BoardSize]string{"?", "x", "XX", "", " ", "0", "-", "null", "o"},
			Display:     "garbage",
			CurrentTurn: "Z",
		}

		// When: the board is restored
		board := Restore(snapshot)

		// Then: it is a new game
		assert.Equal(t, NewBoard(), board)
	})

	t.Run("Zero snapshot is a fresh game", func(t *testing.T) {
		assert.Equal(t, NewBoard(), Restore(Snapshot{}))
	})

	t.Run("Turn is taken from the snapshot", func(t *testing.T) {
		board := Restore(Snapshot{
			Spaces:      [BoardSize]string{"X"},
			CurrentTurn: "O",
		})

		require.Equal(t, StatusInProgress, board.Status())
		assert.Equal(t, MarkerO, board.CurrentTurn())
		assert.True(t, board.AttemptMove(1))
		assert.Equal(t, MarkerO, board.Space(1).Owner())
	})
}
