package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
)

const BoardSize = 9

type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusTied
)

func (that Status) String() string {
	switch that {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusTied:
		return "tied"
	default:
		return fmt.Sprintf("status(%d)", int(that))
	}
}

const TieMessage = "tie game"

// WinCombos are the rows, columns and diagonals of the board.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the turn and outcome state machine of a single game. It is not
// safe for concurrent use; every UI session owns its own board.
type Board struct {
	spaces       [BoardSize]Space
	currentTurn  Marker
	status       Status
	winner       Marker
	winningLines [][3]int
}

func NewBoard() *Board {
	return &Board{
		currentTurn: MarkerX,
		status:      StatusInProgress,
	}
}

// CheckMove reports why a move on cell would be rejected, or nil when it
// would be accepted.
func (that *Board) CheckMove(cell int) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.spaces[cell].IsLocked() {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// AttemptMove claims cell for the current player. A rejected move returns
// false and leaves the board untouched.
func (that *Board) AttemptMove(cell int) bool {
	if that.CheckMove(cell) != nil {
		return false
	}

	mover := that.currentTurn
	if !that.spaces[cell].Claim(mover) {
		return false
	}

	that.updateGameState(mover)
	if that.status == StatusInProgress {
		that.currentTurn = mover.Opponent()
	}

	return true
}

// Reset starts a new game with X to move.
func (that *Board) Reset() {
	for i := range that.spaces {
		that.spaces[i].Clear()
	}

	that.currentTurn = MarkerX
	that.status = StatusInProgress
	that.winner = NoMarker
	that.winningLines = nil
}

// updateGameState derives the status after a claim. A win takes priority
// over a full board. When mover is NoMarker the owner of the first
// completed line is taken as the winner.
func (that *Board) updateGameState(mover Marker) {
	lines := that.completedLines()
	if mover == NoMarker && len(lines) > 0 {
		mover = that.spaces[lines[0][0]].Owner()
	}

	var won [][3]int
	for _, line := range lines {
		if that.spaces[line[0]].Owner() != mover {
			continue
		}

		for _, cell := range line {
			that.spaces[cell].MarkAsWinner()
		}
		won = append(won, line)
	}

	switch {
	// one player wins
	case len(won) > 0:
		that.status = StatusWon
		that.winner = mover
		that.winningLines = won
		for i := range that.spaces {
			that.spaces[i].lock()
		}
	// tie
	case that.isFull():
		that.status = StatusTied
	// game continues
	default:
		that.status = StatusInProgress
	}
}

func (that *Board) completedLines() [][3]int {
	var lines [][3]int
	for _, combo := range WinCombos {
		a, b, c := that.spaces[combo[0]].Owner(), that.spaces[combo[1]].Owner(), that.spaces[combo[2]].Owner()
		if a != NoMarker && a == b && b == c {
			lines = append(lines, combo)
		}
	}

	return lines
}

func (that *Board) isFull() bool {
	for i := range that.spaces {
		if !that.spaces[i].IsClaimed() {
			return false
		}
	}

	return true
}

// Space returns a copy of the space at cell. Out-of-range cells yield an
// empty space.
func (that *Board) Space(cell int) Space {
	if cell < 0 || cell >= BoardSize {
		return Space{}
	}
	return that.spaces[cell]
}

func (that *Board) Spaces() [BoardSize]Space {
	return that.spaces
}

// CurrentTurn is the player to move. Once the game is over it keeps the
// value it had when the last move was made.
func (that *Board) CurrentTurn() Marker {
	return that.currentTurn
}

func (that *Board) Status() Status {
	return that.status
}

// Winner is NoMarker unless the status is StatusWon.
func (that *Board) Winner() Marker {
	return that.winner
}

func (that *Board) WinningLines() [][3]int {
	lines := make([][3]int, len(that.winningLines))
	copy(lines, that.winningLines)
	return lines
}

func (that *Board) IsFinished() bool {
	return that.status != StatusInProgress
}

// Message is the status line shown to the players.
func (that *Board) Message() string {
	switch that.status {
	case StatusWon:
		return fmt.Sprintf("%s wins", that.winner)
	case StatusTied:
		return TieMessage
	default:
		return fmt.Sprintf("%s turn", that.currentTurn)
	}
}
