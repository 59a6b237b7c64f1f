package view

import "github.com/rocketscienceinc/tictactoe-board/internal/entity"

// State collects a rendered board into a value that can be sent as JSON.
type State struct {
	Spaces      [entity.BoardSize]SpaceState `json:"spaces"`
	Message     string                       `json:"message"`
	Status      string                       `json:"status"`
	CurrentTurn entity.Marker                `json:"current_turn,omitempty"`
	Winner      entity.Marker                `json:"winner,omitempty"`
}

func (that *State) RenderSpace(space SpaceState) {
	if space.Index < 0 || space.Index >= len(that.Spaces) {
		return
	}
	that.Spaces[space.Index] = space
}

func (that *State) RenderStatus(message string) {
	that.Message = message
}

// NewState renders board into a fresh State. The turn is left out once the
// game is over.
func NewState(board *entity.Board) *State {
	state := &State{
		Status: board.Status().String(),
		Winner: board.Winner(),
	}

	if !board.IsFinished() {
		state.CurrentTurn = board.CurrentTurn()
	}

	Render(board, state)

	return state
}
