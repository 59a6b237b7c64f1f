// Package view is the rendering boundary of the board. UI layers implement
// BoardView and are driven from derived board state only.
package view

import "github.com/rocketscienceinc/tictactoe-board/internal/entity"

// SpaceState is everything a UI needs to draw one space. Winning and Locked
// are rendering hints: a winning space is also locked but should look
// different from a merely locked one.
type SpaceState struct {
	Index   int           `json:"index"`
	Owner   entity.Marker `json:"owner"`
	Claimed bool          `json:"claimed"`
	Winning bool          `json:"winning"`
	Locked  bool          `json:"locked"`
}

type BoardView interface {
	RenderSpace(space SpaceState)
	RenderStatus(message string)
}

// Render pushes the board state into view, spaces first in index order.
func Render(board *entity.Board, view BoardView) {
	for i, space := range board.Spaces() {
		view.RenderSpace(SpaceState{
			Index:   i,
			Owner:   space.Owner(),
			Claimed: space.IsClaimed(),
			Winning: space.IsWinningSpace(),
			Locked:  space.IsLocked(),
		})
	}

	view.RenderStatus(board.Message())
}
