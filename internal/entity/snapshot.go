package entity

// Snapshot is the flat record a board is persisted as between sessions.
type Snapshot struct {
	Spaces      [BoardSize]string `json:"spaces"`
	Display     string            `json:"display"`
	CurrentTurn string            `json:"current_turn"`
}

func (that *Board) Snapshot() Snapshot {
	snapshot := Snapshot{
		Display:     that.Message(),
		CurrentTurn: that.currentTurn.String(),
	}

	for i := range that.spaces {
		snapshot.Spaces[i] = that.spaces[i].Owner().String()
	}

	return snapshot
}

// Restore rebuilds a board from a snapshot. Claims are replayed in index
// order and the outcome is evaluated again, so the stored display text is
// never trusted. Malformed markers are treated as empty spaces and a
// malformed turn as X's turn.
func Restore(snapshot Snapshot) *Board {
	board := NewBoard()

	if turn, ok := ParseMarker(snapshot.CurrentTurn); ok {
		board.currentTurn = turn
	}

	for i, raw := range snapshot.Spaces {
		if mark, ok := ParseMarker(raw); ok {
			board.spaces[i].Claim(mark)
		}
	}

	board.updateGameState(NoMarker)

	return board
}
