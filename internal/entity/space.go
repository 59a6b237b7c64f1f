package entity

// Space is one cell of the board. Queries work on copies, changes need
// the board's own space.
type Space struct {
	owner  Marker
	winner bool
	locked bool
}

// Claim sets the owner if the space is free and marker is a player.
func (that *Space) Claim(marker Marker) bool {
	if !marker.IsPlayer() || that.IsLocked() {
		return false
	}

	that.owner = marker
	return true
}

// Clear releases the space.
func (that *Space) Clear() {
	that.owner = NoMarker
	that.winner = false
	that.locked = false
}

func (that *Space) MarkAsWinner() {
	that.winner = true
}

// lock prevents further claims until Clear.
func (that *Space) lock() {
	that.locked = true
}

func (that Space) Owner() Marker {
	return that.owner
}

func (that Space) IsClaimed() bool {
	return that.owner != NoMarker
}

func (that Space) IsWinningSpace() bool {
	return that.winner
}

// IsLocked reports whether the space rejects claims: it is either owned or
// the game it belongs to has been won.
func (that Space) IsLocked() bool {
	return that.locked || that.IsClaimed()
}
