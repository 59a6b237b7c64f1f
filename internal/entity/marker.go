package entity

import "strings"

// Marker identifies a player. The zero value NoMarker means "unclaimed" and
// is never a player.
type Marker string

const (
	NoMarker Marker = ""
	MarkerX  Marker = "X"
	MarkerO  Marker = "O"
)

// IsPlayer reports whether the marker is X or O.
func (that Marker) IsPlayer() bool {
	return that == MarkerX || that == MarkerO
}

// Opponent returns the other player's marker.
func (that Marker) Opponent() Marker {
	if that == MarkerX {
		return MarkerO
	}
	return MarkerX
}

func (that Marker) String() string {
	return string(that)
}

// ParseMarker accepts "X" or "O" (surrounding spaces ignored). Anything else
// yields NoMarker and false.
func ParseMarker(raw string) (Marker, bool) {
	switch mark := Marker(strings.TrimSpace(raw)); mark {
	case MarkerX, MarkerO:
		return mark, true
	default:
		return NoMarker, false
	}
}
