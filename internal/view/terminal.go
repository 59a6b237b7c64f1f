package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

const (
	winnerColor = "10" // bright green
	lockedColor = "8"  // grey
)

// Terminal draws the board as a 3x3 grid. Free spaces show their index so
// the player knows what to type.
type Terminal struct {
	out    *termenv.Output
	spaces [entity.BoardSize]SpaceState
}

func NewTerminal(w io.Writer, opts ...termenv.OutputOption) *Terminal {
	return &Terminal{
		out: termenv.NewOutput(w, opts...),
	}
}

func (that *Terminal) RenderSpace(space SpaceState) {
	if space.Index < 0 || space.Index >= len(that.spaces) {
		return
	}
	that.spaces[space.Index] = space
}

// RenderStatus flushes the collected spaces followed by the status line.
func (that *Terminal) RenderStatus(message string) {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			cells = append(cells, " "+that.cell(that.spaces[row*3+col])+" ")
		}
		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")
	}

	sb.WriteString(that.out.String(message).Bold().String())
	sb.WriteString("\n")

	fmt.Fprint(that.out, sb.String())
}

func (that *Terminal) cell(space SpaceState) string {
	switch {
	case space.Winning:
		return that.out.String(space.Owner.String()).Foreground(that.out.Color(winnerColor)).Bold().String()
	case space.Claimed:
		return that.out.String(space.Owner.String()).String()
	case space.Locked:
		return that.out.String(" ").Foreground(that.out.Color(lockedColor)).String()
	default:
		return that.out.String(strconv.Itoa(space.Index)).Faint().String()
	}
}
