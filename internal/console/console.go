// Package console runs a local two-player game in a terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/view"
)

const (
	commandNew  = "new"
	commandQuit = "quit"
	commandHelp = "help"
)

type sessionService interface {
	Resume(ctx context.Context, sessionID string) (*entity.Board, error)
	Pause(ctx context.Context, sessionID string, board *entity.Board) error
}

type Console struct {
	logger    *slog.Logger
	sessions  sessionService
	sessionID string

	in   io.Reader
	out  io.Writer
	view view.BoardView
}

func New(logger *slog.Logger, sessions sessionService, sessionID string, in io.Reader, out io.Writer, boardView view.BoardView) *Console {
	return &Console{
		logger:    logger.With("component", "console"),
		sessions:  sessions,
		sessionID: sessionID,
		in:        in,
		out:       out,
		view:      boardView,
	}
}

// Run plays until quit, end of input or ctx is canceled. The board is
// persisted on the way out unless the session could not be resumed.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run", "sessionID", that.sessionID)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	board, err := that.sessions.Resume(ctx, that.sessionID)
	if err != nil {
		// a board that was not resumed is never paused
		log.Error("could not resume session, starting an unsaved game", "error", err)
		board = entity.NewBoard()
	} else {
		defer func() {
			// ctx may already be canceled here
			if err := that.sessions.Pause(context.WithoutCancel(ctx), that.sessionID, board); err != nil {
				log.Error("could not pause session", "error", err)
			}
		}()
	}

	lines := make(chan string)
	go that.readLines(ctx, lines)

	view.Render(board, that.view)

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok || !that.execute(board, line) {
				return nil
			}
		}
	}
}

func (that *Console) readLines(ctx context.Context, lines chan<- string) {
	defer close(lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}

	if err := scanner.Err(); err != nil {
		that.logger.Error("could not read input", "error", err)
	}
}

// execute applies one command and reports whether to keep going.
func (that *Console) execute(board *entity.Board, line string) bool {
	switch command := strings.ToLower(strings.TrimSpace(line)); command {
	case "":
		return true
	case commandQuit:
		return false
	case commandHelp:
		that.printf("type a space number 0-8 to move, %q for a new game, %q to leave\n", commandNew, commandQuit)
		return true
	case commandNew:
		board.Reset()
	default:
		cell, err := strconv.Atoi(command)
		if err != nil {
			that.printf("unknown command %q, type %q\n", command, commandHelp)
			return true
		}

		if err = board.CheckMove(cell); err != nil {
			that.printf("%v\n", err)
			return true
		}

		board.AttemptMove(cell)
	}

	view.Render(board, that.view)

	return true
}

func (that *Console) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}
