package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/service"
	"github.com/rocketscienceinc/tictactoe-board/internal/view"
)

// connection is one UI session. It owns the board between connect and
// disconnect.
type connection struct {
	ws        *websocket.Conn
	sessionID string
	board     *entity.Board
}

func (that *connection) send(action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = that.ws.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *connection) sendState(errText string) error {
	return that.send(actionState, ResponsePayload{
		SessionID: that.sessionID,
		Game:      view.NewState(that.board),
		Error:     errText,
	})
}

func (that *connection) sendError(action, errText string) error {
	if action != "" {
		errText = fmt.Sprintf("%s: %s", action, errText)
	}

	return that.send(actionError, ResponsePayload{
		SessionID: that.sessionID,
		Error:     errText,
	})
}

func decodePayload(message *Message) (RequestPayload, error) {
	var payload RequestPayload
	if len(message.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}

func (that *Server) handleConnect(ctx context.Context, conn *connection, message *Message) error {
	log := that.logger.With("method", "handleConnect")

	if conn.board != nil {
		return conn.sendError(message.Action, "already connected")
	}

	payload, err := decodePayload(message)
	if err != nil {
		log.Error("bad payload", "error", err)
		return conn.sendError(message.Action, "invalid payload")
	}

	sessionID := payload.SessionID
	if sessionID == "" {
		sessionID = service.NewSessionID()
	}

	board, err := that.sessions.Resume(ctx, sessionID)
	if err != nil {
		log.Error("failed to resume session", "sessionID", sessionID, "error", err)
		return conn.sendError(message.Action, "failed to resume session")
	}

	conn.sessionID = sessionID
	conn.board = board

	log.Info("session connected", "sessionID", sessionID)

	return conn.sendState("")
}

func (that *Server) handleTurn(_ context.Context, conn *connection, message *Message) error {
	if conn.board == nil {
		return conn.sendError(message.Action, "not connected")
	}

	payload, err := decodePayload(message)
	if err != nil {
		that.logger.Error("bad payload", "method", "handleTurn", "error", err)
		return conn.sendError(message.Action, "invalid payload")
	}

	if payload.Cell == nil {
		return conn.sendError(message.Action, "cell is required")
	}

	if err = conn.board.CheckMove(*payload.Cell); err != nil {
		return conn.sendState(err.Error())
	}

	conn.board.AttemptMove(*payload.Cell)

	return conn.sendState("")
}

func (that *Server) handleNewGame(_ context.Context, conn *connection, message *Message) error {
	if conn.board == nil {
		return conn.sendError(message.Action, "not connected")
	}

	conn.board.Reset()

	return conn.sendState("")
}

// handleLeave forgets the session: its snapshot is removed and the board is
// not persisted on disconnect.
func (that *Server) handleLeave(ctx context.Context, conn *connection, message *Message) error {
	if conn.board == nil {
		return conn.sendError(message.Action, "not connected")
	}

	if err := that.sessions.Discard(ctx, conn.sessionID); err != nil {
		that.logger.Error("failed to discard session", "sessionID", conn.sessionID, "error", err)
		return conn.sendError(message.Action, "failed to leave the game")
	}

	conn.board = nil

	if err := conn.send(actionLeave, ResponsePayload{SessionID: conn.sessionID}); err != nil {
		return err
	}

	return errSessionClosed
}
