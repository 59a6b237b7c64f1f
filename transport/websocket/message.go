package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-board/internal/view"
)

const (
	actionConnect = "connect"
	actionTurn    = "game:turn"
	actionNew     = "game:new"
	actionLeave   = "game:leave"
	actionState   = "game:state"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	SessionID string `json:"session_id,omitempty"`
	Cell      *int   `json:"cell,omitempty"`
}

type ResponsePayload struct {
	SessionID string      `json:"session_id,omitempty"`
	Game      *view.State `json:"game,omitempty"`
	Error     string      `json:"error,omitempty"`
}
