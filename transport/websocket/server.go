package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

var errSessionClosed = errors.New("session closed by client")

type sessionService interface {
	Resume(ctx context.Context, sessionID string) (*entity.Board, error)
	Pause(ctx context.Context, sessionID string, board *entity.Board) error
	Discard(ctx context.Context, sessionID string) error
}

type handlerFunc func(ctx context.Context, conn *connection, message *Message) error

type Server struct {
	logger   *slog.Logger
	sessions sessionService
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

// New builds the server. allowedOrigins restricts the Origin of handshakes;
// when empty every origin is accepted.
func New(logger *slog.Logger, sessions sessionService, allowedOrigins []string) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionTurn] = server.handleTurn
	server.handlers[actionNew] = server.handleNewGame
	server.handlers[actionLeave] = server.handleLeave

	return server
}

func checkOrigin(allowedOrigins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		if len(allowedOrigins) == 0 {
			return true
		}

		return slices.Contains(allowedOrigins, r.Header.Get("Origin"))
	}
}

// Handler exposes the upgrade endpoint, mainly for tests.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection and runs the session on it.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	wsConn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("unable to upgrade", "error", err)
		return
	}
	defer wsConn.Close()

	log.Info("WebSocket connection established")

	conn := &connection{ws: wsConn}
	defer that.pause(conn)

	if err = that.handleMessages(ctx, conn); err != nil && !errors.Is(err, errSessionClosed) &&
		!websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "handleMessages")

	for {
		// returned as is so close errors can be told apart
		_, body, err := conn.ws.ReadMessage()
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(body, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			if err = conn.sendError("", "invalid message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = conn.sendError(message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, conn, &message); err != nil {
			return err
		}
	}
}

// pause persists the board owned by the connection, if any.
func (that *Server) pause(conn *connection) {
	if conn.board == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := that.sessions.Pause(ctx, conn.sessionID, conn.board); err != nil {
		that.logger.Error("failed to pause session", "sessionID", conn.sessionID, "error", err)
	}
}
