package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/iamasit07/connect4-minimax/internal/service/game"
	"github.com/iamasit07/connect4-minimax/pkg/auth"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
)

type Handler struct {
	ConnManager    *ConnectionManager
	SessionManager *game.SessionManager
	Tokens         *auth.Issuer
	Upgrader       websocket.Upgrader
}

func NewHandler(cm *ConnectionManager, sm *game.SessionManager, issuer *auth.Issuer) *Handler {
	return &Handler{
		ConnManager:    cm,
		SessionManager: sm,
		Tokens:         issuer,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Serve adapts the handler to a gin route.
func (h *Handler) Serve(c *gin.Context) {
	h.HandleWebSocket(c.Writer, c.Request)
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn)
}

func (h *Handler) handleConnection(conn *websocket.Conn) {
	conn.SetReadDeadline(time.Now().Add(readTimeout))

	done := make(chan struct{})
	defer close(done)

	// Keep-alive pinger
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	// 1. Wait for the init frame carrying the game token
	_, data, err := conn.ReadMessage()
	if err != nil {
		log.Printf("[WS] Read error during init: %v", err)
		conn.Close()
		return
	}

	var init ClientMessage
	if err := json.Unmarshal(data, &init); err != nil || init.Type != TypeInit || init.Token == "" {
		log.Printf("[WS] Missing initialization or token")
		conn.WriteJSON(ServerMessage{Type: TypeError, Message: "Expected init message with token"})
		conn.Close()
		return
	}

	claims, err := h.Tokens.ValidateGameToken(init.Token)
	if err != nil {
		log.Printf("[WS] Invalid token during init: %v", err)
		conn.WriteJSON(ServerMessage{Type: TypeError, Message: "Invalid or expired game token"})
		conn.Close()
		return
	}
	gameID := claims.GameID

	session, ok := h.SessionManager.GetSession(context.Background(), gameID)
	if !ok {
		conn.WriteJSON(ServerMessage{Type: TypeError, Message: game.ErrSessionNotFound.Error()})
		conn.Close()
		return
	}

	h.ConnManager.AddConnection(gameID, conn)
	log.Printf("[WS] Connection initialized for game %s", gameID)

	defer func() {
		log.Printf("[WS] Connection closed for game %s", gameID)
		h.ConnManager.RemoveConnectionIfMatching(gameID, conn)
	}()

	state := session.Snapshot().View()
	h.ConnManager.SendMessage(gameID, ServerMessage{Type: TypeGameState, GameID: gameID, State: &state})

	// 2. Main message loop
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Game %s disconnected unexpectedly: %v", gameID, err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			h.ConnManager.SendMessage(gameID, ServerMessage{Type: TypeError, Message: "Invalid message format"})
			continue
		}

		if !h.processMessage(gameID, session, msg) {
			return
		}
	}
}

// processMessage routes a single frame. It returns false when the connection
// should be closed.
func (h *Handler) processMessage(gameID string, session *game.Session, msg ClientMessage) bool {
	ctx := context.Background()

	switch msg.Type {
	case TypeMakeMove:
		var raw string
		if len(msg.Column) > 0 {
			raw = game.RawColumn(msg.Column)
		}

		result, err := session.HandleMove(ctx, raw)
		if err != nil {
			h.ConnManager.SendMessage(gameID, ServerMessage{Type: TypeError, Message: err.Error()})
			// the session was dropped while this connection held it
			return !errors.Is(err, game.ErrSessionNotFound)
		}

		state := result.State.View()
		h.ConnManager.SendMessage(gameID, ServerMessage{
			Type:           TypeMoveMade,
			GameID:         gameID,
			HumanColumn:    result.HumanColumn,
			ComputerColumn: result.ComputerColumn,
			State:          &state,
		})
		if result.State.Game.IsFinished() {
			h.ConnManager.SendMessage(gameID, ServerMessage{
				Type:    TypeGameOver,
				GameID:  gameID,
				Message: state.Message,
				State:   &state,
			})
		}

	case TypeGetState:
		state := session.Snapshot().View()
		h.ConnManager.SendMessage(gameID, ServerMessage{Type: TypeGameState, GameID: gameID, State: &state})

	case TypeAbandon:
		if err := h.SessionManager.RemoveSession(ctx, gameID); err != nil && !errors.Is(err, game.ErrSessionNotFound) {
			log.Printf("[WS] Failed to abandon game %s: %v", gameID, err)
		}
		h.ConnManager.SendMessage(gameID, ServerMessage{Type: TypeAbandoned, GameID: gameID})
		return false

	default:
		h.ConnManager.SendMessage(gameID, ServerMessage{Type: TypeError, Message: "Unknown message type"})
	}
	return true
}
