package websocket

import (
	"encoding/json"

	"github.com/iamasit07/connect4-minimax/internal/service/game"
)

// ClientMessage is a frame sent by the browser.
type ClientMessage struct {
	Type   string          `json:"type"`
	Token  string          `json:"token,omitempty"`
	Column json.RawMessage `json:"column,omitempty"`
}

// ServerMessage is a frame sent to the browser.
type ServerMessage struct {
	Type           string          `json:"type"`
	Message        string          `json:"message,omitempty"`
	GameID         string          `json:"gameId,omitempty"`
	HumanColumn    int             `json:"humanColumn,omitempty"`
	ComputerColumn int             `json:"computerColumn,omitempty"`
	State          *game.StateView `json:"state,omitempty"`
}

const (
	TypeInit      = "init"
	TypeMakeMove  = "make_move"
	TypeGetState  = "get_state"
	TypeAbandon   = "abandon_game"
	TypeGameState = "game_state"
	TypeMoveMade  = "move_made"
	TypeGameOver  = "game_over"
	TypeAbandoned = "game_abandoned"
	TypeError     = "error"
)
