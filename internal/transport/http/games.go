package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connect4-minimax/internal/domain"
	"github.com/iamasit07/connect4-minimax/internal/render"
	"github.com/iamasit07/connect4-minimax/internal/service/game"
	"github.com/iamasit07/connect4-minimax/pkg/auth"
)

type GameHandler struct {
	Sessions *game.SessionManager
	Tokens   *auth.Issuer
}

func NewGameHandler(sm *game.SessionManager, issuer *auth.Issuer) *GameHandler {
	return &GameHandler{Sessions: sm, Tokens: issuer}
}

type createGameRequest struct {
	Difficulty string `json:"difficulty"`
}

type createGameResponse struct {
	GameID string         `json:"gameId"`
	Token  string         `json:"token"`
	State  game.StateView `json:"state"`
}

type moveRequest struct {
	// Column is accepted either as a JSON string ("4") or a number (4).
	Column json.RawMessage `json:"column"`
}

type moveResponse struct {
	HumanColumn    int            `json:"humanColumn"`
	ComputerColumn int            `json:"computerColumn,omitempty"`
	State          game.StateView `json:"state"`
}

func (h *GameHandler) CreateGame(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session, err := h.Sessions.CreateSession(c.Request.Context(), req.Difficulty)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.Tokens.GenerateGameToken(session.GameID)
	if err != nil {
		log.Printf("[HTTP] Failed to sign token for game %s: %v", session.GameID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	c.JSON(http.StatusCreated, createGameResponse{
		GameID: session.GameID,
		Token:  token,
		State:  session.Snapshot().View(),
	})
}

func (h *GameHandler) GetGame(c *gin.Context) {
	session, ok := h.Sessions.GetSession(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": game.ErrSessionNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, session.Snapshot().View())
}

func (h *GameHandler) GetBoard(c *gin.Context) {
	session, ok := h.Sessions.GetSession(c.Request.Context(), c.Param("id"))
	if !ok {
		c.String(http.StatusNotFound, "%s", game.ErrSessionNotFound.Error())
		return
	}
	snap := session.Snapshot()
	c.String(http.StatusOK, "%s%s\n", render.Board(&snap.Game.Board), render.StatusMessage(snap.Game.Status))
}

func (h *GameHandler) MakeMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Column) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session, ok := h.Sessions.GetSession(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": game.ErrSessionNotFound.Error()})
		return
	}

	result, err := session.HandleMove(c.Request.Context(), game.RawColumn(req.Column))
	if err != nil {
		c.JSON(moveErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, moveResponse{
		HumanColumn:    result.HumanColumn,
		ComputerColumn: result.ComputerColumn,
		State:          result.State.View(),
	})
}

func (h *GameHandler) DeleteGame(c *gin.Context) {
	if err := h.Sessions.RemoveSession(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func moveErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidColumn), errors.Is(err, domain.ErrColumnFull):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrGameOver), errors.Is(err, game.ErrNotPlayerTurn):
		return http.StatusConflict
	case errors.Is(err, game.ErrSessionNotFound):
		return http.StatusNotFound
	default:
		log.Printf("[HTTP] Move failed: %v", err)
		return http.StatusInternalServerError
	}
}
