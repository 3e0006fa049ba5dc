package game

import (
	"time"

	"github.com/iamasit07/connect4-minimax/internal/domain"
	"github.com/iamasit07/connect4-minimax/internal/render"
)

// StateView is the client-facing form of a snapshot. Columns are reported
// 1-based, as players enter them.
type StateView struct {
	GameID       string    `json:"gameId"`
	Difficulty   string    `json:"difficulty"`
	Board        [][]int   `json:"board"`
	Turn         string    `json:"turn"`
	Status       string    `json:"status"`
	Message      string    `json:"message"`
	Winner       string    `json:"winner,omitempty"`
	MoveCount    int       `json:"moveCount"`
	LegalColumns []int     `json:"legalColumns"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (snap Snapshot) View() StateView {
	g := snap.Game
	legal := make([]int, 0, domain.Columns)
	if !g.IsFinished() {
		for _, col := range g.Board.OpenColumns() {
			legal = append(legal, col+1)
		}
	}

	view := StateView{
		GameID:       snap.GameID,
		Difficulty:   snap.Difficulty,
		Board:        g.Board.Ints(),
		Turn:         g.Turn.String(),
		Status:       g.Status.String(),
		Message:      render.StatusMessage(g.Status),
		MoveCount:    g.MoveCount,
		LegalColumns: legal,
		UpdatedAt:    snap.UpdatedAt,
	}
	if w := g.Winner(); w != domain.Empty {
		view.Winner = w.String()
	}
	return view
}
