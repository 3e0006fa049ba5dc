package bot

import (
	"github.com/iamasit07/connect4-minimax/internal/domain"
)

// Minimax scores g by walking every column at every level down to depth
// plies. Child values are summed (negated on the minimizing side) rather than
// extremized, and full columns are not skipped: applying them is a no-op, so
// the unchanged position is searched again one ply deeper.
func (e *Engine) Minimax(g domain.Game, maximizing bool, depth int) int {
	switch g.Status {
	case domain.BlackWins:
		return e.cfg.BlackWinScore
	case domain.WhiteWins:
		return e.cfg.WhiteWinScore
	case domain.Draw:
		return e.cfg.DrawScore
	}
	if depth <= 0 {
		return e.cfg.UndeterminedScore
	}

	score := 0
	for col := 1; col <= domain.Columns; col++ {
		next := g
		next.ApplyColumn(col)
		if maximizing {
			score += e.Minimax(next, false, depth-1)
		} else {
			score -= e.Minimax(next, true, depth-1)
		}
	}
	return score
}
