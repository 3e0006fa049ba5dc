package render

import (
	"strings"

	"github.com/iamasit07/connect4-minimax/internal/domain"
)

// Two-column glyphs for each cell.
const (
	EmptyGlyph = "  "
	BlackGlyph = "🟦"
	WhiteGlyph = "🟠"
)

func Glyph(c domain.Cell) string {
	switch c {
	case domain.Black:
		return BlackGlyph
	case domain.White:
		return WhiteGlyph
	default:
		return EmptyGlyph
	}
}

// Board renders the column header followed by one line per row.
func Board(b *domain.Board) string {
	var sb strings.Builder

	sb.WriteString(" ")
	for c := 1; c <= domain.Columns; c++ {
		if c > 1 {
			sb.WriteString(" ")
		}
		sb.WriteString("0")
		sb.WriteByte(byte('0' + c))
	}
	sb.WriteString("\n")

	for r := 0; r < domain.Rows; r++ {
		sb.WriteString("|")
		for c := 0; c < domain.Columns; c++ {
			sb.WriteString(Glyph(b[r][c]))
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func StatusMessage(s domain.Status) string {
	switch s {
	case domain.BlackWins:
		return "Black play wins the game!"
	case domain.WhiteWins:
		return "White play wins the game!"
	case domain.Draw:
		return "Draw! No one wins!"
	default:
		return "Game has not finish yet!"
	}
}
