package domain

// EvaluateStatus scans the whole board row by row, top to bottom and left to
// right. The first four-in-a-row encountered decides the winner; each cell is
// checked in the order horizontal, vertical, diagonal up, diagonal down.
func EvaluateStatus(b *Board) Status {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			cur := b[row][col]
			if cur == Empty {
				continue
			}

			// →
			if col <= 3 && cur == b[row][col+1] && cur == b[row][col+2] && cur == b[row][col+3] {
				return winnerStatus(cur)
			}
			// ↓
			if row <= 2 && cur == b[row+1][col] && cur == b[row+2][col] && cur == b[row+3][col] {
				return winnerStatus(cur)
			}
			// ↗
			if row >= 3 && col <= 3 && cur == b[row-1][col+1] && cur == b[row-2][col+2] && cur == b[row-3][col+3] {
				return winnerStatus(cur)
			}
			// ↘
			if row <= 2 && col <= 3 && cur == b[row+1][col+1] && cur == b[row+2][col+2] && cur == b[row+3][col+3] {
				return winnerStatus(cur)
			}
		}
	}

	if b.IsTopRowFull() {
		return Draw
	}
	return InProgress
}

func winnerStatus(c Cell) Status {
	if c == Black {
		return BlackWins
	}
	return WhiteWins
}
