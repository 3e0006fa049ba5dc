package domain

// Game is the full state of one match. Copying a Game value yields a fully
// independent state; the search relies on this.
type Game struct {
	Board     Board  `json:"board"`
	Turn      Cell   `json:"turn"`
	Status    Status `json:"status"`
	MoveCount int    `json:"moveCount"`
}

func NewGame() Game {
	return Game{
		Turn:   Black,
		Status: InProgress,
	}
}

// CanDrop reports whether raw names a column (1-based) that still has room.
func (g *Game) CanDrop(raw string) bool {
	col, ok := ParseColumn(raw)
	return ok && g.Board.IsOpen(col)
}

// CanDropColumn is CanDrop for an already parsed 1-based column.
func (g *Game) CanDropColumn(column int) bool {
	return g.Board.IsOpen(column - 1)
}

// ApplyMove drops the side to move into the column named by raw. It returns
// false and leaves the game untouched when the move is not legal.
func (g *Game) ApplyMove(raw string) bool {
	col, ok := ParseColumn(raw)
	if !ok {
		return false
	}
	return g.ApplyColumn(col + 1)
}

// ApplyColumn is ApplyMove for an already parsed 1-based column.
func (g *Game) ApplyColumn(column int) bool {
	_, err := g.Move(column)
	return err == nil
}

// Move plays a 1-based column and returns the row the piece landed on.
// It does not check whether the game is already over; like ApplyMove it only
// requires the column to have room.
func (g *Game) Move(column int) (int, error) {
	if column < 1 || column > Columns {
		return -1, ErrInvalidColumn
	}

	row, err := g.Board.Drop(column-1, g.Turn)
	if err != nil {
		return -1, err
	}

	g.MoveCount++
	g.Turn = g.Turn.Opponent()
	g.Status = EvaluateStatus(&g.Board)
	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status.IsFinished()
}

// Winner returns the winning side, or Empty for a draw or an unfinished game.
func (g *Game) Winner() Cell {
	switch g.Status {
	case BlackWins:
		return Black
	case WhiteWins:
		return White
	default:
		return Empty
	}
}
