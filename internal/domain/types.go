package domain

// Cell is the content of a single board position. Black and White double
// as the side to move.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

const (
	Rows    = 6
	Columns = 7
)

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Opponent returns the other side. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// to represent the game status
type Status uint8

const (
	InProgress Status = iota
	BlackWins
	WhiteWins
	Draw
)

func (s Status) String() string {
	switch s {
	case BlackWins:
		return "black_wins"
	case WhiteWins:
		return "white_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

func (s Status) IsFinished() bool {
	return s != InProgress
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn Error = "invalid column"
	ErrColumnFull    Error = "column is full"
	ErrGameOver      Error = "game is already finished"
	ErrNoLegalMove   Error = "no legal move available"
)
