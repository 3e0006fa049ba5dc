package domain

import (
	"strconv"
	"strings"
)

// Board is the 6x7 grid; row 0 is the top and row 5 the bottom.
// It is a value type, so assignment produces an independent copy.
type Board [Rows][Columns]Cell

// ParseColumn converts raw user input ("1".."7") into a 0-based column index.
func ParseColumn(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return -1, false
	}
	return n - 1, n >= 1 && n <= Columns
}

// IsOpen reports whether a piece can still be dropped into the 0-based column.
func (b *Board) IsOpen(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// here b[0] represents the top row (0 -> top and 5 -> bottom)
	return b[0][column] == Empty
}

// Drop shifts the piece from top to bottom till it reaches the end or
// another disk, and returns the row it landed on.
func (b *Board) Drop(column int, piece Cell) (int, error) {
	if column < 0 || column >= Columns {
		return -1, ErrInvalidColumn
	}
	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			b[row][column] = piece
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

func (b *Board) IsTopRowFull() bool {
	for c := 0; c < Columns; c++ {
		if b[0][c] == Empty {
			return false
		}
	}

	return true
}

// OpenColumns lists the 0-based columns that still accept a piece, in order.
func (b *Board) OpenColumns() []int {
	open := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b[0][col] == Empty {
			open = append(open, col)
		}
	}
	return open
}

// Ints converts the board to a plain integer grid for JSON payloads.
func (b *Board) Ints() [][]int {
	out := make([][]int, Rows)
	for r := range out {
		out[r] = make([]int, Columns)
		for c := 0; c < Columns; c++ {
			out[r][c] = int(b[r][c])
		}
	}
	return out
}
