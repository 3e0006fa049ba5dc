package domain

import "testing"

func TestEvaluateStatus_Directions(t *testing.T) {
	cases := []struct {
		name  string
		cells [][2]int
		piece Cell
		want  Status
	}{
		{"horizontal", [][2]int{{5, 3}, {5, 4}, {5, 5}, {5, 6}}, Black, BlackWins},
		{"vertical", [][2]int{{2, 6}, {3, 6}, {4, 6}, {5, 6}}, White, WhiteWins},
		{"diagonal up", [][2]int{{5, 0}, {4, 1}, {3, 2}, {2, 3}}, White, WhiteWins},
		{"diagonal down", [][2]int{{2, 3}, {3, 4}, {4, 5}, {5, 6}}, Black, BlackWins},
		{"three only", [][2]int{{5, 0}, {5, 1}, {5, 2}}, Black, InProgress},
		{"broken row", [][2]int{{5, 0}, {5, 1}, {5, 2}, {5, 4}}, Black, InProgress},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b Board
			for _, rc := range tc.cells {
				b[rc[0]][rc[1]] = tc.piece
			}
			if got := EvaluateStatus(&b); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEvaluateStatus_ScanOrderDecidesTie(t *testing.T) {
	// White has a row of four on row 4, Black on row 5. Row 4 is scanned
	// first, so White is reported.
	var b Board
	for c := 0; c < 4; c++ {
		b[5][c] = Black
		b[4][c] = White
	}
	if got := EvaluateStatus(&b); got != WhiteWins {
		t.Fatalf("expected white (first in scan order), got %v", got)
	}

	// Same row: Black's run starts further left than White's.
	var b2 Board
	for c := 0; c < 3; c++ {
		b2[5][c] = Black
	}
	b2[4][0] = Black
	b2[3][0] = Black
	b2[2][0] = Black
	for c := 3; c < 7; c++ {
		b2[2][c] = White
	}
	if got := EvaluateStatus(&b2); got != BlackWins {
		t.Fatalf("expected black (column 0 scanned before column 3), got %v", got)
	}
}

func TestEvaluateStatus_FullTopRowWithoutWinIsDraw(t *testing.T) {
	var b Board
	for c := 0; c < Columns; c++ {
		if c%2 == 0 {
			b[0][c] = Black
		} else {
			b[0][c] = White
		}
	}
	if got := EvaluateStatus(&b); got != Draw {
		t.Fatalf("expected draw, got %v", got)
	}
	b[0][3] = Empty
	if got := EvaluateStatus(&b); got != InProgress {
		t.Fatalf("expected in progress, got %v", got)
	}
}

func TestParseColumn(t *testing.T) {
	if col, ok := ParseColumn("1"); !ok || col != 0 {
		t.Fatalf("ParseColumn(1) = %d, %v", col, ok)
	}
	if col, ok := ParseColumn("7"); !ok || col != 6 {
		t.Fatalf("ParseColumn(7) = %d, %v", col, ok)
	}
	if _, ok := ParseColumn("seven"); ok {
		t.Fatal("expected non-numeric input to be rejected")
	}
}
