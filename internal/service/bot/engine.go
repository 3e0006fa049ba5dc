package bot

import (
	"fmt"
	"log"
	"sync"

	"github.com/iamasit07/connect4-minimax/internal/domain"
)

// Config holds the search depth and the heuristic values of terminal
// positions. The values are scored from White's (the computer's) side.
type Config struct {
	Depth             int
	BlackWinScore     int
	WhiteWinScore     int
	DrawScore         int
	UndeterminedScore int

	// Parallel scores the top-level candidates concurrently. The chosen
	// column is the same as in sequential mode.
	Parallel bool

	// Verbose logs every candidate score.
	Verbose bool
}

func DefaultConfig() Config {
	return Config{
		Depth:             4,
		BlackWinScore:     -4,
		WhiteWinScore:     1,
		DrawScore:         0,
		UndeterminedScore: 0,
	}
}

// Engine picks moves for White.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	if cfg.Depth < 0 {
		cfg.Depth = 0
	}
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Candidate is a legal top-level move and its search score.
type Candidate struct {
	Column int
	Score  int
}

// Evaluate scores every column that is currently legal, in column order.
func (e *Engine) Evaluate(g domain.Game) []Candidate {
	candidates := make([]Candidate, 0, domain.Columns)
	for col := 1; col <= domain.Columns; col++ {
		if g.CanDropColumn(col) {
			candidates = append(candidates, Candidate{Column: col})
		}
	}

	score := func(c *Candidate) {
		next := g
		next.ApplyColumn(c.Column)
		c.Score = e.Minimax(next, false, e.cfg.Depth)
	}

	if e.cfg.Parallel {
		var wg sync.WaitGroup
		for i := range candidates {
			wg.Add(1)
			go func(c *Candidate) {
				defer wg.Done()
				score(c)
			}(&candidates[i])
		}
		wg.Wait()
	} else {
		for i := range candidates {
			score(&candidates[i])
		}
	}

	return candidates
}

// ChooseColumn returns the 1-based column White should play. A candidate whose
// score equals the win value is taken immediately; otherwise the first
// strictly highest score wins. The first candidate seeds the selection, so
// any configured score range works.
func (e *Engine) ChooseColumn(g domain.Game) (int, error) {
	best := 0
	bestCol := -1

	for _, c := range e.Evaluate(g) {
		if e.cfg.Verbose {
			log.Printf("[BOT] position: %d score: %d", c.Column, c.Score)
		}
		if c.Score == e.cfg.WhiteWinScore {
			bestCol = c.Column
			break
		}
		if bestCol == -1 || c.Score > best {
			best = c.Score
			bestCol = c.Column
		}
	}

	if bestCol == -1 {
		return -1, domain.ErrNoLegalMove
	}
	return bestCol, nil
}

// PlayMove chooses a column and applies it to g.
func (e *Engine) PlayMove(g *domain.Game) (int, error) {
	col, err := e.ChooseColumn(*g)
	if err != nil {
		return -1, err
	}
	if _, err := g.Move(col); err != nil {
		return -1, fmt.Errorf("cannot play chosen column %d: %w", col, err)
	}
	return col, nil
}
