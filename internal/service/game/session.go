package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iamasit07/connect4-minimax/internal/domain"
	"github.com/iamasit07/connect4-minimax/internal/service/bot"
)

// moveChooser picks White's reply. *bot.Engine implements it.
type moveChooser interface {
	ChooseColumn(g domain.Game) (int, error)
}

var _ moveChooser = (*bot.Engine)(nil)

// Session is one human (Black) versus computer (White) game.
type Session struct {
	GameID     string
	Difficulty string
	Game       domain.Game
	CreatedAt  time.Time
	UpdatedAt  time.Time
	mu         sync.Mutex
	engine     moveChooser
	manager    *SessionManager

	// removed is set once the manager drops the session; later moves on a
	// held pointer must not write it back to the cache.
	removed bool
}

// Snapshot is a point-in-time copy of a session, safe to serialize.
type Snapshot struct {
	GameID     string      `json:"gameId"`
	Difficulty string      `json:"difficulty"`
	Game       domain.Game `json:"game"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// MoveResult describes the human move and the computer's reply, if any.
// Columns are 1-based; ComputerColumn is 0 when the computer did not move.
type MoveResult struct {
	HumanColumn    int      `json:"humanColumn"`
	HumanRow       int      `json:"humanRow"`
	ComputerColumn int      `json:"computerColumn"`
	ComputerRow    int      `json:"computerRow"`
	State          Snapshot `json:"state"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		GameID:     s.GameID,
		Difficulty: s.Difficulty,
		Game:       s.Game,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// evictIfIdle marks the session removed when it has been idle since cutoff.
func (s *Session) evictIfIdle(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.UpdatedAt.Before(cutoff) {
		return false
	}
	s.removed = true
	return true
}

func (s *Session) markRemoved() {
	s.mu.Lock()
	s.removed = true
	s.mu.Unlock()
}

// HandleMove plays the human move named by raw and, if the game is still
// running, the computer's reply. On error the game is left as it was.
func (s *Session) HandleMove(ctx context.Context, raw string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.removed {
		return nil, ErrSessionNotFound
	}
	if s.Game.IsFinished() {
		return nil, domain.ErrGameOver
	}
	if s.Game.Turn != domain.Black {
		return nil, ErrNotPlayerTurn
	}

	col, ok := domain.ParseColumn(raw)
	if !ok {
		return nil, domain.ErrInvalidColumn
	}

	prev := s.Game
	row, err := s.Game.Move(col + 1)
	if err != nil {
		return nil, err
	}
	result := &MoveResult{HumanColumn: col + 1, HumanRow: row}

	if !s.Game.IsFinished() {
		aiCol, err := s.engine.ChooseColumn(s.Game)
		if err != nil {
			s.Game = prev
			return nil, fmt.Errorf("computer reply for game %s: %w", s.GameID, err)
		}
		aiRow, err := s.Game.Move(aiCol)
		if err != nil {
			s.Game = prev
			return nil, fmt.Errorf("computer reply for game %s: %w", s.GameID, err)
		}
		result.ComputerColumn = aiCol
		result.ComputerRow = aiRow
	}

	s.UpdatedAt = s.manager.now()
	result.State = s.snapshotLocked()

	s.manager.persist(ctx, result.State)
	return result, nil
}
