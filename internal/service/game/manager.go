package game

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/connect4-minimax/internal/domain"
	"github.com/iamasit07/connect4-minimax/internal/service/bot"
	"github.com/iamasit07/connect4-minimax/pkg/uid"
)

const (
	ErrSessionNotFound   domain.Error = "session not found"
	ErrUnknownDifficulty domain.Error = "unknown difficulty"
	ErrNotPlayerTurn     domain.Error = "waiting for the computer to move"
)

const sessionKeyPrefix = "game:"

// Cache mirrors session snapshots outside the process so a restarted server
// can pick up games in progress.
type Cache interface {
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Del(ctx context.Context, keys ...string) error
}

// SessionManager manages active game sessions
type SessionManager struct {
	sessions map[string]*Session // gameID → Session
	mu       sync.RWMutex
	cache    Cache
	ttl      time.Duration
	search   bot.Config
	now      func() time.Time
}

// NewSessionManager creates a manager. cache may be nil.
func NewSessionManager(search bot.Config, cache Cache, ttl time.Duration) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		cache:    cache,
		ttl:      ttl,
		search:   search,
		now:      time.Now,
	}
}

func validDifficulty(d string) bool {
	switch d {
	case "", "easy", "medium", "hard":
		return true
	}
	return false
}

func (sm *SessionManager) newSession(gameID, difficulty string, g domain.Game, createdAt, updatedAt time.Time) *Session {
	return &Session{
		GameID:     gameID,
		Difficulty: difficulty,
		Game:       g,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
		engine:     bot.NewEngine(sm.search.WithDifficulty(difficulty)),
		manager:    sm,
	}
}

func (sm *SessionManager) CreateSession(ctx context.Context, difficulty string) (*Session, error) {
	if !validDifficulty(difficulty) {
		return nil, ErrUnknownDifficulty
	}

	now := sm.now()
	session := sm.newSession(uid.GenerateGameID(), difficulty, domain.NewGame(), now, now)

	sm.mu.Lock()
	sm.sessions[session.GameID] = session
	sm.mu.Unlock()

	log.Printf("[SESSION] Created session %s (difficulty: %q)", session.GameID, difficulty)
	sm.persist(ctx, session.Snapshot())
	return session, nil
}

// GetSession looks the game up in memory first, then in the cache. IDs that
// were never generated here are rejected without a lookup.
func (sm *SessionManager) GetSession(ctx context.Context, gameID string) (*Session, bool) {
	if !uid.IsGameID(gameID) {
		return nil, false
	}

	sm.mu.RLock()
	session, exists := sm.sessions[gameID]
	sm.mu.RUnlock()
	if exists {
		return session, true
	}

	snap, ok := sm.load(ctx, gameID)
	if !ok {
		return nil, false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	// another request may have restored it meanwhile
	if session, exists := sm.sessions[gameID]; exists {
		return session, true
	}
	session = sm.newSession(snap.GameID, snap.Difficulty, snap.Game, snap.CreatedAt, snap.UpdatedAt)
	sm.sessions[gameID] = session
	log.Printf("[SESSION] Restored session %s from cache", gameID)
	return session, true
}

func (sm *SessionManager) RemoveSession(ctx context.Context, gameID string) error {
	sm.mu.Lock()
	session, exists := sm.sessions[gameID]
	delete(sm.sessions, gameID)
	sm.mu.Unlock()
	if exists {
		session.markRemoved()
	}

	if sm.cache != nil {
		if err := sm.cache.Del(ctx, sessionKeyPrefix+gameID); err != nil {
			log.Printf("[SESSION] Warning: Failed to delete session %s from cache: %v", gameID, err)
		}
	}

	if !exists {
		return ErrSessionNotFound
	}
	log.Printf("[SESSION] Removed session %s", gameID)
	return nil
}

// CleanupIdleSessions drops sessions with no activity for longer than the
// configured TTL and returns how many were removed.
func (sm *SessionManager) CleanupIdleSessions(ctx context.Context) int {
	cutoff := sm.now().Add(-sm.ttl)

	sm.mu.Lock()
	var stale []string
	for id, session := range sm.sessions {
		if session.evictIfIdle(cutoff) {
			stale = append(stale, id)
			delete(sm.sessions, id)
		}
	}
	sm.mu.Unlock()

	if len(stale) > 0 && sm.cache != nil {
		keys := make([]string, len(stale))
		for i, id := range stale {
			keys[i] = sessionKeyPrefix + id
		}
		if err := sm.cache.Del(ctx, keys...); err != nil {
			log.Printf("[SESSION] Warning: Failed to delete idle sessions from cache: %v", err)
		}
	}
	return len(stale)
}

func (sm *SessionManager) ActiveCount() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

func (sm *SessionManager) persist(ctx context.Context, snap Snapshot) {
	if sm.cache == nil {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("[SESSION] Warning: Failed to encode session %s: %v", snap.GameID, err)
		return
	}
	if err := sm.cache.Set(ctx, sessionKeyPrefix+snap.GameID, data, sm.ttl); err != nil {
		log.Printf("[SESSION] Warning: Failed to cache session %s: %v", snap.GameID, err)
	}
}

func (sm *SessionManager) load(ctx context.Context, gameID string) (Snapshot, bool) {
	var snap Snapshot
	if sm.cache == nil {
		return snap, false
	}
	data, err := sm.cache.Get(ctx, sessionKeyPrefix+gameID)
	if err != nil {
		return snap, false
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("[SESSION] Warning: Corrupt cached session %s: %v", gameID, err)
		return snap, false
	}
	return snap, snap.GameID == gameID
}
