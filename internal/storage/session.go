package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
)

type session struct {
	navigator  *entities.Navigator
	lastActive time.Time
}

// SessionStorage provides in-memory storage for chat navigators by chat ID.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*session
	now      func() time.Time
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*session),
		now:      time.Now,
	}
}

// Store saves the navigator for a chat and marks it active.
func (s *SessionStorage) Store(chatID int64, nav *entities.Navigator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = &session{navigator: nav, lastActive: s.now()}
}

// Get retrieves the navigator for a chat and marks it active.
func (s *SessionStorage) Get(chatID int64) (*entities.Navigator, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[chatID]
	if !ok {
		return nil, false
	}
	sess.lastActive = s.now()

	return sess.navigator, true
}

// Delete removes the navigator of a chat.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// Len returns the number of stored chats.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes chats inactive for longer than idle and returns how many were removed.
func (s *SessionStorage) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	removed := 0
	for chatID, sess := range s.sessions {
		if sess.lastActive.Before(cutoff) {
			delete(s.sessions, chatID)
			removed++
		}
	}

	return removed
}
