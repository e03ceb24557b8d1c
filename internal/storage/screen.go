package storage

import (
	"sync"
	"time"
)

// ScreenMessage is the bot message currently used as a chat's screen.
type ScreenMessage struct {
	ChatID    int64
	MessageID int
	SentAt    time.Time
}

// ScreenStorage remembers the screen message of every chat.
type ScreenStorage struct {
	mu       sync.RWMutex
	messages map[int64]ScreenMessage
	now      func() time.Time
}

func NewScreenStorage() *ScreenStorage {
	return &ScreenStorage{
		messages: make(map[int64]ScreenMessage),
		now:      time.Now,
	}
}

func (s *ScreenStorage) Store(chatID int64, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages[chatID] = ScreenMessage{
		ChatID:    chatID,
		MessageID: messageID,
		SentAt:    s.now(),
	}
}

func (s *ScreenStorage) Get(chatID int64) (ScreenMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[chatID]
	return msg, ok
}

func (s *ScreenStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.messages, chatID)
}

// Sweep forgets screen messages idle for longer than idle.
func (s *ScreenStorage) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	removed := 0
	for chatID, msg := range s.messages {
		if msg.SentAt.Before(cutoff) {
			delete(s.messages, chatID)
			removed++
		}
	}

	return removed
}
