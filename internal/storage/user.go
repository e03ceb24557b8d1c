package storage

import (
	"context"
	"sync"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
)

// UserStorage is an in-memory user registry used when no database is configured.
type UserStorage struct {
	mu    sync.RWMutex
	users map[int64]entities.User
}

func NewUserStorage() *UserStorage {
	return &UserStorage{
		users: make(map[int64]entities.User),
	}
}

// Upsert saves user, keeping the creation time of an existing record.
func (s *UserStorage) Upsert(_ context.Context, user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.users[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
	}
	s.users[user.ID] = *user

	return nil
}

// Exists reports whether a user is registered.
func (s *UserStorage) Exists(_ context.Context, userID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[userID]
	return ok, nil
}
