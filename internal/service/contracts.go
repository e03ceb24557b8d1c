package service

import (
	"context"
	"time"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
)

type UserRepository interface {
	Upsert(ctx context.Context, user *entities.User) error
}

type QuestionRepository interface {
	GetAll(ctx context.Context) ([]entities.Question, error)
}

// SessionStorage keeps the navigator of every chat.
type SessionStorage interface {
	Store(chatID int64, nav *entities.Navigator)
	Get(chatID int64) (*entities.Navigator, bool)
	Delete(chatID int64)
}

// Sweeper drops state idle for longer than the given duration.
type Sweeper interface {
	Sweep(idle time.Duration) int
}
