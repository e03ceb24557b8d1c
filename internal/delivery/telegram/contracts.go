package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
	"github.com/aliskhannn/trivial-bot/internal/storage"
)

// BotAPI is the part of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type UserService interface {
	EnsureUser(ctx context.Context, user *entities.User) error
}

type QuizService interface {
	Current(chatID int64) entities.Screen
	Start(chatID int64) (entities.Screen, error)
	Play(chatID int64) (entities.Screen, error)
	Select(chatID int64, questionIndex, option int) (entities.Screen, error)
	Next(chatID int64, questionIndex int) (entities.Screen, error)
}

// ScreenStorage tracks the message each chat uses as its screen.
type ScreenStorage interface {
	Store(chatID int64, messageID int)
	Get(chatID int64) (storage.ScreenMessage, bool)
}
