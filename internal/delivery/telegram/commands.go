package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
)

// Bot commands.
const (
	cmdStart = "start"
	cmdPlay  = "jugar"
	cmdHelp  = "ayuda"
)

func botCommands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{
			Command:     cmdStart,
			Description: "Pantalla de inicio",
		},
		{
			Command:     cmdPlay,
			Description: "Empezar una partida",
		},
		{
			Command:     cmdHelp,
			Description: "Ayuda",
		},
	}
}

// handleStart shows the start screen in a new message.
func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		screen, err := h.quizService.Start(chatID)
		if err != nil {
			return fmt.Errorf("start screen: %w", err)
		}
		return h.showScreen(chatID, screen)
	}
}

// handlePlay starts a new quiz in a new message.
func (h *Handler) handlePlay() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		screen, err := h.quizService.Play(chatID)
		if err != nil {
			return fmt.Errorf("start quiz: %w", err)
		}
		return h.showScreen(chatID, screen)
	}
}

// showScreen sends screen as a new message and makes it the chat's screen.
// The previous screen message is removed so its buttons cannot be used.
func (h *Handler) showScreen(chatID int64, screen entities.Screen) error {
	text, kb := renderScreen(screen)

	msg := newMessage(chatID, text)
	msg.ReplyMarkup = kb

	sent, err := h.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("send screen: %w", err)
	}

	if old, ok := h.screens.Get(chatID); ok {
		if _, err := h.bot.Request(tgbotapi.NewDeleteMessage(chatID, old.MessageID)); err != nil {
			h.logger.Debug("failed to delete previous screen",
				zap.Int64("chat_id", chatID),
				zap.Int("message_id", old.MessageID),
				zap.Error(err),
			)
		}
	}
	h.screens.Store(chatID, sent.MessageID)

	return nil
}
