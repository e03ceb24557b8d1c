package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
	"github.com/aliskhannn/trivial-bot/internal/service"
)

var errMalformedCallback = errors.New("malformed callback data")

func (h *Handler) handleCallback(_ context.Context, cb *tgbotapi.CallbackQuery) {
	notice := ""
	// Remove the user's "clock".
	defer func() { h.answerCallback(cb.ID, notice) }()

	if cb.Message == nil || cb.Message.Chat == nil {
		return
	}

	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID
	data := decodeCallback(cb.Data)

	if data.Action == actionNoop {
		return
	}

	if current, ok := h.screens.Get(chatID); ok && current.MessageID != messageID {
		h.logger.Debug("callback from an old screen",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
			zap.Int("screen_message_id", current.MessageID),
		)
		notice = msgStaleAction
		return
	}

	var (
		screen entities.Screen
		err    error
	)

	switch data.Action {
	case actionNav:
		screen, err = h.handleNavCallback(chatID, data)
	case actionOption:
		screen, err = h.handleOptionCallback(chatID, data)
	case actionNext:
		screen, err = h.handleNextCallback(chatID, data)
	default:
		err = errMalformedCallback
	}

	switch {
	case errors.Is(err, service.ErrStaleAction), errors.Is(err, errMalformedCallback):
		h.logger.Debug("callback ignored",
			zap.Int64("chat_id", chatID),
			zap.String("data", data.Raw),
			zap.Error(err),
		)
		notice = msgStaleAction
		return
	case err != nil:
		h.logger.Error("handle callback",
			zap.Int64("chat_id", chatID),
			zap.String("data", data.Raw),
			zap.Error(err),
		)
		notice = msgInternalError
		return
	}

	h.screens.Store(chatID, messageID)
	h.editScreen(chatID, messageID, screen)
}

func (h *Handler) handleNavCallback(chatID int64, data callbackData) (entities.Screen, error) {
	if len(data.Params) != 1 {
		return nil, errMalformedCallback
	}

	switch data.Params[0] {
	case entities.RouteStart:
		return h.quizService.Start(chatID)
	case entities.RouteQuiz:
		return h.quizService.Play(chatID)
	default:
		// Results are only reached by finishing a quiz.
		return nil, errMalformedCallback
	}
}

func (h *Handler) handleOptionCallback(chatID int64, data callbackData) (entities.Screen, error) {
	questionIndex, ok1 := data.intParam(0)
	option, ok2 := data.intParam(1)
	if len(data.Params) != 2 || !ok1 || !ok2 {
		return nil, errMalformedCallback
	}

	return h.quizService.Select(chatID, questionIndex, option)
}

func (h *Handler) handleNextCallback(chatID int64, data callbackData) (entities.Screen, error) {
	questionIndex, ok := data.intParam(0)
	if len(data.Params) != 1 || !ok {
		return nil, errMalformedCallback
	}

	return h.quizService.Next(chatID, questionIndex)
}

// editScreen renders screen into an existing message.
func (h *Handler) editScreen(chatID int64, messageID int, screen entities.Screen) {
	text, kb := renderScreen(screen)
	_ = h.send(newEdit(chatID, messageID, text, kb))
}

func (h *Handler) answerCallback(callbackID, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}
