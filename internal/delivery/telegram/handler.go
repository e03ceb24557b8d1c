package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
)

const defaultUpdateTimeout = 60

type Handler struct {
	bot           BotAPI
	logger        *zap.Logger
	quizService   QuizService
	userService   UserService
	screens       ScreenStorage
	updateTimeout int
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	quizService QuizService,
	userService UserService,
	screens ScreenStorage,
	updateTimeout int,
) *Handler {
	if updateTimeout <= 0 {
		updateTimeout = defaultUpdateTimeout
	}

	return &Handler{
		bot:           bot,
		logger:        logger,
		quizService:   quizService,
		userService:   userService,
		screens:       screens,
		updateTimeout: updateTimeout,
	}
}

// Run consumes updates one at a time until ctx is done or the update channel closes.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = h.updateTimeout

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

// RegisterCommands publishes the command list shown by Telegram clients.
func (h *Handler) RegisterCommands() error {
	_, err := h.bot.Request(tgbotapi.NewSetMyCommands(botCommands()...))
	return err
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	h.handleMessage(ctx, update.Message)
}

func (h *Handler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if from := message.From; from != nil {
		user := entities.NewUser(from.ID, chatID, from.FirstName, from.LastName, from.UserName, from.LanguageCode)
		if err := h.userService.EnsureUser(ctx, user); err != nil {
			h.logger.Error("failed to ensure user",
				zap.Int64("user_id", from.ID),
				zap.Error(err),
			)
		}
	}

	if !message.IsCommand() {
		_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
		return
	}

	switch message.Command() {
	case cmdStart:
		_ = h.withErrorHandling(h.handleStart())(ctx, chatID)
	case cmdPlay:
		_ = h.withErrorHandling(h.handlePlay())(ctx, chatID)
	case cmdHelp:
		_ = h.send(newMessage(chatID, helpMarkdownV2()))
	default:
		_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
