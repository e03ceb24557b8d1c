package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
)

const (
	markCorrect = "✅ "
	markWrong   = "❌ "
)

// buildStartKeyboard builds keyboard for the start screen.
func buildStartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnPlay, buildPlayCallback()),
		),
	)
}

// buildResultsKeyboard builds keyboard for the results screen.
func buildResultsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnPlayAgain, buildRestartCallback()),
		),
	)
}

// buildQuestionKeyboard builds one button per option and, once an option
// is selected, the button to go on. After a selection the options no
// longer react and only the selected one is marked.
func buildQuestionKeyboard(display *entities.QuestionDisplay, questionIndex int) tgbotapi.InlineKeyboardMarkup {
	q := display.Question()

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options)+1)
	for i, option := range q.Options {
		data := buildOptionCallback(questionIndex, i)
		if display.HasSelection() {
			data = buildNoopCallback()
		}

		label := option
		switch display.Mark(i) {
		case entities.MarkCorrect:
			label = markCorrect + option
		case entities.MarkWrong:
			label = markWrong + option
		}

		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		))
	}

	if display.CanConfirm() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnNext, buildNextCallback(questionIndex)),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
