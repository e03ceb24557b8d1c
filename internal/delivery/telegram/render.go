package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
)

// renderScreen renders any screen to MarkdownV2 text and its keyboard.
func renderScreen(screen entities.Screen) (string, tgbotapi.InlineKeyboardMarkup) {
	switch s := screen.(type) {
	case entities.QuizScreen:
		return renderQuiz(s.Session)
	case entities.ResultsScreen:
		return renderResults(s.Score)
	default:
		return renderStart()
	}
}

func renderStart() (string, tgbotapi.InlineKeyboardMarkup) {
	text := fmt.Sprintf("%s\n\n%s", bold(msgWelcomeTitle), md(msgWelcomeHint))
	return text, buildStartKeyboard()
}

func renderQuiz(session *entities.QuizSession) (string, tgbotapi.InlineKeyboardMarkup) {
	q, ok := session.CurrentQuestion()
	if !ok {
		return renderResults(session.Score())
	}

	index := session.CurrentIndex()
	text := fmt.Sprintf(
		"%s\n\n%s",
		italic(fmt.Sprintf(msgQuestionCounter, index+1, session.TotalQuestions())),
		bold(q.Text),
	)

	return text, buildQuestionKeyboard(session.Display(), index)
}

func renderResults(score int) (string, tgbotapi.InlineKeyboardMarkup) {
	text := fmt.Sprintf(
		"%s\n\n%s",
		bold(msgResultsTitle),
		md(fmt.Sprintf(msgResultsScore, score)),
	)
	return text, buildResultsKeyboard()
}
