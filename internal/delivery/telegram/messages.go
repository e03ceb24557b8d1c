// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Screen texts.
const (
	msgWelcomeTitle    = "Bienvenido al juego del Trivial"
	msgWelcomeHint     = "Pulsa en 'Jugar' para comenzar la partida"
	msgQuestionCounter = "Pregunta %d de %d"
	msgResultsTitle    = "Has terminado el juego del Trivial"
	msgResultsScore    = "Tu puntuación es: %d"
)

// Buttons.
const (
	btnPlay      = "Jugar"
	btnNext      = "Siguiente Pregunta"
	btnPlayAgain = "Volver a jugar"
)

// Error messages.
const (
	msgStaleAction    = "Esta pantalla ya no está activa."
	msgInternalError  = "Algo ha salido mal. Inténtalo más tarde."
	msgUnknownCommand = "Comando desconocido. Comandos disponibles:\n\n/start - pantalla de inicio\n/jugar - empezar una partida\n/ayuda - ayuda"
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode and a keyboard.
func newEdit(chatID int64, msgID int, text string, kb tgbotapi.InlineKeyboardMarkup) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, msgID, text, kb)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// helpMarkdownV2 builds the help message safely for MarkdownV2.
func helpMarkdownV2() string {
	var sb strings.Builder

	sb.WriteString(bold("Trivial"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Responde a las preguntas eligiendo una de las opciones."))
	sb.WriteString("\n")
	sb.WriteString(md("Tu respuesta se marca con ✅ si es correcta y con ❌ si no lo es."))
	sb.WriteString("\n")
	sb.WriteString(md("Pulsa «Siguiente Pregunta» para continuar. Al final verás tu puntuación."))
	sb.WriteString("\n\n")
	sb.WriteString(md("/start - pantalla de inicio"))
	sb.WriteString("\n")
	sb.WriteString(md("/jugar - empezar una partida"))

	return sb.String()
}
