package entities

import "time"

// User is a Telegram user that interacted with the bot.
type User struct {
	ID           int64
	ChatID       int64
	FirstName    string
	LastName     string
	Username     string
	LanguageCode string
	CreatedAt    time.Time
	LastSeenAt   time.Time
}

// NewUser creates a User seen now.
func NewUser(id, chatID int64, firstName, lastName, username, languageCode string) *User {
	now := time.Now()
	return &User{
		ID:           id,
		ChatID:       chatID,
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		LanguageCode: languageCode,
		CreatedAt:    now,
		LastSeenAt:   now,
	}
}
