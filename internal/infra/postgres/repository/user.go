package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
	"github.com/aliskhannn/trivial-bot/internal/infra/postgres"
)

// UserRepository provides access to user data in the database.
type UserRepository struct {
	db postgres.DBTX
}

// NewUserRepository creates a new UserRepository with the provided database pool.
func NewUserRepository(db postgres.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert inserts a new user or refreshes the profile and last activity of an existing one.
func (r *UserRepository) Upsert(ctx context.Context, user *entities.User) error {
	query := `
		INSERT INTO users (id, chat_id, first_name, last_name, username, language_code, created_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			chat_id = EXCLUDED.chat_id,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			username = EXCLUDED.username,
			language_code = EXCLUDED.language_code,
			last_seen_at = EXCLUDED.last_seen_at
		RETURNING created_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		user.ID,
		user.ChatID,
		user.FirstName,
		user.LastName,
		user.Username,
		user.LanguageCode,
		user.CreatedAt,
		user.LastSeenAt,
	).Scan(&user.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	return nil
}
