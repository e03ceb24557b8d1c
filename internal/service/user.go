package service

import (
	"context"
	"fmt"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
)

type UserService struct {
	repository UserRepository
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{repository: repository}
}

// EnsureUser registers the user or refreshes its last activity.
func (s *UserService) EnsureUser(ctx context.Context, user *entities.User) error {
	if err := s.repository.Upsert(ctx, user); err != nil {
		return fmt.Errorf("ensure user %d: %w", user.ID, err)
	}
	return nil
}
