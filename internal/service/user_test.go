package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
	"github.com/aliskhannn/trivial-bot/internal/storage"
)

type failingUserRepo struct{ err error }

func (r failingUserRepo) Upsert(context.Context, *entities.User) error { return r.err }

func TestUserServiceEnsureUser(t *testing.T) {
	ctx := context.Background()
	users := storage.NewUserStorage()
	svc := NewUserService(users)

	require.NoError(t, svc.EnsureUser(ctx, entities.NewUser(7, 100, "Ana", "", "ana", "es")))
	require.NoError(t, svc.EnsureUser(ctx, entities.NewUser(7, 100, "Ana", "García", "ana", "es")))

	ok, err := users.Exists(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserServiceEnsureUserError(t *testing.T) {
	repoErr := errors.New("db down")
	svc := NewUserService(failingUserRepo{err: repoErr})

	err := svc.EnsureUser(context.Background(), entities.NewUser(7, 100, "", "", "", ""))
	require.ErrorIs(t, err, repoErr)
}
