package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestSessionStorageStoreGetDelete(t *testing.T) {
	s := NewSessionStorage()
	nav := entities.NewNavigator(entities.DefaultQuestions())

	_, ok := s.Get(1)
	assert.False(t, ok)

	s.Store(1, nav)
	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Same(t, nav, got)
	assert.Equal(t, 1, s.Len())

	s.Delete(1)
	_, ok = s.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestSessionStorageSweep(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewSessionStorage()
	s.now = clock.now

	s.Store(1, entities.NewNavigator(nil))
	s.Store(2, entities.NewNavigator(nil))

	clock.advance(30 * time.Minute)
	_, ok := s.Get(2) // keeps chat 2 active
	require.True(t, ok)

	clock.advance(45 * time.Minute)
	removed := s.Sweep(time.Hour)

	assert.Equal(t, 1, removed)
	_, ok = s.Get(1)
	assert.False(t, ok)
	_, ok = s.Get(2)
	assert.True(t, ok)
}

func TestScreenStorage(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewScreenStorage()
	s.now = clock.now

	s.Store(10, 100)
	s.Store(20, 200)

	msg, ok := s.Get(10)
	require.True(t, ok)
	assert.Equal(t, ScreenMessage{ChatID: 10, MessageID: 100, SentAt: clock.t}, msg)

	clock.advance(2 * time.Hour)
	s.Store(20, 201) // a new screen message refreshes the chat

	assert.Equal(t, 1, s.Sweep(time.Hour))
	_, ok = s.Get(10)
	assert.False(t, ok)
	msg, ok = s.Get(20)
	require.True(t, ok)
	assert.Equal(t, 201, msg.MessageID)

	s.Delete(20)
	_, ok = s.Get(20)
	assert.False(t, ok)
}

func TestUserStorageUpsertKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := NewUserStorage()

	first := entities.NewUser(1, 1, "Ana", "", "ana", "es")
	first.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Upsert(ctx, first))

	again := entities.NewUser(1, 1, "Ana", "García", "ana", "es")
	require.NoError(t, s.Upsert(ctx, again))

	assert.Equal(t, first.CreatedAt, again.CreatedAt)

	ok, err := s.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Exists(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}
