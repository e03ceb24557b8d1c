package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionJanitor periodically evicts chats that stopped interacting with the bot.
type SessionJanitor struct {
	sweepers []Sweeper
	idleTTL  time.Duration
	schedule string
	logger   *zap.Logger
}

// NewSessionJanitor creates a janitor running on a cron schedule.
func NewSessionJanitor(schedule string, idleTTL time.Duration, logger *zap.Logger, sweepers ...Sweeper) *SessionJanitor {
	return &SessionJanitor{
		sweepers: sweepers,
		idleTTL:  idleTTL,
		schedule: schedule,
		logger:   logger,
	}
}

// Start runs the sweep on schedule until ctx is done.
func (j *SessionJanitor) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(j.schedule, func() {
		j.logger.Debug("cron triggered: sweeping idle sessions")
		j.Sweep()
	})
	if err != nil {
		return fmt.Errorf("add cron job %q: %w", j.schedule, err)
	}

	c.Start()
	j.logger.Info("session janitor started",
		zap.String("schedule", j.schedule),
		zap.Duration("idle_ttl", j.idleTTL),
	)

	<-ctx.Done()

	<-c.Stop().Done()
	j.logger.Info("session janitor stopped")

	return nil
}

// Sweep evicts idle state once and returns the number of removed entries.
func (j *SessionJanitor) Sweep() int {
	removed := 0
	for _, s := range j.sweepers {
		removed += s.Sweep(j.idleTTL)
	}

	if removed > 0 {
		j.logger.Info("idle sessions evicted", zap.Int("removed", removed))
	}

	return removed
}
