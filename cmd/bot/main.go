package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivial-bot/internal/config"
	"github.com/aliskhannn/trivial-bot/internal/delivery/telegram"
	"github.com/aliskhannn/trivial-bot/internal/infra/postgres"
	pgrepository "github.com/aliskhannn/trivial-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/trivial-bot/internal/logger"
	"github.com/aliskhannn/trivial-bot/internal/repository"
	"github.com/aliskhannn/trivial-bot/internal/service"
	"github.com/aliskhannn/trivial-bot/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = cfg.Bot.Debug
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	// Initialize repositories and services.
	questionRepo, err := repository.NewQuestionRepository(cfg.QuestionsPath)
	if err != nil {
		return err
	}

	userRepo, closeDB, err := newUserRepository(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeDB()

	sessions := storage.NewSessionStorage()
	screens := storage.NewScreenStorage()

	quizService, err := service.NewQuizService(ctx, questionRepo, sessions, lg)
	if err != nil {
		return err
	}
	userService := service.NewUserService(userRepo)

	janitor := service.NewSessionJanitor(cfg.Session.SweepSchedule, cfg.Session.IdleTTL, lg, sessions, screens)
	go func() {
		if err := janitor.Start(ctx); err != nil {
			lg.Error("session janitor failed", zap.Error(err))
		}
	}()

	handler := telegram.NewHandler(bot, lg, quizService, userService, screens, cfg.Bot.UpdateTimeout)
	if err := handler.RegisterCommands(); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	lg.Info("shutdown signal received")
	return nil
}

// newUserRepository returns the Postgres user registry when a database is
// configured and an in-memory one otherwise.
func newUserRepository(ctx context.Context, cfg *config.Config, lg *zap.Logger) (service.UserRepository, func(), error) {
	if !cfg.DB.Enabled() {
		lg.Info("database not configured, keeping users in memory")
		return storage.NewUserStorage(), func() {}, nil
	}

	dsn, err := cfg.DB.DSN()
	if err != nil {
		return nil, nil, err
	}

	if err := postgres.RunMigrations(dsn, cfg.DB.MigrationsPath); err != nil {
		return nil, nil, err
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return nil, nil, err
	}

	return pgrepository.NewUserRepository(pool), pool.Close, nil
}
