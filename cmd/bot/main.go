package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/config"
	"github.com/aliskhannn/opentdb-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/opentdb-quiz-bot/internal/logger"
	"github.com/aliskhannn/opentdb-quiz-bot/internal/repository"
	"github.com/aliskhannn/opentdb-quiz-bot/internal/service"
	"github.com/aliskhannn/opentdb-quiz-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg, "bot")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	token, err := cfg.TelegramToken()
	if err != nil {
		lg.Fatal("telegram token is not configured", zap.Error(err))
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		lg.Fatal("failed to create bot api", zap.Error(err))
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "quiz",
			Description: "Start a new quiz",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	triviaRepo := repository.NewTriviaRepository(
		&http.Client{Timeout: cfg.Trivia.FetchTimeout},
		cfg.Trivia.BaseURL,
		cfg.Trivia.BooleanAmount,
		cfg.Trivia.MultipleAmount,
	)
	quizService := service.NewQuizService(triviaRepo, service.NewOptionGenerator(), cfg.Trivia.FetchTimeout, lg)

	sessions := storage.NewSessionStorage(cfg.Sessions.TTL, lg)
	go func() {
		if err := sessions.Start(ctx, cfg.Sessions.SweepInterval); err != nil {
			lg.Error("session sweeper failed", zap.Error(err))
		}
	}()

	handler := telegram.NewHandler(bot, lg, quizService, sessions)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("telegram handler failed", zap.Error(err))
	}

	bot.StopReceivingUpdates()
	lg.Info("shutdown signal received")
}
