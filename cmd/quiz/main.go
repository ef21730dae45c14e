package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/config"
	"github.com/aliskhannn/opentdb-quiz-bot/internal/delivery/console"
	"github.com/aliskhannn/opentdb-quiz-bot/internal/logger"
	"github.com/aliskhannn/opentdb-quiz-bot/internal/repository"
	"github.com/aliskhannn/opentdb-quiz-bot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg, "quiz")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	triviaRepo := repository.NewTriviaRepository(
		&http.Client{Timeout: cfg.Trivia.FetchTimeout},
		cfg.Trivia.BaseURL,
		cfg.Trivia.BooleanAmount,
		cfg.Trivia.MultipleAmount,
	)
	quizService := service.NewQuizService(triviaRepo, service.NewOptionGenerator(), cfg.Trivia.FetchTimeout, lg)

	fmt.Println("Loading questions...")
	session, err := quizService.StartQuiz(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not start the quiz: %v\n", err)
		os.Exit(1)
	}

	presenter := console.NewPresenter(os.Stdin, os.Stdout, lg)
	if _, err := presenter.Play(ctx, session); err != nil {
		if errors.Is(err, console.ErrInputClosed) || errors.Is(err, context.Canceled) {
			fmt.Println("\nQuiz aborted.")
			return
		}
		lg.Error("quiz failed", zap.Error(err))
		os.Exit(1)
	}
}
