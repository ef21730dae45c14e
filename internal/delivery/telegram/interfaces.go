package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/domain/entities"
)

// BotAPI is the subset of *tgbotapi.BotAPI used by the handler.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type QuizService interface {
	StartQuiz(ctx context.Context) (*entities.QuizSession, error)
}

type SessionStorage interface {
	Store(chatID int64, session *entities.QuizSession)
	Get(chatID int64) (*entities.QuizSession, bool)
	Delete(chatID int64)
}
