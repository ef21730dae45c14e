package service

import (
	"context"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/domain/entities"
)

// QuestionSource provides a complete question set for one quiz.
type QuestionSource interface {
	FetchQuestions(ctx context.Context) ([]entities.Question, error)
}
