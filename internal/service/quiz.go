package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/domain/entities"
)

// QuizService starts new quiz sessions from a question source.
type QuizService struct {
	source       QuestionSource
	generator    entities.OptionGenerator
	fetchTimeout time.Duration
	logger       *zap.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	source QuestionSource,
	generator entities.OptionGenerator,
	fetchTimeout time.Duration,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		source:       source,
		generator:    generator,
		fetchTimeout: fetchTimeout,
		logger:       logger,
	}
}

// StartQuiz fetches a full question set and builds a session from it.
// Source errors are returned wrapped so callers can match them with errors.Is.
func (s *QuizService) StartQuiz(ctx context.Context) (*entities.QuizSession, error) {
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}

	started := time.Now()
	questions, err := s.source.FetchQuestions(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch questions",
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("fetch questions: %w", err)
	}

	session, err := entities.NewQuizSession(questions, s.generator)
	if err != nil {
		return nil, fmt.Errorf("new quiz session: %w", err)
	}

	s.logger.Debug("quiz session created",
		zap.Int("total_questions", session.Total()),
		zap.Duration("elapsed", time.Since(started)),
	)

	return session, nil
}
