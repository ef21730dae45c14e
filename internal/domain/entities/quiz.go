package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is returned when a session operation is called in the wrong phase.
	// It always means the caller is wired incorrectly.
	ErrInvalidState = errors.New("quiz session is in invalid state for this operation")
	ErrNoQuestions  = errors.New("quiz session requires at least one question")
	ErrNoGenerator  = errors.New("quiz session requires an option generator")
)

// OptionGenerator builds the answer option set for a question.
type OptionGenerator interface {
	GenerateOptions(q *Question) []AnswerOption
}

// AnswerResult is the outcome of a single answer submission.
type AnswerResult struct {
	Correct       bool   // whether the submitted text matched the correct answer
	Finished      bool   // whether the session has no more questions
	Score         int    // score after this submission
	CorrectAnswer string // correct answer of the question just answered
}

// FinalScore is the result of a finished session.
type FinalScore struct {
	Score int
	Total int
}

// QuizSession is a single quiz run over a fixed sequence of questions.
// It is in progress while index < len(questions) and finished afterwards.
// A QuizSession is not safe for concurrent use.
type QuizSession struct {
	questions []Question
	index     int
	score     int

	// options caches the option set per question position, filled when the question becomes current.
	options   [][]AnswerOption
	generator OptionGenerator
}

// NewQuizSession creates a session positioned at the first question.
func NewQuizSession(questions []Question, generator OptionGenerator) (*QuizSession, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if generator == nil {
		return nil, ErrNoGenerator
	}

	qs := &QuizSession{
		questions: append([]Question(nil), questions...),
		options:   make([][]AnswerOption, len(questions)),
		generator: generator,
	}
	qs.enterCurrent()

	return qs, nil
}

// Index returns the 0-based position of the current question.
func (qs *QuizSession) Index() int {
	return qs.index
}

// Total returns the number of questions in the session.
func (qs *QuizSession) Total() int {
	return len(qs.questions)
}

// Score returns the number of correct answers so far.
func (qs *QuizSession) Score() int {
	return qs.score
}

// IsFinished reports whether every question has been answered.
func (qs *QuizSession) IsFinished() bool {
	return qs.index >= len(qs.questions)
}

// CurrentQuestion returns the question at the current index.
func (qs *QuizSession) CurrentQuestion() (Question, error) {
	if qs.IsFinished() {
		return Question{}, fmt.Errorf("current question: %w", ErrInvalidState)
	}
	return qs.questions[qs.index], nil
}

// CurrentOptions returns the answer options of the current question.
// The order is fixed for as long as the question stays current.
func (qs *QuizSession) CurrentOptions() ([]AnswerOption, error) {
	if qs.IsFinished() {
		return nil, fmt.Errorf("current options: %w", ErrInvalidState)
	}
	return append([]AnswerOption(nil), qs.options[qs.index]...), nil
}

// SubmitAnswer checks choice against the current question and moves to the next one.
// Text that matches no option is counted as incorrect.
func (qs *QuizSession) SubmitAnswer(choice string) (AnswerResult, error) {
	if qs.IsFinished() {
		return AnswerResult{}, fmt.Errorf("submit answer: %w", ErrInvalidState)
	}

	q := qs.questions[qs.index]
	correct := choice == q.CorrectAnswer
	if correct {
		qs.score++
	}

	qs.options[qs.index] = nil
	qs.index++
	qs.enterCurrent()

	return AnswerResult{
		Correct:       correct,
		Finished:      qs.IsFinished(),
		Score:         qs.score,
		CorrectAnswer: q.CorrectAnswer,
	}, nil
}

// FinalScore returns the score of a finished session.
func (qs *QuizSession) FinalScore() (FinalScore, error) {
	if !qs.IsFinished() {
		return FinalScore{}, fmt.Errorf("final score: %w", ErrInvalidState)
	}
	return FinalScore{Score: qs.score, Total: len(qs.questions)}, nil
}

// enterCurrent computes the option placement for the question that just became current.
func (qs *QuizSession) enterCurrent() {
	if qs.IsFinished() {
		return
	}
	qs.options[qs.index] = qs.generator.GenerateOptions(&qs.questions[qs.index])
}
