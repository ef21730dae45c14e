package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/domain/entities"
)

// countingGenerator puts the correct answer first and counts calls.
type countingGenerator struct {
	calls int
}

func (g *countingGenerator) GenerateOptions(q *entities.Question) []entities.AnswerOption {
	g.calls++
	options := []entities.AnswerOption{{Text: q.CorrectAnswer, IsCorrect: true}}
	for _, a := range q.IncorrectAnswers {
		options = append(options, entities.AnswerOption{Text: a})
	}
	return options
}

func sampleQuestions() []entities.Question {
	return []entities.Question{
		{Text: "2+2=?", Type: entities.QuestionTypeMultiple, CorrectAnswer: "4", IncorrectAnswers: []string{"3", "5", "6"}},
		{Text: "Sky is blue", Type: entities.QuestionTypeBoolean, CorrectAnswer: "True", IncorrectAnswers: []string{"False"}},
		{Text: "Capital of France?", Type: entities.QuestionTypeMultiple, CorrectAnswer: "Paris", IncorrectAnswers: []string{"Rome", "Berlin", "Madrid"}},
	}
}

func TestNewQuizSession(t *testing.T) {
	gen := &countingGenerator{}
	s, err := entities.NewQuizSession(sampleQuestions(), gen)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 3, s.Total())
	assert.False(t, s.IsFinished())
	assert.Equal(t, 1, gen.calls, "options of the first question are prepared on construction")
}

func TestNewQuizSession_NoQuestions(t *testing.T) {
	_, err := entities.NewQuizSession(nil, &countingGenerator{})
	require.ErrorIs(t, err, entities.ErrNoQuestions)
}

func TestNewQuizSession_NoGenerator(t *testing.T) {
	s, err := entities.NewQuizSession(sampleQuestions(), nil)
	require.ErrorIs(t, err, entities.ErrNoGenerator)
	assert.Nil(t, s)
}

func TestQuizSession_RunToFinish(t *testing.T) {
	s, err := entities.NewQuizSession(sampleQuestions(), &countingGenerator{})
	require.NoError(t, err)

	r, err := s.SubmitAnswer("4")
	require.NoError(t, err)
	assert.Equal(t, entities.AnswerResult{Correct: true, Finished: false, Score: 1, CorrectAnswer: "4"}, r)
	assert.Equal(t, 1, s.Index())

	r, err = s.SubmitAnswer("False")
	require.NoError(t, err)
	assert.Equal(t, entities.AnswerResult{Correct: false, Finished: false, Score: 1, CorrectAnswer: "True"}, r)

	r, err = s.SubmitAnswer("definitely not an option")
	require.NoError(t, err)
	assert.False(t, r.Correct)
	assert.True(t, r.Finished)
	assert.Equal(t, 1, r.Score)

	assert.True(t, s.IsFinished())
	assert.Equal(t, 3, s.Index())

	fs, err := s.FinalScore()
	require.NoError(t, err)
	assert.Equal(t, entities.FinalScore{Score: 1, Total: 3}, fs)
}

func TestQuizSession_SingleQuestion(t *testing.T) {
	s, err := entities.NewQuizSession(sampleQuestions()[:1], &countingGenerator{})
	require.NoError(t, err)

	options, err := s.CurrentOptions()
	require.NoError(t, err)
	require.Len(t, options, 4)

	count := 0
	for _, o := range options {
		if o.Text == "4" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	r, err := s.SubmitAnswer("4")
	require.NoError(t, err)
	assert.True(t, r.Correct)
	assert.True(t, r.Finished)
	assert.Equal(t, 1, r.Score)

	fs, err := s.FinalScore()
	require.NoError(t, err)
	assert.Equal(t, entities.FinalScore{Score: 1, Total: 1}, fs)
}

func TestQuizSession_InvalidState(t *testing.T) {
	s, err := entities.NewQuizSession(sampleQuestions()[1:2], &countingGenerator{})
	require.NoError(t, err)

	_, err = s.FinalScore()
	require.ErrorIs(t, err, entities.ErrInvalidState)

	_, err = s.SubmitAnswer("True")
	require.NoError(t, err)

	_, err = s.CurrentQuestion()
	assert.ErrorIs(t, err, entities.ErrInvalidState)

	_, err = s.CurrentOptions()
	assert.ErrorIs(t, err, entities.ErrInvalidState)

	_, err = s.SubmitAnswer("True")
	assert.ErrorIs(t, err, entities.ErrInvalidState)

	// A rejected submission does not change the result.
	fs, err := s.FinalScore()
	require.NoError(t, err)
	assert.Equal(t, entities.FinalScore{Score: 1, Total: 1}, fs)
}

func TestQuizSession_OptionsStableWhileCurrent(t *testing.T) {
	gen := &countingGenerator{}
	s, err := entities.NewQuizSession(sampleQuestions(), gen)
	require.NoError(t, err)

	first, err := s.CurrentOptions()
	require.NoError(t, err)

	// Mutating the returned slice must not leak into the session.
	first[0].Text = "tampered"

	again, err := s.CurrentOptions()
	require.NoError(t, err)
	assert.Equal(t, "4", again[0].Text)
	assert.Equal(t, 1, gen.calls)

	_, err = s.SubmitAnswer("4")
	require.NoError(t, err)
	assert.Equal(t, 2, gen.calls, "options are prepared once per question")

	_, err = s.CurrentOptions()
	require.NoError(t, err)
	assert.Equal(t, 2, gen.calls)
}

func TestQuizSession_CurrentQuestion(t *testing.T) {
	qs := sampleQuestions()
	s, err := entities.NewQuizSession(qs, &countingGenerator{})
	require.NoError(t, err)

	q, err := s.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, qs[0], q)

	// The session keeps its own copy of the sequence.
	qs[1].Text = "changed"
	_, err = s.SubmitAnswer("")
	require.NoError(t, err)

	q, err = s.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, "Sky is blue", q.Text)
}

func TestQuestionType_IncorrectAnswersCount(t *testing.T) {
	assert.Equal(t, 1, entities.QuestionTypeBoolean.IncorrectAnswersCount())
	assert.Equal(t, 3, entities.QuestionTypeMultiple.IncorrectAnswersCount())
	assert.Equal(t, -1, entities.QuestionType("essay").IncorrectAnswersCount())
}
