package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/domain/entities"
)

// lastGenerator puts the correct answer last.
type lastGenerator struct{}

func (lastGenerator) GenerateOptions(q *entities.Question) []entities.AnswerOption {
	var options []entities.AnswerOption
	for _, a := range q.IncorrectAnswers {
		options = append(options, entities.AnswerOption{Text: a})
	}
	return append(options, entities.AnswerOption{Text: q.CorrectAnswer, IsCorrect: true})
}

func newSession(t *testing.T) *entities.QuizSession {
	t.Helper()
	s, err := entities.NewQuizSession([]entities.Question{
		{Text: "2+2=?", Category: "Math", Type: entities.QuestionTypeMultiple, CorrectAnswer: "4", IncorrectAnswers: []string{"3", "5", "6"}},
		{Text: "Sky is blue", Type: entities.QuestionTypeBoolean, CorrectAnswer: "True", IncorrectAnswers: []string{"False"}},
	}, lastGenerator{})
	require.NoError(t, err)
	return s
}

func TestPlay(t *testing.T) {
	var out bytes.Buffer
	// "x" and "9" are rejected, then option 4 ("4") and option 1 ("False").
	in := strings.NewReader("x\n9\n4\n1\n")

	fs, err := NewPresenter(in, &out, zap.NewNop()).Play(context.Background(), newSession(t))
	require.NoError(t, err)
	assert.Equal(t, entities.FinalScore{Score: 1, Total: 2}, fs)

	text := out.String()
	assert.Contains(t, text, "Question 1/2 [Math]")
	assert.Contains(t, text, "  4. 4")
	assert.Contains(t, text, "Please enter a number from 1 to 4.")
	assert.Contains(t, text, "Correct!")
	assert.Contains(t, text, "Wrong. The correct answer was: True")
	assert.Contains(t, text, "Your final score: 1/2")
}

func TestPlay_InputClosed(t *testing.T) {
	var out bytes.Buffer
	session := newSession(t)

	_, err := NewPresenter(strings.NewReader("4\n"), &out, zap.NewNop()).Play(context.Background(), session)
	require.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, 1, session.Index())
}

func TestPlay_Canceled(t *testing.T) {
	var out bytes.Buffer
	session := newSession(t)

	// Nothing is ever written, so the presenter waits on input until ctx is done.
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := NewPresenter(r, &out, zap.NewNop()).Play(ctx, session)
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Play did not return after cancel")
	}
	assert.Equal(t, 0, session.Index())
}
