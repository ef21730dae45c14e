package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/domain/entities"
)

func TestGenerateOptions_Multiple(t *testing.T) {
	g := NewOptionGeneratorWithRand(rand.New(rand.NewSource(1)))
	q := &entities.Question{
		Text:             "2+2=?",
		Type:             entities.QuestionTypeMultiple,
		CorrectAnswer:    "4",
		IncorrectAnswers: []string{"3", "5", "6"},
	}

	options := g.GenerateOptions(q)
	require.Len(t, options, 4)

	seen := map[string]int{}
	correct := 0
	for _, o := range options {
		seen[o.Text]++
		if o.IsCorrect {
			correct++
			assert.Equal(t, "4", o.Text)
		}
	}

	assert.Equal(t, 1, correct)
	assert.Equal(t, map[string]int{"3": 1, "4": 1, "5": 1, "6": 1}, seen)
}

func TestGenerateOptions_Boolean(t *testing.T) {
	g := NewOptionGeneratorWithRand(rand.New(rand.NewSource(7)))
	q := &entities.Question{
		Text:             "Sky is blue",
		Type:             entities.QuestionTypeBoolean,
		CorrectAnswer:    "True",
		IncorrectAnswers: []string{"False"},
	}

	options := g.GenerateOptions(q)
	require.Len(t, options, 2)
	assert.ElementsMatch(t,
		[]entities.AnswerOption{{Text: "True", IsCorrect: true}, {Text: "False"}},
		options,
	)
}

func TestGenerateOptions_EveryPositionReachable(t *testing.T) {
	g := NewOptionGeneratorWithRand(rand.New(rand.NewSource(42)))
	q := &entities.Question{
		CorrectAnswer:    "right",
		IncorrectAnswers: []string{"a", "b", "c"},
	}

	positions := make([]int, q.OptionsCount())
	for i := 0; i < 4000; i++ {
		for pos, o := range g.GenerateOptions(q) {
			if o.IsCorrect {
				positions[pos]++
			}
		}
	}

	// The last position must be reachable as well as the first ones.
	for pos, n := range positions {
		assert.Greater(t, n, 800, "position %d is under-represented: %v", pos, positions)
	}
}

func TestGenerateOptions_KeepsIncorrectOrder(t *testing.T) {
	g := NewOptionGeneratorWithRand(rand.New(rand.NewSource(3)))
	q := &entities.Question{
		CorrectAnswer:    "x",
		IncorrectAnswers: []string{"a", "b", "c"},
	}

	for i := 0; i < 20; i++ {
		var wrong []string
		for _, o := range g.GenerateOptions(q) {
			if !o.IsCorrect {
				wrong = append(wrong, o.Text)
			}
		}
		assert.Equal(t, []string{"a", "b", "c"}, wrong)
	}
}
