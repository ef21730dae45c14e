package service

import (
	"math/rand"
	"time"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/domain/entities"
)

// OptionGenerator generates answer options for quiz questions.
type OptionGenerator struct {
	rng *rand.Rand
}

// NewOptionGenerator creates a new option generator seeded from the clock.
func NewOptionGenerator() *OptionGenerator {
	return NewOptionGeneratorWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewOptionGeneratorWithRand creates an option generator with the given source of randomness.
func NewOptionGeneratorWithRand(rng *rand.Rand) *OptionGenerator {
	return &OptionGenerator{rng: rng}
}

// GenerateOptions returns the incorrect answers with the correct one inserted at a random position.
// Every position from 0 to len(IncorrectAnswers) inclusive is equally likely.
func (g *OptionGenerator) GenerateOptions(q *entities.Question) []entities.AnswerOption {
	total := q.OptionsCount()
	options := make([]entities.AnswerOption, total)

	correctIndex := g.rng.Intn(total)

	wrongIdx := 0
	for i := 0; i < total; i++ {
		if i == correctIndex {
			options[i] = entities.AnswerOption{Text: q.CorrectAnswer, IsCorrect: true}
		} else {
			options[i] = entities.AnswerOption{Text: q.IncorrectAnswers[wrongIdx]}
			wrongIdx++
		}
	}

	return options
}
