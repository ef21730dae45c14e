// Package entities contains domain entities used across the application.
package entities

// QuestionType is the OpenTDB question kind.
type QuestionType string

const (
	QuestionTypeBoolean  QuestionType = "boolean"  // true/false, one incorrect answer
	QuestionTypeMultiple QuestionType = "multiple" // four choices, three incorrect answers
)

// IncorrectAnswersCount returns how many incorrect answers a question of this type carries,
// or -1 for an unknown type.
func (t QuestionType) IncorrectAnswersCount() int {
	switch t {
	case QuestionTypeBoolean:
		return 1
	case QuestionTypeMultiple:
		return 3
	default:
		return -1
	}
}

// Question is a single trivia question with already decoded text.
type Question struct {
	Text             string       // question text
	Type             QuestionType // "boolean" or "multiple"
	Category         string       // OpenTDB category, display only
	Difficulty       string       // easy, medium or hard, display only
	CorrectAnswer    string       // the right answer
	IncorrectAnswers []string     // wrong answers in API order
}

// OptionsCount returns the size of the answer option set for the question.
func (q *Question) OptionsCount() int {
	return len(q.IncorrectAnswers) + 1
}

// AnswerOption is one selectable answer shown to the player.
type AnswerOption struct {
	Text      string
	IsCorrect bool
}
