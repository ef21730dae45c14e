// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/opentdb-quiz-bot/internal/repository"
)

const (
	msgWelcome = "👋 <b>Trivia Quiz</b>\n\n" +
		"Ten questions from the Open Trivia Database: five true/false and five multiple choice.\n" +
		"Press the button below or send /quiz to begin."
	msgHelp = "/quiz — start a new quiz\n" +
		"/help — show this message\n\n" +
		"Answer by pressing one of the buttons under a question."
	msgUnknownCommand   = "Unknown command. Send /help to see what I can do."
	msgUseButtons       = "Please use the buttons, or send /quiz to start a new quiz."
	msgNoActiveQuiz     = "There is no quiz in progress."
	msgLoadingQuestions = "⏳ Loading questions…"
	msgQuizExited       = "👋 Bye! Send /quiz whenever you want to play again."
	msgInternalError    = "Something went wrong. Please try again later."

	msgSourceUnavailable = "⚠️ The trivia service is not reachable right now."
	msgMalformedResponse = "⚠️ The trivia service sent questions I could not read."
	msgQuizUnavailable   = "⚠️ Could not start a quiz."
)

// quizStartErrorText maps a StartQuiz error to a user facing message.
func quizStartErrorText(err error) string {
	switch {
	case errors.Is(err, repository.ErrSourceUnavailable):
		return msgSourceUnavailable
	case errors.Is(err, repository.ErrMalformedResponse):
		return msgMalformedResponse
	default:
		return msgQuizUnavailable
	}
}

// buildQuestionText renders the question header and text.
func buildQuestionText(q entities.Question, index, total int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("❓ <b>Question %d/%d</b>\n", index+1, total))
	if q.Category != "" {
		sb.WriteString(fmt.Sprintf("<i>%s</i>", html.EscapeString(q.Category)))
		if q.Difficulty != "" {
			sb.WriteString(fmt.Sprintf(" · <i>%s</i>", html.EscapeString(q.Difficulty)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(html.EscapeString(q.Text))

	return sb.String()
}

// buildFeedbackText renders the verdict for an answered question.
func buildFeedbackText(result entities.AnswerResult) string {
	if result.Correct {
		return "✅ <b>Correct!</b>"
	}
	return fmt.Sprintf("❌ <b>Wrong.</b>\nThe correct answer: %s", html.EscapeString(result.CorrectAnswer))
}

// buildFinalScoreText renders the result of a finished quiz.
func buildFinalScoreText(fs entities.FinalScore) string {
	percentage := 0
	if fs.Total > 0 {
		percentage = fs.Score * 100 / fs.Total
	}

	return fmt.Sprintf(
		"🏁 <b>Quiz finished!</b>\n\nYour final score: <b>%d/%d</b> (%d%%)",
		fs.Score, fs.Total, percentage,
	)
}
