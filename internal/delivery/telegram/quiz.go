package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/domain/entities"
)

// startQuiz fetches a new question set and shows the first question.
// A failed fetch is reported to the user with a retry button; nothing is retried automatically.
func (h *Handler) startQuiz(ctx context.Context, chatID int64) error {
	h.send(newHTMLMessage(chatID, msgLoadingQuestions))

	session, err := h.quizService.StartQuiz(ctx)
	if err != nil {
		h.logger.Warn("failed to start quiz",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)

		msg := newHTMLMessage(chatID, quizStartErrorText(err))
		msg.ReplyMarkup = buildRetryKeyboard()
		h.send(msg)
		return nil
	}

	h.sessions.Store(chatID, session)
	h.logger.Info("quiz started",
		zap.Int64("chat_id", chatID),
		zap.Int("total_questions", session.Total()),
	)

	return h.sendQuestion(chatID, session)
}

func (h *Handler) sendQuestion(chatID int64, session *entities.QuizSession) error {
	q, err := session.CurrentQuestion()
	if err != nil {
		return err
	}

	options, err := session.CurrentOptions()
	if err != nil {
		return err
	}

	msg := newHTMLMessage(chatID, buildQuestionText(q, session.Index(), session.Total()))
	msg.ReplyMarkup = buildQuizAnswerKeyboard(options, session.Index())
	h.send(msg)

	return nil
}

// answerHandler submits the option pressed on the question message messageID.
func (h *Handler) answerHandler(messageID, questionIndex, optionIndex int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, ok := h.sessions.Get(chatID)
		if !ok {
			msg := newHTMLMessage(chatID, msgNoActiveQuiz)
			msg.ReplyMarkup = buildStartKeyboard()
			h.send(msg)
			return nil
		}

		// A keyboard of an earlier question, or a double press.
		if session.IsFinished() || questionIndex != session.Index() {
			h.logger.Debug("stale answer ignored",
				zap.Int64("chat_id", chatID),
				zap.Int("question_index", questionIndex),
				zap.Int("current_index", session.Index()),
			)
			return nil
		}

		q, err := session.CurrentQuestion()
		if err != nil {
			return err
		}

		options, err := session.CurrentOptions()
		if err != nil {
			return err
		}

		// Unknown option indexes submit an empty choice, which never matches.
		var choice string
		if optionIndex < len(options) {
			choice = options[optionIndex].Text
		}

		result, err := session.SubmitAnswer(choice)
		if err != nil {
			return err
		}

		h.send(newHTMLEdit(
			chatID,
			messageID,
			buildQuestionText(q, questionIndex, session.Total())+"\n\n"+buildFeedbackText(result),
		))

		if !result.Finished {
			return h.sendQuestion(chatID, session)
		}

		return h.sendFinalScore(chatID, session)
	}
}

func (h *Handler) sendFinalScore(chatID int64, session *entities.QuizSession) error {
	fs, err := session.FinalScore()
	if err != nil {
		return err
	}

	h.logger.Info("quiz finished",
		zap.Int64("chat_id", chatID),
		zap.Int("score", fs.Score),
		zap.Int("total", fs.Total),
	)

	msg := newHTMLMessage(chatID, buildFinalScoreText(fs))
	msg.ReplyMarkup = buildQuizResultKeyboard()
	h.send(msg)

	return nil
}

// exitQuiz drops the chat's session and the keyboard of the pressed message.
func (h *Handler) exitQuiz(chatID int64, messageID int) {
	h.sessions.Delete(chatID)

	h.send(tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	}))
	h.send(newHTMLMessage(chatID, msgQuizExited))
}
