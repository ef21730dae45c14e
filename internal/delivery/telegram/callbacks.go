package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Remove the user's "clock" whatever happens below.
	defer h.answerCallback(cb.ID)

	if cb.Message == nil {
		h.logger.Debug("callback without message", zap.String("data", cb.Data))
		return
	}

	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)

	switch data.Action {
	case actionQuiz:
		h.handleQuizCallback(ctx, cb, data)
	case actionHelp:
		h.send(newHTMLMessage(chatID, msgHelp))
	default:
		h.logger.Debug("unknown callback",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
		)
	}
}

func (h *Handler) handleQuizCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) {
	chatID := cb.Message.Chat.ID

	if len(data.Params) == 0 {
		h.logger.Debug("quiz callback without params", zap.String("data", data.Raw))
		return
	}

	switch data.Params[0] {
	case quizStart:
		_ = h.withErrorHandling(h.startQuiz)(ctx, chatID)

	case quizExit:
		h.exitQuiz(chatID, cb.Message.MessageID)

	case quizAnswer:
		questionIndex, optionIndex, ok := data.answerParams()
		if !ok {
			h.logger.Debug("invalid answer callback", zap.String("data", data.Raw))
			return
		}
		_ = h.withErrorHandling(h.answerHandler(cb.Message.MessageID, questionIndex, optionIndex))(ctx, chatID)

	default:
		h.logger.Debug("unknown quiz callback", zap.String("data", data.Raw))
	}
}

func (h *Handler) answerCallback(callbackID string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}
