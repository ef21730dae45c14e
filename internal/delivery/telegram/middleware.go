package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/domain/entities"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs handler errors and tells the user something went wrong.
// Session state errors are wiring bugs and go through DPanic.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		if err == nil {
			return nil
		}

		if errors.Is(err, entities.ErrInvalidState) {
			h.logger.DPanic("quiz session misuse",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
		} else {
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
		}

		h.sendError(chatID, msgInternalError)
		return nil
	}
}
