package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot         BotAPI
	logger      *zap.Logger
	quizService QuizService
	sessions    SessionStorage
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	quizService QuizService,
	sessions SessionStorage,
) *Handler {
	return &Handler{
		bot:         bot,
		logger:      logger,
		quizService: quizService,
		sessions:    sessions,
	}
}

// Run processes updates one at a time until ctx is done or the update channel closes.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		h.send(newHTMLMessage(chatID, msgUseButtons))
		return
	}

	switch update.Message.Command() {
	case "start":
		msg := newHTMLMessage(chatID, msgWelcome)
		msg.ReplyMarkup = buildStartKeyboard()
		h.send(msg)

	case "quiz":
		_ = h.withErrorHandling(h.startQuiz)(ctx, chatID)

	case "help":
		h.send(newHTMLMessage(chatID, msgHelp))

	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) sendError(chatID int64, err string) {
	msg := newHTMLMessage(chatID, err)
	h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
