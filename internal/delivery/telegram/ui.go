package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/domain/entities"
)

// buildStartKeyboard builds keyboard for the welcome screen.
func buildStartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Start quiz", buildQuizStartCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("ℹ️ Help", buildHelpCallback()),
		),
	)
}

// buildRetryKeyboard builds keyboard shown after a failed quiz start.
func buildRetryKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Try again", buildQuizStartCallback()),
		),
	)
}

// buildQuizAnswerKeyboard builds one button per answer option of the current question.
func buildQuizAnswerKeyboard(options []entities.AnswerOption, questionIndex int) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options)+1)
	for i, option := range options {
		button := tgbotapi.NewInlineKeyboardButtonData(option.Text, buildQuizAnswerCallback(questionIndex, i))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🚪 Exit quiz", buildQuizExitCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizResultKeyboard builds keyboard for quiz results screen.
func buildQuizResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Play again", buildQuizStartCallback()),
			tgbotapi.NewInlineKeyboardButtonData("🚪 Exit", buildQuizExitCallback()),
		),
	)
}
