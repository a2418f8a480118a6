package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"quiz-bot/api/internal/engine"
)

// Постоянная клавиатура викторины: два ряда, как в VK-версии.
func quizKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(engine.ButtonNewQuestion),
			tgbotapi.NewKeyboardButton(engine.ButtonSurrender),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(engine.ButtonMyScore),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}
