package bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Надписи кнопок; по ним же распознаются ответы пользователя.
const (
	btnCalc        = "💰 Рассчитать бюджет"
	btnExample     = "📊 Пример расчета"
	btnHelp        = "❓ Помощь"
	btnCancel      = "❌ Отменить расчет"
	btnCancelShort = "❌ Отменить"
	btnSkip        = "⏭ Пропустить"
)

// mainReplyKeyboard Нижняя панель главного меню
func mainReplyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnCalc)},
			{tgbotapi.NewKeyboardButton(btnExample), tgbotapi.NewKeyboardButton(btnHelp)},
		},
	}
}

func cancelReplyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnCancel)},
		},
	}
}

func skipReplyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnSkip), tgbotapi.NewKeyboardButton(btnCancelShort)},
		},
	}
}
