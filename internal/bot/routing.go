package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/cfo-bot/internal/infra/metrics"
)

func (b *Bot) onMessage(ctx context.Context, msg *tgbotapi.Message) {
	metrics.Updates.Inc()
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}
	b.handleText(ctx, msg)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start", "help":
		// справка не трогает сессию: начатый расчет можно продолжить
		m := tgbotapi.NewMessage(chatID, welcomeText)
		m.ReplyMarkup = mainReplyKeyboard()
		b.send(m)

	case "calc":
		b.reply(chatID, b.flow.Start(ctx, chatID))

	case "cancel":
		if !b.flow.Active(ctx, chatID) {
			b.send(tgbotapi.NewMessage(chatID, "Нет активного расчета."))
			return
		}
		b.reply(chatID, b.flow.Cancel(ctx, chatID))

	default:
		b.send(tgbotapi.NewMessage(chatID, "Не знаю такую команду. Наберите /help"))
	}
}

func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Text {
	case btnCalc:
		b.reply(chatID, b.flow.Start(ctx, chatID))

	case btnExample:
		// статичный пример, сессию не трогаем
		m := tgbotapi.NewMessage(chatID, exampleText)
		m.ReplyMarkup = mainReplyKeyboard()
		b.send(m)

	case btnHelp:
		m := tgbotapi.NewMessage(chatID, welcomeText)
		m.ReplyMarkup = mainReplyKeyboard()
		b.send(m)

	case btnCancel, btnCancelShort:
		if !b.flow.Active(ctx, chatID) {
			b.sendMenu(chatID)
			return
		}
		b.reply(chatID, b.flow.Cancel(ctx, chatID))

	case btnSkip:
		r, done := b.flow.Skip(ctx, chatID)
		b.reply(chatID, r)
		if done {
			metrics.Calculations.Inc()
		}

	default:
		if !b.flow.Active(ctx, chatID) {
			b.sendMenu(chatID)
			return
		}
		r, done := b.flow.Input(ctx, chatID, msg.Text)
		b.reply(chatID, r)
		if done {
			metrics.Calculations.Inc()
		}
	}
}

func (b *Bot) sendMenu(chatID int64) {
	m := tgbotapi.NewMessage(chatID, menuText)
	m.ReplyMarkup = mainReplyKeyboard()
	b.send(m)
}
