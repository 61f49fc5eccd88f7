package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/cfo-bot/internal/dialog"
	"github.com/Spok95/cfo-bot/internal/infra/metrics"
)

// Bot — тонкий адаптер между Telegram и машиной диалога.
// Вся логика анкеты и расчёта живёт в internal/dialog и internal/budget.
type Bot struct {
	api  *tgbotapi.BotAPI
	log  *slog.Logger
	flow *dialog.Machine
}

func New(api *tgbotapi.BotAPI, log *slog.Logger, flow *dialog.Machine) *Bot {
	return &Bot{api: api, log: log, flow: flow}
}

// Run крутит long polling до отмены контекста. Сообщения одного чата
// приходят и обрабатываются последовательно, в порядке отправки.
func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd := <-updates:
			if upd.Message != nil {
				b.onMessage(ctx, upd.Message)
			}
		}
	}
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		metrics.MessagesSent.WithLabelValues("fail").Inc()
		b.log.Error("send failed", "err", err)
		return
	}
	metrics.MessagesSent.WithLabelValues("ok").Inc()
}

// reply отправляет ответ машины, навешивая клавиатуру по её подсказке.
func (b *Bot) reply(chatID int64, r dialog.Reply) {
	m := tgbotapi.NewMessage(chatID, r.Text)
	switch r.Keyboard {
	case dialog.KeyboardMain:
		m.ReplyMarkup = mainReplyKeyboard()
	case dialog.KeyboardCancel:
		m.ReplyMarkup = cancelReplyKeyboard()
	case dialog.KeyboardCancelSkip:
		m.ReplyMarkup = skipReplyKeyboard()
	}
	b.send(m)
}
