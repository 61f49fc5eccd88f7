package dialog

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Spok95/cfo-bot/internal/budget"
)

// Keyboard — подсказка адаптеру, какую клавиатуру показать под ответом.
// Никакой логики не несёт, транспорт волен её игнорировать.
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardMain
	KeyboardCancel
	KeyboardCancelSkip
)

// Reply — исходящее сообщение диалога.
type Reply struct {
	Text     string
	Keyboard Keyboard
}

const (
	startText = "🎯 Отлично! Давайте рассчитаем ваш персональный бюджет."

	cancelText = "❌ Расчет отменен.\n\nЧтобы начать заново, нажмите «💰 Рассчитать бюджет»"

	failText = "😔 Что-то пошло не так, расчет не получился.\nНачните заново: «💰 Рассчитать бюджет»"

	idleText = "Чтобы начать расчет, нажмите «💰 Рассчитать бюджет»"
)

// Machine последовательно собирает анкету по таблице steps
// и на последнем шаге запускает расчёт.
type Machine struct {
	store *Store
	log   *slog.Logger
}

func NewMachine(store *Store, log *slog.Logger) *Machine {
	return &Machine{store: store, log: log}
}

// Active — идёт ли сейчас диалог с этим чатом.
func (m *Machine) Active(ctx context.Context, chatID int64) bool {
	it, _ := m.store.Get(ctx, chatID)
	return it.State != StateIdle
}

// Start начинает новый расчёт, затирая незавершённый диалог, если он был.
func (m *Machine) Start(ctx context.Context, chatID int64) Reply {
	_ = m.store.Set(ctx, chatID, StateAwaitSalary, Payload{})
	first := steps[StateAwaitSalary]
	return Reply{
		Text:     startText + "\n\n" + first.prompt,
		Keyboard: stepKeyboard(first),
	}
}

// Cancel прерывает диалог и выбрасывает всё собранное; возобновления нет.
func (m *Machine) Cancel(ctx context.Context, chatID int64) Reply {
	_ = m.store.Reset(ctx, chatID)
	return Reply{Text: cancelText, Keyboard: KeyboardMain}
}

// Skip принимает «пропустить» на необязательных шагах как ноль.
// На остальных шагах это обычный некорректный ввод: переспрашиваем,
// состояние не двигаем.
func (m *Machine) Skip(ctx context.Context, chatID int64) (Reply, bool) {
	it, _ := m.store.Get(ctx, chatID)
	st, ok := steps[it.State]
	if !ok {
		return Reply{Text: idleText, Keyboard: KeyboardMain}, false
	}
	if !st.skippable {
		return Reply{Text: st.badInput, Keyboard: stepKeyboard(st)}, false
	}
	return m.accept(ctx, it, st, 0, "")
}

// Input проверяет ответ по правилу активного шага. Неверный ввод —
// переспрос без единой мутации; верный — ровно одна запись в стор
// и переход к следующему шагу. Второе возвращаемое значение — признак
// завершённого расчёта.
func (m *Machine) Input(ctx context.Context, chatID int64, text string) (Reply, bool) {
	it, _ := m.store.Get(ctx, chatID)
	st, ok := steps[it.State]
	if !ok {
		return Reply{Text: idleText, Keyboard: KeyboardMain}, false
	}

	if st.text {
		name := strings.TrimSpace(text)
		if name == "" {
			return Reply{Text: st.badInput, Keyboard: stepKeyboard(st)}, false
		}
		return m.accept(ctx, it, st, 0, name)
	}

	n, err := parseAmount(text)
	if err != nil || n < st.min {
		return Reply{Text: st.badInput, Keyboard: stepKeyboard(st)}, false
	}
	return m.accept(ctx, it, st, n, "")
}

// accept записывает значение шага и двигает анкету дальше.
func (m *Machine) accept(ctx context.Context, it *Item, st step, n int, name string) (Reply, bool) {
	payload := it.Payload
	if payload == nil {
		payload = Payload{}
	}

	var ackValue string
	switch {
	case st.text:
		payload[st.field] = name
		ackValue = name
	case st.field == fieldGoalMonths:
		payload[st.field] = n
		ackValue = fmt.Sprintf("%d мес.", n)
	default:
		payload[st.field] = n
		ackValue = formatRubles(n)
	}

	if st.next == StateIdle {
		return m.finish(ctx, it.ChatID, payload), true
	}

	_ = m.store.Set(ctx, it.ChatID, st.next, payload)
	next := steps[st.next]
	return Reply{
		Text:     "✅ " + st.ack + ": " + ackValue + "\n\n" + next.prompt,
		Keyboard: stepKeyboard(next),
	}, false
}

// finish — терминальный переход: собираем Input, считаем, отдаём отчёт.
// Сессия сбрасывается в любом исходе, диалог не может «зависнуть».
func (m *Machine) finish(ctx context.Context, chatID int64, p Payload) Reply {
	in, err := buildInput(p)
	_ = m.store.Reset(ctx, chatID)
	if err != nil {
		m.log.Error("budget input assembly failed", "chat_id", chatID, "err", err)
		return Reply{Text: failText, Keyboard: KeyboardMain}
	}

	res := budget.Calculate(in)
	m.log.Info("calculation completed",
		"chat_id", chatID,
		"total_income", res.TotalIncome,
		"fixed_expenses", res.FixedExpenses,
		"monthly_contribution", res.MonthlyContribution,
		"monthly_budget", res.MonthlyBudget,
		"daily_limit", res.DailyLimit,
	)
	return Reply{Text: reportText(res), Keyboard: KeyboardMain}
}

// buildInput собирает budget.Input из payload. Необязательные поля,
// которых нет (пропущены), считаются нулями; отсутствие обязательного
// поля — внутренняя ошибка, наружу уходит общий отказ.
func buildInput(p Payload) (budget.Input, error) {
	var in budget.Input

	required := []struct {
		key string
		dst *int
	}{
		{fieldSalary, &in.Salary},
		{fieldRent, &in.Rent},
		{fieldTransport, &in.Transport},
		{fieldGoalAmount, &in.GoalAmount},
		{fieldGoalMonths, &in.GoalMonths},
	}
	for _, f := range required {
		n, ok := GetInt(p, f.key)
		if !ok {
			return budget.Input{}, fmt.Errorf("поле %q отсутствует или не число", f.key)
		}
		*f.dst = n
	}

	// skip-значения: нет записи — значит 0
	in.OtherIncome, _ = GetInt(p, fieldOtherIncome)
	in.OtherBills, _ = GetInt(p, fieldOtherBills)

	name, ok := GetString(p, fieldGoalName)
	if !ok || strings.TrimSpace(name) == "" {
		return budget.Input{}, fmt.Errorf("поле %q отсутствует или пустое", fieldGoalName)
	}
	in.GoalName = name

	return in, nil
}

// parseAmount разбирает сумму, терпимо к разделителям тысяч:
// «85 000», «85,000» и неразрывные пробелы считаются одним числом.
func parseAmount(text string) (int, error) {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, ",", "")
	return strconv.Atoi(s)
}

// formatRubles форматирует число с пробелами-разделителями: 39 000 ₽
func formatRubles(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(s[i])
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	return out + " ₽"
}

func reportText(res budget.Result) string {
	var b strings.Builder

	b.WriteString("💼 ВАШ ПЕРСОНАЛЬНЫЙ БЮДЖЕТ\n\n")
	b.WriteString("💳 Итого доход: " + formatRubles(res.TotalIncome) + "\n")
	b.WriteString("🏠 Обязательные расходы: " + formatRubles(res.FixedExpenses) + "\n")
	fmt.Fprintf(&b, "🎯 Взнос на цель «%s»: %s в месяц (срок: %d мес.)\n\n",
		res.GoalName, formatRubles(res.MonthlyContribution), res.GoalMonths)
	b.WriteString("🧮 Бюджет на траты: " + formatRubles(res.MonthlyBudget) + "\n")
	b.WriteString("📅 Дневной лимит: " + formatRubles(res.DailyLimit) + " в день\n")

	if res.MonthlyBudget < 1 {
		b.WriteString("\n⚠️ Доходы не покрывают расходы и взнос на цель.\n")
		b.WriteString("Пересмотрите расходы или увеличьте срок накопления.")
	} else {
		fmt.Fprintf(&b,
			"\n✅ Укладываясь в %s в день, вы накопите на «%s» за %d мес.",
			formatRubles(res.DailyLimit), res.GoalName, res.GoalMonths)
	}

	return b.String()
}
