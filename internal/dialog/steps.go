package dialog

// step описывает один шаг анкеты: что спрашиваем, как проверяем ответ
// и куда переходим. Вся последовательность задана таблицей ниже,
// движок в machine.go один на все шаги.
type step struct {
	field     string
	ack       string // подпись в подтверждении «✅ ...: значение»
	prompt    string
	badInput  string
	min       int  // нижняя граница: 1 — строго положительное, 0 — неотрицательное
	skippable bool // допускает «⏭ Пропустить» вместо числа
	text      bool // строковый ввод (название цели)
	next      State
}

const badNumberText = "⚠️ Пожалуйста, введите корректное число\nПример: 70000 или 85 000"

var steps = map[State]step{
	StateAwaitSalary: {
		field:    fieldSalary,
		ack:      "Зарплата",
		prompt:   "Введите вашу зарплату (основной доход):\nПросто отправьте число, например: 70000",
		badInput: badNumberText,
		min:      1,
		next:     StateAwaitOtherIncome,
	},
	StateAwaitOtherIncome: {
		field:     fieldOtherIncome,
		ack:       "Прочие доходы",
		prompt:    "Введите другие источники дохода в месяц:\nЕсли нет других доходов, отправьте 0 или нажмите «⏭ Пропустить»",
		badInput:  badNumberText,
		min:       0,
		skippable: true,
		next:      StateAwaitRent,
	},
	StateAwaitRent: {
		field:    fieldRent,
		ack:      "Аренда жилья",
		prompt:   "Сколько вы платите за жильё в месяц (аренда или ипотека)?\nЕсли жильё своё и платежей нет, отправьте 0",
		badInput: badNumberText,
		min:      0,
		next:     StateAwaitTransport,
	},
	StateAwaitTransport: {
		field:    fieldTransport,
		ack:      "Транспорт",
		prompt:   "Сколько уходит на транспорт в месяц (проезд, бензин)?",
		badInput: badNumberText,
		min:      0,
		next:     StateAwaitOtherBills,
	},
	StateAwaitOtherBills: {
		field:     fieldOtherBills,
		ack:       "Прочие платежи",
		prompt:    "Прочие обязательные платежи в месяц (связь, подписки, кредиты):\nЕсли таких нет, отправьте 0 или нажмите «⏭ Пропустить»",
		badInput:  badNumberText,
		min:       0,
		skippable: true,
		next:      StateAwaitGoalName,
	},
	StateAwaitGoalName: {
		field:    fieldGoalName,
		ack:      "Цель",
		prompt:   "На что копим? Напишите название цели\nНапример: Отпуск на море",
		badInput: "⚠️ Название цели не может быть пустым\nНапишите пару слов, например: Отпуск на море",
		text:     true,
		next:     StateAwaitGoalAmount,
	},
	StateAwaitGoalAmount: {
		field:    fieldGoalAmount,
		ack:      "Сумма цели",
		prompt:   "Сколько нужно накопить? Введите сумму цели:",
		badInput: badNumberText,
		min:      1,
		next:     StateAwaitGoalMonths,
	},
	StateAwaitGoalMonths: {
		field:    fieldGoalMonths,
		ack:      "Срок накопления",
		prompt:   "За сколько месяцев хотите накопить? Введите число месяцев:",
		badInput: badNumberText,
		min:      1,
		next:     StateIdle, // терминальный переход: расчёт и отчёт
	},
}

func stepKeyboard(s step) Keyboard {
	if s.skippable {
		return KeyboardCancelSkip
	}
	return KeyboardCancel
}
