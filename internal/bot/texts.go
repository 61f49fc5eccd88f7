package bot

const welcomeText = `👋 Добро пожаловать в Личный CFO!

Я помогу рассчитать ваш дневной бюджетный лимит — сумму, которую можно тратить каждый день после всех обязательных платежей и отчислений на цель.

📈 Как это работает:
1. Вы вводите доходы, расходы и финансовую цель
2. Я рассчитываю, сколько нужно откладывать в месяц
3. Вы получаете дневной лимит — ваш «паёк» на каждый день

🎯 Основные возможности:
• 💰 Рассчитать бюджет — начать новый расчет
• 📊 Пример расчета — посмотреть, как это работает
• ❓ Помощь — показать это сообщение

💡 Просто нажмите «💰 Рассчитать бюджет», чтобы начать!`

const exampleText = `📊 ПРИМЕР РАСЧЕТА ДНЕВНОГО ЛИМИТА

💳 Доходы:
├ Зарплата: 70 000 ₽
└ Дополнительный доход: 20 000 ₽
Итого доход: 90 000 ₽

🏠 Расходы:
├ Аренда жилья: 30 000 ₽
├ Транспорт: 6 000 ₽
└ Прочие платежи: 0 ₽
Итого расходы: 36 000 ₽

🎯 Цель:
├ На что копим: Отпуск на море
├ Сумма цели: 150 000 ₽
└ Срок накопления: 10 месяцев
Ежемесячный взнос: 15 000 ₽

🧮 Расчет:
├ Доходы: 90 000 ₽
├ Расходы: 36 000 ₽
├ Взнос на цель: 15 000 ₽
└ Бюджет на траты: 39 000 ₽

📅 Дневной лимит:
39 000 ₽ ÷ 30 дней = 1 300 ₽ в день

✅ Итог: чтобы накопить на отпуск за 10 месяцев, можно тратить 1 300 ₽ в день на еду, развлечения и прочие нужды.`

const menuText = `Выберите действие в меню. Чтобы начать расчет, нажмите «💰 Рассчитать бюджет»`
