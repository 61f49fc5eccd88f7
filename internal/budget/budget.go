package budget

// Input — полный набор данных, собранных диалогом расчёта.
// Все значения заранее проверены машиной состояний:
// Salary, GoalAmount и GoalMonths > 0, остальные суммы >= 0.
type Input struct {
	Salary      int
	OtherIncome int
	Rent        int
	Transport   int
	OtherBills  int
	GoalName    string
	GoalAmount  int
	GoalMonths  int
}

// Result — производные величины одного расчёта; нигде не сохраняется.
type Result struct {
	TotalIncome         int
	FixedExpenses       int
	MonthlyContribution int
	MonthlyBudget       int // может быть отрицательным
	DailyLimit          int // никогда не отрицательный
	GoalName            string
	GoalMonths          int
}

const daysInMonth = 30

// Calculate считает дневной бюджетный лимит. Чистая функция,
// вся арифметика целочисленная, без округлений сверх указанных.
func Calculate(in Input) Result {
	totalIncome := in.Salary + in.OtherIncome
	fixedExpenses := in.Rent + in.Transport + in.OtherBills

	months := in.GoalMonths
	if months < 1 {
		months = 1
	}
	// округление вверх: взнос * месяцы всегда покрывает сумму цели
	contribution := (in.GoalAmount + months - 1) / months

	monthlyBudget := totalIncome - fixedExpenses - contribution

	dailyLimit := 0
	if monthlyBudget >= 1 {
		dailyLimit = monthlyBudget / daysInMonth
	}

	return Result{
		TotalIncome:         totalIncome,
		FixedExpenses:       fixedExpenses,
		MonthlyContribution: contribution,
		MonthlyBudget:       monthlyBudget,
		DailyLimit:          dailyLimit,
		GoalName:            in.GoalName,
		GoalMonths:          months,
	}
}
