package dialog

type State string

const (
	// Нет активного диалога
	StateIdle State = "idle"

	// Анкета расчёта бюджета, строго по порядку
	StateAwaitSalary      State = "await_salary"
	StateAwaitOtherIncome State = "await_other_income"
	StateAwaitRent        State = "await_rent"
	StateAwaitTransport   State = "await_transport"
	StateAwaitOtherBills  State = "await_other_bills"
	StateAwaitGoalName    State = "await_goal_name"
	StateAwaitGoalAmount  State = "await_goal_amount"
	StateAwaitGoalMonths  State = "await_goal_months"
)

// Ключи payload; порядок записи совпадает с порядком шагов анкеты.
const (
	fieldSalary      = "salary"
	fieldOtherIncome = "other_income"
	fieldRent        = "rent"
	fieldTransport   = "transport"
	fieldOtherBills  = "other_bills"
	fieldGoalName    = "goal_name"
	fieldGoalAmount  = "goal_amount"
	fieldGoalMonths  = "goal_months"
)

type Payload map[string]any

type Item struct {
	ChatID  int64
	State   State
	Payload Payload
}

// GetString Helper для безопасного чтения строк из payload
func GetString(p Payload, key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetInt Helper для безопасного чтения целых из payload
func GetInt(p Payload, key string) (int, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}
