package ds

// Параметры расчета стоимости (создаются из формы, живут один запрос)
type CalcParams struct {
	RouteID        string
	ApplyFrom      string // inside_uk или outside_uk
	DurationMonths int
	Applicants     int // >= 1
	Dependants     int // >= 0
	Priority       bool
	SuperPriority  bool
}

// Heads возвращает общее количество людей в заявлении
func (p CalcParams) Heads() int {
	return p.Applicants + p.Dependants
}

// Строка детализации: название + сумма
type CostItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Результат расчета: упорядоченная детализация + итог
type CostBreakdown struct {
	Items []CostItem `json:"items"`
	Total float64    `json:"total"`
	// Дата последней проверки данных маршрута, передается как есть
	LastReviewed string `json:"last_reviewed"`
}
