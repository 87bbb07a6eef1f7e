package ds

// 3. Таблица правил (rules.json) - годовые ставки IHS по категориям
type Rules struct {
	IHS IHSRates `json:"ihs"`
}

type IHSRates struct {
	Standard float64 `json:"standard"` // ставка за год, стандартная
	Student  float64 `json:"student"`  // ставка за год, студенческая
}
