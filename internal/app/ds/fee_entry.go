package ds

// 2. Таблица сборов (fees.json) - суммы в фунтах стерлингов
// Хотя бы одно из двух значений обязано быть заполнено
type FeeEntry struct {
	Label   string   `json:"label"`
	Inside  *float64 `json:"inside"`  // Nullable: сумма при подаче внутри UK
	Outside *float64 `json:"outside"` // Nullable: сумма при подаче из-за рубежа
}

// AmountFor возвращает сумму для места подачи.
// Если запрошенное значение NULL, берем другое (какое заполнено).
func (f FeeEntry) AmountFor(location string) float64 {
	want, other := f.Outside, f.Inside
	if location == ApplyFromInsideUK {
		want, other = f.Inside, f.Outside
	}
	if want != nil {
		return *want
	}
	if other != nil {
		return *other
	}
	return 0
}
