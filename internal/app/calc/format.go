package calc

import (
	"fmt"
	"math"
)

// pluralizeApplicants склоняет слово "заявитель" по числу
func pluralizeApplicants(n int) string {
	return pluralize(n, "заявитель", "заявителя", "заявителей")
}

// pluralize выбирает форму существительного по правилам русского языка
func pluralize(n int, one, few, many string) string {
	n = n % 100
	if n >= 11 && n <= 14 {
		return many
	}
	switch n % 10 {
	case 1:
		return one
	case 2, 3, 4:
		return few
	default:
		return many
	}
}

// formatYears печатает оплачиваемые годы IHS: целые - со склонением,
// половинки - десятичной дробью
func formatYears(years float64) string {
	if years == math.Trunc(years) {
		n := int(years)
		return fmt.Sprintf("%d %s", n, pluralize(n, "год", "года", "лет"))
	}
	return fmt.Sprintf("%.1f года", years)
}
