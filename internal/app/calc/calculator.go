package calc

import (
	"backend/internal/app/ds"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Маршрут не найден в загруженной таблице
var ErrRouteNotFound = errors.New("маршрут не найден")

// Стоимость теста Life in the UK за человека.
// Бизнес-правило зашито в код и не зависит от таблиц данных.
const lifeInUKTestFee = 50.0

// Ключи сборов дополнительных услуг в таблице fees.json
const (
	priorityFeeKey      = "priority-service"
	superPriorityFeeKey = "super-priority-service"
	ceremonyFeeKey      = "citizenship-ceremony"
)

// Calculator считает стоимость по загруженным таблицам.
// Состояния не имеет, все входы передаются при создании.
type Calculator struct {
	routes map[string]ds.VisaRoute
	fees   map[string]ds.FeeEntry
	rules  ds.Rules
}

func NewCalculator(routes []ds.VisaRoute, fees map[string]ds.FeeEntry, rules ds.Rules) *Calculator {
	byID := make(map[string]ds.VisaRoute, len(routes))
	for _, route := range routes {
		byID[route.ID] = route
	}
	return &Calculator{
		routes: byID,
		fees:   fees,
		rules:  rules,
	}
}

// Calculate возвращает детализацию стоимости в фиксированном порядке статей.
// Единственная ошибка - неизвестный идентификатор маршрута; отсутствующий
// в таблице сбор молча дает нулевую сумму.
func (c *Calculator) Calculate(params ds.CalcParams) (*ds.CostBreakdown, error) {
	route, ok := c.routes[params.RouteID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRouteNotFound, params.RouteID)
	}

	heads := params.Heads()
	breakdown := &ds.CostBreakdown{
		LastReviewed: route.LastReviewed,
	}

	// 1. Визовый сбор
	appFee := c.applicationFeeAmount(route, params.ApplyFrom)
	breakdown.Items = append(breakdown.Items, ds.CostItem{
		Label:  fmt.Sprintf("Визовый сбор (%d %s)", heads, pluralizeApplicants(heads)),
		Amount: appFee * float64(heads),
	})

	// 2. Медицинский сбор IHS
	if route.IHSPolicy != ds.IHSNotRequired && route.IHSPolicy != ds.IHSExempt {
		rate := c.rules.IHS.Standard
		if route.IHSPolicy == ds.IHSRequiredStudent {
			rate = c.rules.IHS.Student
		}
		years := BilledYears(params.DurationMonths)
		amount := rate * years * float64(heads)
		if amount > 0 {
			breakdown.Items = append(breakdown.Items, ds.CostItem{
				Label:  fmt.Sprintf("Медицинский сбор IHS (%s)", formatYears(years)),
				Amount: amount,
			})
		}
	}

	// 3. Приоритетное рассмотрение: нужен и флаг, и поддержка маршрутом
	if params.Priority && route.HasExtra(ds.ExtraPriority) {
		breakdown.Items = append(breakdown.Items, ds.CostItem{
			Label:  "Приоритетное рассмотрение",
			Amount: c.feeAmount(priorityFeeKey, params.ApplyFrom) * float64(heads),
		})
	}

	// 4. Суперприоритетное рассмотрение
	if params.SuperPriority && route.HasExtra(ds.ExtraSuperPriority) {
		breakdown.Items = append(breakdown.Items, ds.CostItem{
			Label:  "Суперприоритетное рассмотрение",
			Amount: c.feeAmount(superPriorityFeeKey, params.ApplyFrom) * float64(heads),
		})
	}

	// 5. Церемония гражданства: добавляется без флага пользователя
	if route.HasExtra(ds.ExtraCitizenshipCeremony) {
		breakdown.Items = append(breakdown.Items, ds.CostItem{
			Label:  "Церемония гражданства",
			Amount: c.feeAmount(ceremonyFeeKey, params.ApplyFrom) * float64(heads),
		})
	}

	// 6. Тест Life in the UK
	if route.LifeInUKTest {
		breakdown.Items = append(breakdown.Items, ds.CostItem{
			Label:  "Тест Life in the UK",
			Amount: lifeInUKTestFee * float64(heads),
		})
	}

	for _, item := range breakdown.Items {
		breakdown.Total += item.Amount
	}

	return breakdown, nil
}

// applicationFeeAmount выбирает ключ визового сбора по месту подачи.
// Соглашение по данным: ключ содержит подстроку "inside" или "outside".
// Если подходящего нет - берем первый заявленный ключ маршрута.
func (c *Calculator) applicationFeeAmount(route ds.VisaRoute, applyFrom string) float64 {
	want := "outside"
	if applyFrom == ds.ApplyFromInsideUK {
		want = "inside"
	}

	key := ""
	for _, k := range route.FeeKeys {
		if strings.Contains(k, want) {
			key = k
			break
		}
	}
	if key == "" && len(route.FeeKeys) > 0 {
		key = route.FeeKeys[0]
	}

	return c.feeAmount(key, applyFrom)
}

// feeAmount возвращает сумму сбора для места подачи.
// Отсутствующий в таблице ключ дает ноль, ошибки нет.
func (c *Calculator) feeAmount(key, applyFrom string) float64 {
	fee, ok := c.fees[key]
	if !ok {
		return 0
	}
	return fee.AmountFor(applyFrom)
}

// BilledYears переводит срок в месяцах в оплачиваемые годы IHS:
// количество полугодий округляется вверх до целого.
// 1 месяц -> 0.5 года, 7 месяцев -> 1.0 год.
func BilledYears(months int) float64 {
	if months <= 0 {
		return 0
	}
	return math.Ceil(float64(months)/6.0) * 0.5
}
