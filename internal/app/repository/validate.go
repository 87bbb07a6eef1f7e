package repository

import (
	"backend/internal/app/ds"
	"fmt"
)

// Отчет проверки таблиц: жесткие ошибки и предупреждения
type ValidationReport struct {
	Errors   []string
	Warnings []string
}

func (r *ValidationReport) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r *ValidationReport) addError(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationReport) addWarning(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// ValidateTables проверяет согласованность трех статических таблиц:
// уникальность идентификаторов, ссылочную целостность ключей сборов
// и заполненность обязательных полей.
func ValidateTables(routes []ds.VisaRoute, fees map[string]ds.FeeEntry, rules ds.Rules) *ValidationReport {
	report := &ValidationReport{}

	seen := make(map[string]bool, len(routes))
	for _, route := range routes {
		if route.ID == "" {
			report.addError("маршрут без идентификатора (name=%q)", route.Name)
			continue
		}
		if seen[route.ID] {
			report.addError("дубликат идентификатора маршрута %q", route.ID)
		}
		seen[route.ID] = true

		validateRouteFields(route, report)

		// Каждый заявленный ключ сбора обязан существовать в таблице fees
		for _, key := range route.FeeKeys {
			if _, ok := fees[key]; !ok {
				report.addError("маршрут %q ссылается на несуществующий сбор %q", route.ID, key)
			}
		}
	}

	for key, fee := range fees {
		if fee.Inside == nil && fee.Outside == nil {
			report.addError("сбор %q не имеет ни одной суммы (inside и outside пустые)", key)
		}
	}

	if rules.IHS.Standard <= 0 {
		report.addError("ставка IHS standard не задана или не положительна")
	}
	if rules.IHS.Student <= 0 {
		report.addError("ставка IHS student не задана или не положительна")
	}

	return report
}

// Проверка обязательных полей одного маршрута
func validateRouteFields(route ds.VisaRoute, report *ValidationReport) {
	if route.Name == "" {
		report.addError("маршрут %q без названия", route.ID)
	}
	if route.Category == "" {
		report.addError("маршрут %q без категории", route.ID)
	}

	switch route.ApplyFrom {
	case ds.ApplyFromInsideUK, ds.ApplyFromOutsideUK, ds.ApplyFromBoth:
	default:
		report.addError("маршрут %q: неизвестная политика apply_from %q", route.ID, route.ApplyFrom)
	}

	switch route.DurationPolicy {
	case ds.DurationFixed:
		if len(route.DurationOptions) == 0 {
			report.addError("маршрут %q: политика fixed без вариантов срока", route.ID)
		}
	case ds.DurationCustom, ds.DurationPermanent:
	default:
		report.addError("маршрут %q: неизвестная политика срока %q", route.ID, route.DurationPolicy)
	}

	switch route.IHSPolicy {
	case ds.IHSNotRequired, ds.IHSExempt, ds.IHSRequiredStudent, ds.IHSStandard:
	default:
		report.addError("маршрут %q: неизвестная политика IHS %q", route.ID, route.IHSPolicy)
	}

	if len(route.FeeKeys) == 0 {
		report.addError("маршрут %q не заявил ни одного ключа сбора", route.ID)
	}

	for _, extra := range route.Extras {
		switch extra {
		case ds.ExtraPriority, ds.ExtraSuperPriority, ds.ExtraCitizenshipCeremony:
		default:
			report.addError("маршрут %q: неизвестная доп. услуга %q", route.ID, extra)
		}
	}

	if route.LastReviewed == "" {
		report.addError("маршрут %q без даты последней проверки", route.ID)
	}
}

// CheckContentFiles добавляет предупреждения по индексируемым маршрутам
// без файла содержимого. Это не жесткая ошибка.
func CheckContentFiles(repo *Repository, routes []ds.VisaRoute, report *ValidationReport) {
	for _, route := range routes {
		if route.Indexable && !repo.HasRouteContent(route.ID) {
			report.addWarning("индексируемый маршрут %q без файла содержимого %s/%s.json", route.ID, contentDir, route.ID)
		}
	}
}
