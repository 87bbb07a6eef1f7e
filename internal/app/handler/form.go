package handler

import (
	"backend/internal/app/ds"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Тексты нарушений правил формы
const (
	msgLocationRequired = "выберите место подачи заявления"
	msgDurationPositive = "срок должен быть положительным целым числом месяцев"
	msgApplicantsRange  = "количество заявителей должно быть от 1 до 10"
	msgDependantsRange  = "количество иждивенцев должно быть от 0 до 10"
)

// parseCalcForm разбирает поля формы калькулятора и собирает
// список нарушений. При любом нарушении расчет не выполняется.
func (h *Handler) parseCalcForm(ctx *gin.Context, route ds.VisaRoute) (ds.CalcParams, []string) {
	params := ds.CalcParams{
		RouteID:    route.ID,
		Applicants: 1,
	}

	// Флаги дополнительных услуг (checkbox)
	params.Priority = ctx.PostForm("priority") == "on"
	params.SuperPriority = ctx.PostForm("super_priority") == "on"

	var violations []string

	// Место подачи: селектор есть только когда разрешены оба варианта
	if route.ApplyFrom == ds.ApplyFromBoth {
		params.ApplyFrom = ctx.PostForm("location")
	} else {
		params.ApplyFrom = route.ApplyFrom
	}

	// Поля с числами разбираем отдельно: ошибки разбора считаются нарушением
	if a := ctx.PostForm("applicants"); a != "" {
		if val, err := strconv.Atoi(a); err == nil {
			params.Applicants = val
		} else {
			params.Applicants = 0
		}
	}
	if d := ctx.PostForm("dependants"); d != "" {
		if val, err := strconv.Atoi(d); err == nil {
			params.Dependants = val
		} else {
			params.Dependants = -1
		}
	}

	// Поле срока присутствует только для не-permanent маршрутов
	if route.DurationPolicy != ds.DurationPermanent {
		durStr := ctx.PostForm("duration")
		val, err := strconv.Atoi(durStr)
		if err != nil {
			val = 0
		}
		params.DurationMonths = val
	}

	violations = append(violations, validateParams(route, params)...)
	return params, violations
}

// validateParams проверяет параметры расчета по правилам формы.
// Возвращает ВСЕ нарушенные правила одним списком.
func validateParams(route ds.VisaRoute, params ds.CalcParams) []string {
	var violations []string

	if params.ApplyFrom != ds.ApplyFromInsideUK && params.ApplyFrom != ds.ApplyFromOutsideUK {
		violations = append(violations, msgLocationRequired)
	}

	if route.DurationPolicy != ds.DurationPermanent && params.DurationMonths <= 0 {
		violations = append(violations, msgDurationPositive)
	}

	if params.Applicants < 1 || params.Applicants > 10 {
		violations = append(violations, msgApplicantsRange)
	}

	if params.Dependants < 0 || params.Dependants > 10 {
		violations = append(violations, msgDependantsRange)
	}

	return violations
}
