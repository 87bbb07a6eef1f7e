package calc

import (
	"backend/internal/app/ds"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(v float64) *float64 { return &v }

// Набор таблиц для тестов: урезанная копия боевых данных
func testCalculator() *Calculator {
	routes := []ds.VisaRoute{
		{
			ID:              "skilled-worker",
			Name:            "Skilled Worker visa",
			Category:        "work",
			ApplyFrom:       ds.ApplyFromBoth,
			DurationPolicy:  ds.DurationFixed,
			DurationOptions: []int{12, 24, 36, 60},
			IHSPolicy:       ds.IHSStandard,
			FeeKeys:         []string{"skilled-worker-inside", "skilled-worker-outside", "priority-service", "super-priority-service"},
			Extras:          []string{ds.ExtraPriority, ds.ExtraSuperPriority},
			LastReviewed:    "2026-07-14",
		},
		{
			ID:             "health-care-worker",
			Name:           "Health and Care Worker visa",
			Category:       "work",
			ApplyFrom:      ds.ApplyFromBoth,
			DurationPolicy: ds.DurationFixed,
			IHSPolicy:      ds.IHSExempt,
			FeeKeys:        []string{"health-care-worker-outside"},
			LastReviewed:   "2026-07-14",
		},
		{
			ID:             "standard-visitor",
			Name:           "Standard Visitor visa",
			Category:       "visit",
			ApplyFrom:      ds.ApplyFromOutsideUK,
			DurationPolicy: ds.DurationFixed,
			IHSPolicy:      ds.IHSNotRequired,
			FeeKeys:        []string{"standard-visitor-outside"},
			LastReviewed:   "2026-07-01",
		},
		{
			ID:             "student",
			Name:           "Student visa",
			Category:       "study",
			ApplyFrom:      ds.ApplyFromOutsideUK,
			DurationPolicy: ds.DurationCustom,
			IHSPolicy:      ds.IHSRequiredStudent,
			FeeKeys:        []string{"student-outside"},
			LastReviewed:   "2026-06-02",
		},
		{
			ID:             "naturalisation-citizenship",
			Name:           "British Citizenship (naturalisation)",
			Category:       "citizenship",
			ApplyFrom:      ds.ApplyFromInsideUK,
			DurationPolicy: ds.DurationPermanent,
			IHSPolicy:      ds.IHSNotRequired,
			FeeKeys:        []string{"naturalisation-inside", "citizenship-ceremony"},
			Extras:         []string{ds.ExtraCitizenshipCeremony},
			LifeInUKTest:   true,
			LastReviewed:   "2026-07-14",
		},
		{
			ID:             "ghost-fee",
			Name:           "Маршрут со сбором вне таблицы",
			Category:       "work",
			ApplyFrom:      ds.ApplyFromOutsideUK,
			DurationPolicy: ds.DurationFixed,
			IHSPolicy:      ds.IHSNotRequired,
			FeeKeys:        []string{"missing-fee-outside"},
			LastReviewed:   "2026-01-01",
		},
		{
			ID:             "first-key-fallback",
			Name:           "Маршрут без inside/outside в ключах",
			Category:       "work",
			ApplyFrom:      ds.ApplyFromOutsideUK,
			DurationPolicy: ds.DurationFixed,
			IHSPolicy:      ds.IHSNotRequired,
			FeeKeys:        []string{"flat-application-fee"},
			LastReviewed:   "2026-01-01",
		},
	}

	fees := map[string]ds.FeeEntry{
		"skilled-worker-inside":      {Inside: amount(827)},
		"skilled-worker-outside":     {Outside: amount(719)},
		"health-care-worker-outside": {Outside: amount(284)},
		"standard-visitor-outside":   {Outside: amount(115)},
		"student-outside":            {Inside: amount(490), Outside: amount(490)},
		"naturalisation-inside":      {Inside: amount(1500)},
		"citizenship-ceremony":       {Inside: amount(80)},
		"priority-service":           {Inside: amount(500), Outside: amount(500)},
		"super-priority-service":     {Inside: amount(1000), Outside: amount(1000)},
		"flat-application-fee":       {Inside: amount(200), Outside: amount(300)},
	}

	rules := ds.Rules{IHS: ds.IHSRates{Standard: 624, Student: 470}}

	return NewCalculator(routes, fees, rules)
}

// Пример из предметной области: Skilled Worker из-за рубежа,
// 1 заявитель, 12 месяцев -> визовый сбор + IHS за год
func TestCalculateSkilledWorkerExample(t *testing.T) {
	c := testCalculator()

	breakdown, err := c.Calculate(ds.CalcParams{
		RouteID:        "skilled-worker",
		ApplyFrom:      ds.ApplyFromOutsideUK,
		DurationMonths: 12,
		Applicants:     1,
	})
	require.NoError(t, err)
	require.Len(t, breakdown.Items, 2)

	assert.Equal(t, "Визовый сбор (1 заявитель)", breakdown.Items[0].Label)
	assert.Equal(t, 719.0, breakdown.Items[0].Amount)
	assert.Equal(t, "Медицинский сбор IHS (1 год)", breakdown.Items[1].Label)
	assert.Equal(t, 624.0, breakdown.Items[1].Amount)
	assert.Equal(t, 1343.0, breakdown.Total)
	assert.Equal(t, "2026-07-14", breakdown.LastReviewed)
}

// Выбор ключа сбора по месту подачи и умножение на всех людей
func TestCalculateInsideFeeWithDependants(t *testing.T) {
	c := testCalculator()

	breakdown, err := c.Calculate(ds.CalcParams{
		RouteID:        "skilled-worker",
		ApplyFrom:      ds.ApplyFromInsideUK,
		DurationMonths: 36,
		Applicants:     2,
		Dependants:     1,
	})
	require.NoError(t, err)

	// 827 * 3 человека
	assert.Equal(t, "Визовый сбор (3 заявителя)", breakdown.Items[0].Label)
	assert.Equal(t, 2481.0, breakdown.Items[0].Amount)
	// 624 * 3 года * 3 человека
	assert.Equal(t, 5616.0, breakdown.Items[1].Amount)
}

// IHS отсутствует при политиках not_required и exempt
func TestCalculateIHSSkipped(t *testing.T) {
	c := testCalculator()

	for _, routeID := range []string{"standard-visitor", "health-care-worker"} {
		breakdown, err := c.Calculate(ds.CalcParams{
			RouteID:        routeID,
			ApplyFrom:      ds.ApplyFromOutsideUK,
			DurationMonths: 24,
			Applicants:     1,
		})
		require.NoError(t, err, routeID)
		for _, item := range breakdown.Items {
			assert.NotContains(t, item.Label, "IHS", routeID)
		}
	}
}

// Студенческая ставка IHS и округление срока вверх до полугодия
func TestCalculateStudentRate(t *testing.T) {
	c := testCalculator()

	// 7 месяцев -> 1.0 год по студенческой ставке
	breakdown, err := c.Calculate(ds.CalcParams{
		RouteID:        "student",
		ApplyFrom:      ds.ApplyFromOutsideUK,
		DurationMonths: 7,
		Applicants:     1,
	})
	require.NoError(t, err)
	require.Len(t, breakdown.Items, 2)
	assert.Equal(t, 470.0, breakdown.Items[1].Amount)
}

// Правило округления: количество полугодий вверх до целого
func TestBilledYears(t *testing.T) {
	cases := []struct {
		months int
		years  float64
	}{
		{0, 0},
		{-3, 0},
		{1, 0.5},
		{5, 0.5},
		{6, 0.5},
		{7, 1.0},
		{12, 1.0},
		{13, 1.5},
		{18, 1.5},
		{19, 2.0},
		{24, 2.0},
		{60, 5.0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.years, BilledYears(tc.months), "months=%d", tc.months)
	}
}

// Приоритетные услуги добавляются только при флаге И поддержке маршрутом
func TestCalculatePriorityGating(t *testing.T) {
	c := testCalculator()

	cases := []struct {
		name          string
		routeID       string
		priority      bool
		superPriority bool
		wantPriority  bool
		wantSuper     bool
	}{
		{"оба флага на маршруте с поддержкой", "skilled-worker", true, true, true, true},
		{"без флагов ничего не добавляется", "skilled-worker", false, false, false, false},
		{"флаг без поддержки маршрутом игнорируется", "standard-visitor", true, true, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			breakdown, err := c.Calculate(ds.CalcParams{
				RouteID:        tc.routeID,
				ApplyFrom:      ds.ApplyFromOutsideUK,
				DurationMonths: 12,
				Applicants:     1,
				Priority:       tc.priority,
				SuperPriority:  tc.superPriority,
			})
			require.NoError(t, err)

			hasPriority, hasSuper := false, false
			for _, item := range breakdown.Items {
				switch item.Label {
				case "Приоритетное рассмотрение":
					hasPriority = true
				case "Суперприоритетное рассмотрение":
					hasSuper = true
				}
			}
			assert.Equal(t, tc.wantPriority, hasPriority)
			assert.Equal(t, tc.wantSuper, hasSuper)
		})
	}
}

// Маршрут гражданства: церемония без флага пользователя + тест Life in the UK
func TestCalculateCitizenshipRoute(t *testing.T) {
	c := testCalculator()

	breakdown, err := c.Calculate(ds.CalcParams{
		RouteID:    "naturalisation-citizenship",
		ApplyFrom:  ds.ApplyFromInsideUK,
		Applicants: 2,
	})
	require.NoError(t, err)
	require.Len(t, breakdown.Items, 3)

	// 1500 * 2
	assert.Equal(t, 3000.0, breakdown.Items[0].Amount)
	// церемония 80 * 2, флаги не нужны
	assert.Equal(t, "Церемония гражданства", breakdown.Items[1].Label)
	assert.Equal(t, 160.0, breakdown.Items[1].Amount)
	// тест Life in the UK: 50 за человека, вне таблиц данных
	assert.Equal(t, "Тест Life in the UK", breakdown.Items[2].Label)
	assert.Equal(t, 100.0, breakdown.Items[2].Amount)
}

// Итог всегда равен сумме строк детализации
func TestCalculateTotalEqualsSum(t *testing.T) {
	c := testCalculator()

	breakdown, err := c.Calculate(ds.CalcParams{
		RouteID:        "skilled-worker",
		ApplyFrom:      ds.ApplyFromInsideUK,
		DurationMonths: 25,
		Applicants:     3,
		Dependants:     2,
		Priority:       true,
		SuperPriority:  true,
	})
	require.NoError(t, err)

	sum := 0.0
	for _, item := range breakdown.Items {
		sum += item.Amount
	}
	assert.Equal(t, sum, breakdown.Total)
}

// Неизвестный идентификатор - именованная ошибка, детализации нет
func TestCalculateRouteNotFound(t *testing.T) {
	c := testCalculator()

	breakdown, err := c.Calculate(ds.CalcParams{
		RouteID:    "no-such-route",
		ApplyFrom:  ds.ApplyFromOutsideUK,
		Applicants: 1,
	})
	require.ErrorIs(t, err, ErrRouteNotFound)
	assert.Nil(t, breakdown)
}

// Отсутствующий в таблице сбор молча дает нулевую строку
func TestCalculateMissingFeeSilentZero(t *testing.T) {
	c := testCalculator()

	breakdown, err := c.Calculate(ds.CalcParams{
		RouteID:        "ghost-fee",
		ApplyFrom:      ds.ApplyFromOutsideUK,
		DurationMonths: 12,
		Applicants:     1,
	})
	require.NoError(t, err)
	require.Len(t, breakdown.Items, 1)
	assert.Equal(t, 0.0, breakdown.Items[0].Amount)
	assert.Equal(t, 0.0, breakdown.Total)
}

// Без ключа с подстрокой inside/outside берется первый заявленный ключ
func TestCalculateFirstKeyFallback(t *testing.T) {
	c := testCalculator()

	breakdown, err := c.Calculate(ds.CalcParams{
		RouteID:        "first-key-fallback",
		ApplyFrom:      ds.ApplyFromOutsideUK,
		DurationMonths: 12,
		Applicants:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, 300.0, breakdown.Items[0].Amount)
}

// Если сумма для запрошенного места NULL, берется вторая заполненная
func TestFeeEntryNullFallback(t *testing.T) {
	fee := ds.FeeEntry{Outside: amount(719)}
	assert.Equal(t, 719.0, fee.AmountFor(ds.ApplyFromInsideUK))
	assert.Equal(t, 719.0, fee.AmountFor(ds.ApplyFromOutsideUK))
}
