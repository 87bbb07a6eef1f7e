package ds

// Политика места подачи заявления
const (
	ApplyFromInsideUK  = "inside_uk"
	ApplyFromOutsideUK = "outside_uk"
	ApplyFromBoth      = "both"
)

// Политика срока визы
const (
	DurationFixed     = "fixed"
	DurationCustom    = "custom"
	DurationPermanent = "permanent"
)

// Политика медицинского сбора (IHS)
const (
	IHSNotRequired     = "not_required"
	IHSExempt          = "exempt"
	IHSRequiredStudent = "required_student"
	IHSStandard        = "standard"
)

// Платные дополнительные услуги
const (
	ExtraPriority            = "priority"
	ExtraSuperPriority       = "super_priority"
	ExtraCitizenshipCeremony = "citizenship_ceremony"
)

// 1. Таблица визовых маршрутов (routes.json) - ТОЛЬКО справочная информация
type VisaRoute struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"` // work, study, family, visit, settlement, citizenship
	Indexable      bool   `json:"indexable"`
	ApplyFrom      string `json:"apply_from"`      // inside_uk, outside_uk, both
	DurationPolicy string `json:"duration_policy"` // fixed, custom, permanent
	// Варианты срока в месяцах (для fixed) либо максимум (для custom)
	DurationOptions   []int `json:"duration_options,omitempty"`
	DurationMaxMonths int   `json:"duration_max_months,omitempty"`
	IHSPolicy         string   `json:"ihs_policy"` // not_required, exempt, required_student, standard
	FeeKeys           []string `json:"fees"`       // ключи в таблице fees.json
	Extras            []string `json:"extras"`     // priority, super_priority, citizenship_ceremony
	// Явный признак вместо эвристики по подстроке идентификатора
	LifeInUKTest bool   `json:"life_in_uk_test"`
	LastReviewed string `json:"last_reviewed"` // только для отображения
}

// HasExtra проверяет, заявлена ли у маршрута дополнительная услуга
func (r VisaRoute) HasExtra(extra string) bool {
	for _, e := range r.Extras {
		if e == extra {
			return true
		}
	}
	return false
}

// AllowsApplyFrom проверяет, разрешено ли место подачи политикой маршрута
func (r VisaRoute) AllowsApplyFrom(location string) bool {
	if r.ApplyFrom == ApplyFromBoth {
		return location == ApplyFromInsideUK || location == ApplyFromOutsideUK
	}
	return location == r.ApplyFrom
}
