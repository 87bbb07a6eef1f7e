package dto

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Ответ при нарушении правил формы: все сообщения разом, расчет не выполняется
type ValidationErrorResponse struct {
	Status   string   `json:"status"`
	Messages []string `json:"messages"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Маршруты (Visa Routes) ============

type RouteResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	ApplyFrom         string   `json:"apply_from"`
	DurationPolicy    string   `json:"duration_policy"`
	DurationOptions   []int    `json:"duration_options,omitempty"`
	DurationMaxMonths int      `json:"duration_max_months,omitempty"`
	IHSPolicy         string   `json:"ihs_policy"`
	Extras            []string `json:"extras"`
	LifeInUKTest      bool     `json:"life_in_uk_test"`
	LastReviewed      string   `json:"last_reviewed"`
}

type RouteListResponse struct {
	Routes []RouteResponse `json:"routes"`
	Total  int             `json:"total"`
}

// ============ Правила (Rules) ============

type RulesResponse struct {
	IHSStandard float64 `json:"ihs_standard"` // ставка за год
	IHSStudent  float64 `json:"ihs_student"`  // ставка за год
}

// ============ Расчет (Calculation) ============

type CalculateRequest struct {
	RouteID        string `json:"route_id" binding:"required"`
	ApplyFrom      string `json:"apply_from"`
	DurationMonths int    `json:"duration_months"`
	Applicants     int    `json:"applicants"`
	Dependants     int    `json:"dependants"`
	Priority       bool   `json:"priority"`
	SuperPriority  bool   `json:"super_priority"`
}

type CostItemResponse struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type BreakdownResponse struct {
	Items        []CostItemResponse `json:"items"`
	Total        float64            `json:"total"`
	LastReviewed string             `json:"last_reviewed"`
}

// ============ Содержимое страниц (Route Content) ============

type ContentSectionResponse struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type ContentResponse struct {
	Title    string                   `json:"title"`
	Summary  string                   `json:"summary"`
	Sections []ContentSectionResponse `json:"sections"`
}
