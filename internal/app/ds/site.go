package ds

// 4. Конфигурация сайта (site.json)
type SiteConfig struct {
	SiteName string `json:"site_name"`
	// Потолок срока по умолчанию для custom маршрутов без своего максимума
	DefaultDurationMaxMonths int `json:"default_duration_max_months"`
}

// Содержимое страницы маршрута (content/<id>.json)
type RouteContent struct {
	Title    string           `json:"title"`
	Summary  string           `json:"summary"`
	Sections []ContentSection `json:"sections"`
}

type ContentSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}
