package repository

import (
	"backend/internal/app/ds"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Имена файлов статических таблиц
const (
	routesFile = "routes.json"
	feesFile   = "fees.json"
	rulesFile  = "rules.json"
	siteFile   = "site.json"
	contentDir = "content"
)

// Repository читает статические JSON таблицы с диска.
// Кэш принадлежит репозиторию и живет все время работы процесса:
// повторное чтение одного и того же файла не трогает диск.
type Repository struct {
	dataDir string

	mu    sync.Mutex
	cache map[string][]byte // ключ - разрешенный путь файла
}

func New(dataDir string) *Repository {
	return &Repository{
		dataDir: dataDir,
		cache:   make(map[string][]byte),
	}
}

// Загруженный набор данных. После загрузки считается неизменяемым.
type Dataset struct {
	Routes []ds.VisaRoute
	Fees   map[string]ds.FeeEntry
	Rules  ds.Rules
	Site   ds.SiteConfig

	routeByID map[string]ds.VisaRoute
}

// resolvePath разрешает имя файла относительно каталога данных
func (r *Repository) resolvePath(name string) string {
	return filepath.Join(r.dataDir, name)
}

// loadFile читает файл через кэш (без повторного чтения с диска)
func (r *Repository) loadFile(name string) ([]byte, error) {
	path := r.resolvePath(name)

	r.mu.Lock()
	data, ok := r.cache[path]
	r.mu.Unlock()
	if ok {
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать %s: %w", path, err)
	}

	r.mu.Lock()
	r.cache[path] = data
	r.mu.Unlock()

	return data, nil
}

// loadJSON читает файл и парсит JSON в переданный объект
func (r *Repository) loadJSON(name string, v interface{}) error {
	data, err := r.loadFile(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("некорректный JSON в %s: %w", name, err)
	}
	return nil
}

// LoadDataset загружает все таблицы совместно и проверяет инварианты.
// Любая ошибка загрузки или парсинга отдается вызывающему без повторов,
// калькулятор в этом случае остается неинициализированным.
func (r *Repository) LoadDataset(ctx context.Context) (*Dataset, error) {
	dataset := &Dataset{}

	// Параллельная загрузка независимых таблиц, ждем все вместе
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return r.loadJSON(routesFile, &dataset.Routes) })
	g.Go(func() error { return r.loadJSON(feesFile, &dataset.Fees) })
	g.Go(func() error { return r.loadJSON(rulesFile, &dataset.Rules) })
	g.Go(func() error { return r.loadJSON(siteFile, &dataset.Site) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Жесткие проверки целостности выполняются прямо при загрузке
	report := ValidateTables(dataset.Routes, dataset.Fees, dataset.Rules)
	if report.HasErrors() {
		return nil, fmt.Errorf("таблицы данных не прошли проверку: %s", strings.Join(report.Errors, "; "))
	}

	dataset.routeByID = make(map[string]ds.VisaRoute, len(dataset.Routes))
	for _, route := range dataset.Routes {
		dataset.routeByID[route.ID] = route
	}

	return dataset, nil
}

// GetRouteContent загружает содержимое страницы маршрута (через кэш)
func (r *Repository) GetRouteContent(routeID string) (*ds.RouteContent, error) {
	var content ds.RouteContent
	name := filepath.Join(contentDir, routeID+".json")
	if err := r.loadJSON(name, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// HasRouteContent проверяет наличие файла содержимого (для валидатора)
func (r *Repository) HasRouteContent(routeID string) bool {
	path := r.resolvePath(filepath.Join(contentDir, routeID+".json"))
	_, err := os.Stat(path)
	return err == nil
}

// GetRouteByID возвращает маршрут по идентификатору
func (d *Dataset) GetRouteByID(id string) (ds.VisaRoute, bool) {
	route, ok := d.routeByID[id]
	return route, ok
}

// SearchRoutesByName ищет маршруты по подстроке названия (без регистра)
func (d *Dataset) SearchRoutesByName(query string) []ds.VisaRoute {
	if query == "" {
		return d.Routes
	}
	q := strings.ToLower(query)
	routes := make([]ds.VisaRoute, 0, len(d.Routes))
	for _, route := range d.Routes {
		if strings.Contains(strings.ToLower(route.Name), q) {
			routes = append(routes, route)
		}
	}
	return routes
}
