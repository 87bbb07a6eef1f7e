package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"backend/internal/app/ds"
	"backend/internal/app/repository"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Офлайн-проверка статических таблиц данных.
// Запускается вручную перед публикацией данных, в расчете не участвует.
func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	var routes []ds.VisaRoute
	var fees map[string]ds.FeeEntry
	var rules ds.Rules

	// Нечитаемый или некорректный файл - сразу провал
	ok := true
	ok = parseFile(filepath.Join(dataDir, "routes.json"), &routes) && ok
	ok = parseFile(filepath.Join(dataDir, "fees.json"), &fees) && ok
	ok = parseFile(filepath.Join(dataDir, "rules.json"), &rules) && ok
	if !ok {
		os.Exit(1)
	}

	report := repository.ValidateTables(routes, fees, rules)
	repository.CheckContentFiles(repository.New(dataDir), routes, report)

	for _, e := range report.Errors {
		color.Red("ОШИБКА: %s", e)
	}
	for _, w := range report.Warnings {
		color.Yellow("ПРЕДУПРЕЖДЕНИЕ: %s", w)
	}

	color.White("Проверено маршрутов: %d, сборов: %d", len(routes), len(fees))
	color.White("Ошибок: %d, предупреждений: %d", len(report.Errors), len(report.Warnings))

	// Предупреждения не считаются провалом
	if report.HasErrors() {
		color.Red("Проверка НЕ пройдена")
		os.Exit(1)
	}
	color.Green("Проверка пройдена")
}

// parseFile читает и парсит JSON файл, печатая ошибку в красный
func parseFile(path string, v interface{}) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		color.Red("ОШИБКА: не удалось прочитать %s: %v", path, err)
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		color.Red("ОШИБКА: некорректный JSON в %s: %v", path, err)
		return false
	}
	return true
}
