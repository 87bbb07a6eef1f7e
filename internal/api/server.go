package api

import (
	"context"
	"log"

	"backend/internal/app/calc"
	"backend/internal/app/config"
	"backend/internal/app/handler"
	"backend/internal/app/repository"
	"backend/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer() {
	log.Println("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ошибка чтения конфигурации: %v", err)
	}

	repo := repository.New(cfg.Data.Dir)

	// Все таблицы загружаются один раз до старта сервера.
	// Без полного набора данных калькулятор не инициализируется.
	dataset, err := repo.LoadDataset(context.Background())
	if err != nil {
		logrus.Fatalf("ошибка загрузки таблиц данных: %v", err)
	}
	logrus.Infof("загружено маршрутов: %d, сборов: %d", len(dataset.Routes), len(dataset.Fees))

	calculator := calc.NewCalculator(dataset.Routes, dataset.Fees, dataset.Rules)

	h := handler.NewHandler(repo, dataset, calculator)
	apiHandler := handler.NewAPIHandler(repo, dataset, calculator)

	r := gin.Default()

	app := pkg.NewApp(cfg, r, h, apiHandler)
	app.RunApp()

	log.Println("Server down")
}
