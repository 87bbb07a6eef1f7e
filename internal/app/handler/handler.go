package handler

import (
	"backend/internal/app/calc"
	"backend/internal/app/ds"
	"backend/internal/app/repository"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Repository *repository.Repository
	Dataset    *repository.Dataset
	Calculator *calc.Calculator
}

func NewHandler(r *repository.Repository, dataset *repository.Dataset, calculator *calc.Calculator) *Handler {
	return &Handler{
		Repository: r,
		Dataset:    dataset,
		Calculator: calculator,
	}
}

// Регистрация статических файлов
func (h *Handler) RegisterStatic(router *gin.Engine) {
	router.LoadHTMLGlob("templates/*")
	router.Static("/static", "./resources")
}

// Регистрация маршрутов
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	// GET маршруты
	router.GET("/visa-routes", h.GetVisaRoutes)
	router.GET("/route/:id", h.GetVisaRouteDetail)
	router.GET("/visa-calculator/:id", h.GetVisaCalculator)

	// POST маршруты
	router.POST("/visa-calculator/:id", h.PostVisaCalculator)
}

// Централизованная обработка ошибок
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"status":      "error",
		"description": err.Error(),
	})
}

// 1. Каталог маршрутов с поиском
func (h *Handler) GetVisaRoutes(ctx *gin.Context) {
	searchQuery := ctx.Query("query")
	routes := h.Dataset.SearchRoutesByName(searchQuery)

	ctx.HTML(http.StatusOK, "visa_routes.html", gin.H{
		"site":   h.Dataset.Site,
		"routes": routes,
		"query":  searchQuery, // передаем введенный запрос обратно на страницу
	})
}

// 2. Детали одного маршрута
func (h *Handler) GetVisaRouteDetail(ctx *gin.Context) {
	id := ctx.Param("id")
	route, ok := h.Dataset.GetRouteByID(id)
	if !ok {
		ctx.HTML(http.StatusNotFound, "route.html", gin.H{"error": "Маршрут не найден"})
		return
	}

	// Содержимое страницы опционально: без файла показываем только политику
	var content *ds.RouteContent
	if h.Repository.HasRouteContent(route.ID) {
		loaded, err := h.Repository.GetRouteContent(route.ID)
		if err != nil {
			logrus.Warnf("не удалось загрузить содержимое маршрута %s: %v", route.ID, err)
		} else {
			content = loaded
		}
	}

	ctx.HTML(http.StatusOK, "route.html", gin.H{
		"site":    h.Dataset.Site,
		"route":   route,
		"content": content,
	})
}

// 3. Калькулятор - форма строится по политике маршрута
func (h *Handler) GetVisaCalculator(ctx *gin.Context) {
	id := ctx.Param("id")
	route, ok := h.Dataset.GetRouteByID(id)
	if !ok {
		ctx.HTML(http.StatusNotFound, "visa_calculator.html", gin.H{"error": "Маршрут не найден"})
		return
	}

	ctx.HTML(http.StatusOK, "visa_calculator.html", gin.H{
		"site":        h.Dataset.Site,
		"route":       route,
		"durationMax": h.durationMax(route),
		"applicants":  1,
		"dependants":  0,
	})
}

// Расчет по данным формы
func (h *Handler) PostVisaCalculator(ctx *gin.Context) {
	id := ctx.Param("id")
	route, ok := h.Dataset.GetRouteByID(id)
	if !ok {
		ctx.HTML(http.StatusNotFound, "visa_calculator.html", gin.H{"error": "Маршрут не найден"})
		return
	}

	// Собираем ВСЕ нарушения разом, частичный расчет не выполняется
	params, violations := h.parseCalcForm(ctx, route)
	if len(violations) > 0 {
		ctx.HTML(http.StatusBadRequest, "visa_calculator.html", gin.H{
			"site":        h.Dataset.Site,
			"route":       route,
			"durationMax": h.durationMax(route),
			"applicants":  params.Applicants,
			"dependants":  params.Dependants,
			"violations":  violations,
		})
		return
	}

	breakdown, err := h.Calculator.Calculate(params)
	if err != nil {
		if errors.Is(err, calc.ErrRouteNotFound) {
			ctx.HTML(http.StatusNotFound, "visa_calculator.html", gin.H{"error": "Маршрут не найден"})
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.HTML(http.StatusOK, "visa_calculator.html", gin.H{
		"site":        h.Dataset.Site,
		"route":       route,
		"durationMax": h.durationMax(route),
		"applicants":  params.Applicants,
		"dependants":  params.Dependants,
		"result":      breakdown,
	})
}

// durationMax возвращает потолок срока для custom маршрутов
func (h *Handler) durationMax(route ds.VisaRoute) int {
	if route.DurationMaxMonths > 0 {
		return route.DurationMaxMonths
	}
	return h.Dataset.Site.DefaultDurationMaxMonths
}
