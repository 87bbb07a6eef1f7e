package handler

import (
	"backend/internal/app/calc"
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository *repository.Repository
	Dataset    *repository.Dataset
	Calculator *calc.Calculator
}

func NewAPIHandler(r *repository.Repository, dataset *repository.Dataset, calculator *calc.Calculator) *APIHandler {
	return &APIHandler{
		Repository: r,
		Dataset:    dataset,
		Calculator: calculator,
	}
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func routeToDTO(route ds.VisaRoute) dto.RouteResponse {
	return dto.RouteResponse{
		ID:                route.ID,
		Name:              route.Name,
		Category:          route.Category,
		ApplyFrom:         route.ApplyFrom,
		DurationPolicy:    route.DurationPolicy,
		DurationOptions:   route.DurationOptions,
		DurationMaxMonths: route.DurationMaxMonths,
		IHSPolicy:         route.IHSPolicy,
		Extras:            route.Extras,
		LifeInUKTest:      route.LifeInUKTest,
		LastReviewed:      route.LastReviewed,
	}
}

// ============ ДОМЕН МАРШРУТЫ ============

// GetRoutes получает список визовых маршрутов
// @Summary Получение списка маршрутов
// @Description Возвращает список всех визовых маршрутов с возможностью поиска по названию
// @Tags Routes
// @Produce json
// @Param query query string false "Поиск по названию маршрута"
// @Success 200 {object} dto.RouteListResponse
// @Router /api/routes [get]
func (h *APIHandler) GetRoutes(c *gin.Context) {
	routes := h.Dataset.SearchRoutesByName(c.Query("query"))

	// Преобразуем в DTO
	dtoRoutes := make([]dto.RouteResponse, len(routes))
	for i, route := range routes {
		dtoRoutes[i] = routeToDTO(route)
	}

	c.JSON(http.StatusOK, dto.RouteListResponse{
		Routes: dtoRoutes,
		Total:  len(dtoRoutes),
	})
}

// GetRoute получает один маршрут
// @Summary Получение маршрута по идентификатору
// @Description Возвращает маршрут вместе с его политиками и списком доп. услуг
// @Tags Routes
// @Produce json
// @Param id path string true "Идентификатор маршрута"
// @Success 200 {object} dto.RouteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/routes/{id} [get]
func (h *APIHandler) GetRoute(c *gin.Context) {
	route, ok := h.Dataset.GetRouteByID(c.Param("id"))
	if !ok {
		h.errorResponse(c, http.StatusNotFound, "Маршрут не найден")
		return
	}

	c.JSON(http.StatusOK, routeToDTO(route))
}

// GetRouteContent получает содержимое страницы маршрута
// @Summary Получение содержимого страницы маршрута
// @Description Возвращает текстовое содержимое страницы (заголовок, описание, секции)
// @Tags Routes
// @Produce json
// @Param id path string true "Идентификатор маршрута"
// @Success 200 {object} dto.ContentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/routes/{id}/content [get]
func (h *APIHandler) GetRouteContent(c *gin.Context) {
	route, ok := h.Dataset.GetRouteByID(c.Param("id"))
	if !ok {
		h.errorResponse(c, http.StatusNotFound, "Маршрут не найден")
		return
	}

	content, err := h.Repository.GetRouteContent(route.ID)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Содержимое маршрута не найдено")
		return
	}

	sections := make([]dto.ContentSectionResponse, len(content.Sections))
	for i, s := range content.Sections {
		sections[i] = dto.ContentSectionResponse{Heading: s.Heading, Body: s.Body}
	}

	c.JSON(http.StatusOK, dto.ContentResponse{
		Title:    content.Title,
		Summary:  content.Summary,
		Sections: sections,
	})
}

// ============ ДОМЕН ПРАВИЛА ============

// GetRules получает ставки IHS
// @Summary Получение таблицы правил
// @Description Возвращает годовые ставки медицинского сбора IHS
// @Tags Rules
// @Produce json
// @Success 200 {object} dto.RulesResponse
// @Router /api/rules [get]
func (h *APIHandler) GetRules(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RulesResponse{
		IHSStandard: h.Dataset.Rules.IHS.Standard,
		IHSStudent:  h.Dataset.Rules.IHS.Student,
	})
}

// ============ ДОМЕН РАСЧЕТ ============

// Calculate выполняет расчет стоимости
// @Summary Расчет стоимости заявления
// @Description Возвращает детализацию стоимости и итог по параметрам заявления
// @Tags Calculation
// @Accept json
// @Produce json
// @Param request body dto.CalculateRequest true "Параметры расчета"
// @Success 200 {object} dto.BreakdownResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/calculate [post]
func (h *APIHandler) Calculate(c *gin.Context) {
	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	route, ok := h.Dataset.GetRouteByID(req.RouteID)
	if !ok {
		h.errorResponse(c, http.StatusNotFound, "Маршрут не найден")
		return
	}

	params := ds.CalcParams{
		RouteID:        req.RouteID,
		ApplyFrom:      req.ApplyFrom,
		DurationMonths: req.DurationMonths,
		Applicants:     req.Applicants,
		Dependants:     req.Dependants,
		Priority:       req.Priority,
		SuperPriority:  req.SuperPriority,
	}

	// Когда место подачи задано политикой однозначно, клиент может его не слать
	if route.ApplyFrom != ds.ApplyFromBoth {
		params.ApplyFrom = route.ApplyFrom
	}
	if route.DurationPolicy == ds.DurationPermanent {
		params.DurationMonths = 0
	}

	if violations := validateParams(route, params); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Status:   "fail",
			Messages: violations,
		})
		return
	}

	breakdown, err := h.Calculator.Calculate(params)
	if err != nil {
		if errors.Is(err, calc.ErrRouteNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Маршрут не найден")
			return
		}
		logrus.Error("Error calculating breakdown: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка расчета стоимости")
		return
	}

	items := make([]dto.CostItemResponse, len(breakdown.Items))
	for i, item := range breakdown.Items {
		items[i] = dto.CostItemResponse{Label: item.Label, Amount: item.Amount}
	}

	c.JSON(http.StatusOK, dto.BreakdownResponse{
		Items:        items,
		Total:        breakdown.Total,
		LastReviewed: breakdown.LastReviewed,
	})
}
