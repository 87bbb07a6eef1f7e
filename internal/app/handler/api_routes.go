package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine) {
	// REST API маршруты
	api := router.Group("/api")

	// ============ Маршруты (Routes) - публичные ============
	routes := api.Group("/routes")
	{
		routes.GET("", h.GetRoutes)                 // GET список с поиском
		routes.GET("/:id", h.GetRoute)              // GET одна запись
		routes.GET("/:id/content", h.GetRouteContent) // GET содержимое страницы
	}

	// ============ Правила и расчет ============
	api.GET("/rules", h.GetRules)
	api.POST("/calculate", h.Calculate)

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
