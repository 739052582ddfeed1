package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"agrodashboard/docs"
	"agrodashboard/internal/api/handlers/dashboard"
	"agrodashboard/server/middleware"
)

// RegisterDashboardRoutes регистрирует маршруты дашборда в группе /api
func RegisterDashboardRoutes(api *gin.RouterGroup, h *dashboard.Handler) {
	api.GET("/health", h.Health)
	api.POST("/cache/invalidate", h.InvalidateCache)
	api.GET("/errors/metrics", ErrorMetrics)

	customers := api.Group("/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.GET("/:id/dashboard", h.GetDashboard)
		customers.GET("/:id/history", h.GetHistory)
		customers.GET("/:id/recommendations", h.GetRecommendations)
		customers.GET("/:id/metrics", h.GetMetrics)
		customers.GET("/:id/abc", h.GetABC)
		customers.GET("/:id/monthly", h.GetMonthly)
		customers.GET("/:id/export", h.ExportDashboard)
	}
}

// RegisterSwaggerRoutes регистрирует Swagger UI
func RegisterSwaggerRoutes(router *gin.Engine, host string) {
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.BasePath = "/api"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}

// ErrorMetrics возвращает счетчики ошибок API
// @Summary Метрики ошибок
// @Tags system
// @Produce json
// @Success 200 {object} errors.ErrorMetricsSnapshot
// @Router /errors/metrics [get]
func ErrorMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.GetErrorMetrics().Snapshot())
}
