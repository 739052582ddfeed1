package dashboard

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	dashboardapp "agrodashboard/internal/application/dashboard"
	dashboarddomain "agrodashboard/internal/domain/dashboard"
	apperrors "agrodashboard/server/errors"
	"agrodashboard/server/middleware"
)

// Handler HTTP обработчик дашборда клиента
type Handler struct {
	useCase *dashboardapp.UseCase
}

// NewHandler создает новый HTTP обработчик дашборда
func NewHandler(useCase *dashboardapp.UseCase) *Handler {
	return &Handler{useCase: useCase}
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []dashboarddomain.Customer `json:"clientes"`
	Total     int                        `json:"total"`
	Limit     int                        `json:"limit"`
	Offset    int                        `json:"offset"`
}

// HistoryResponse ответ с оконной историей
type HistoryResponse struct {
	UserID  string                        `json:"user_id"`
	Months  int                           `json:"meses"`
	History []dashboarddomain.Transaction `json:"historico"`
}

// RecommendationsResponse ответ с рекомендациями
type RecommendationsResponse struct {
	UserID          string                           `json:"user_id"`
	Recommendations []dashboarddomain.Recommendation `json:"recomendacoes"`
}

// ListCustomers возвращает список клиентов
// @Summary Список клиентов
// @Description Клиенты с фильтрами по cluster, uf и поиском по nome/user_id/cidade
// @Tags customers
// @Produce json
// @Param cluster query string false "Cluster (DIAMOND, GOLD, SILVER)"
// @Param uf query string false "UF"
// @Param q query string false "Поиск"
// @Param limit query int false "Лимит" default(100)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} CustomerListResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /customers [get]
func (h *Handler) ListCustomers(c *gin.Context) {
	filter := dashboarddomain.CustomerFilter{
		Cluster: c.Query("cluster"),
		UF:      c.Query("uf"),
		Query:   c.Query("q"),
		Limit:   100,
	}

	var err error
	if filter.Limit, err = queryInt(c, "limit", filter.Limit); err != nil || filter.Limit < 1 {
		h.sendError(c, apperrors.NewValidationError("Parâmetro limit inválido", err))
		return
	}
	if filter.Offset, err = queryInt(c, "offset", 0); err != nil || filter.Offset < 0 {
		h.sendError(c, apperrors.NewValidationError("Parâmetro offset inválido", err))
		return
	}

	customers, total, err := h.useCase.ListCustomers(c.Request.Context(), filter)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, CustomerListResponse{
		Customers: customers,
		Total:     total,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	})
}

// GetCustomer возвращает клиента
// @Summary Клиент по user_id
// @Tags customers
// @Produce json
// @Param id path string true "user_id"
// @Success 200 {object} dashboarddomain.Customer
// @Failure 404 {object} middleware.ErrorResponse
// @Router /customers/{id} [get]
func (h *Handler) GetCustomer(c *gin.Context) {
	customer, err := h.useCase.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// GetDashboard возвращает полную сводку клиента
// @Summary Сводка клиента
// @Description Клиент, история за окно, помесячные суммы, рекомендации, метрики и кривая ABC
// @Tags dashboard
// @Produce json
// @Param id path string true "user_id"
// @Param months query int false "Окно истории в месяцах" default(6)
// @Param top_n query int false "Число рекомендаций" default(3)
// @Success 200 {object} dashboarddomain.Dashboard
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /customers/{id}/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	opts, ok := h.parseOptions(c)
	if !ok {
		return
	}

	d, err := h.useCase.GetDashboard(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// GetHistory возвращает историю покупок за окно
// @Summary История покупок
// @Tags dashboard
// @Produce json
// @Param id path string true "user_id"
// @Param months query int false "Окно истории в месяцах" default(6)
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /customers/{id}/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	opts, ok := h.parseOptions(c)
	if !ok {
		return
	}

	history, err := h.useCase.GetHistory(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		h.sendError(c, err)
		return
	}

	months := opts.Months
	if months == 0 {
		months = h.useCase.Defaults().Months
	}
	c.JSON(http.StatusOK, HistoryResponse{UserID: c.Param("id"), Months: months, History: history})
}

// GetRecommendations возвращает рекомендации клиента
// @Summary Рекомендации
// @Description Кандидаты с lift и confiança из правил ассоциации или запасными значениями
// @Tags dashboard
// @Produce json
// @Param id path string true "user_id"
// @Param top_n query int false "Число рекомендаций" default(3)
// @Success 200 {object} RecommendationsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /customers/{id}/recommendations [get]
func (h *Handler) GetRecommendations(c *gin.Context) {
	opts, ok := h.parseOptions(c)
	if !ok {
		return
	}

	recs, err := h.useCase.GetRecommendations(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, RecommendationsResponse{UserID: c.Param("id"), Recommendations: recs})
}

// GetMetrics возвращает коммерческие метрики
// @Summary Коммерческие метрики
// @Tags dashboard
// @Produce json
// @Param id path string true "user_id"
// @Param months query int false "Окно истории в месяцах" default(6)
// @Success 200 {object} dashboarddomain.Metrics
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /customers/{id}/metrics [get]
func (h *Handler) GetMetrics(c *gin.Context) {
	opts, ok := h.parseOptions(c)
	if !ok {
		return
	}

	metrics, err := h.useCase.GetMetrics(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// GetABC возвращает кривую ABC по категориям
// @Summary Кривая ABC
// @Tags dashboard
// @Produce json
// @Param id path string true "user_id"
// @Param months query int false "Окно истории в месяцах" default(6)
// @Success 200 {array} dashboarddomain.ABCEntry
// @Failure 404 {object} middleware.ErrorResponse
// @Router /customers/{id}/abc [get]
func (h *Handler) GetABC(c *gin.Context) {
	opts, ok := h.parseOptions(c)
	if !ok {
		return
	}

	entries, err := h.useCase.GetABC(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetMonthly возвращает помесячные суммы покупок
// @Summary Помесячные суммы
// @Tags dashboard
// @Produce json
// @Param id path string true "user_id"
// @Param months query int false "Окно истории в месяцах" default(6)
// @Success 200 {array} dashboarddomain.MonthlyTotal
// @Failure 404 {object} middleware.ErrorResponse
// @Router /customers/{id}/monthly [get]
func (h *Handler) GetMonthly(c *gin.Context) {
	opts, ok := h.parseOptions(c)
	if !ok {
		return
	}

	monthly, err := h.useCase.GetMonthly(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, monthly)
}

// ExportDashboard выгружает сводку клиента в XLSX
// @Summary Выгрузка сводки в Excel
// @Tags dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "user_id"
// @Param months query int false "Окно истории в месяцах" default(6)
// @Param top_n query int false "Число рекомендаций" default(3)
// @Success 200 {file} file
// @Failure 404 {object} middleware.ErrorResponse
// @Router /customers/{id}/export [get]
func (h *Handler) ExportDashboard(c *gin.Context) {
	opts, ok := h.parseOptions(c)
	if !ok {
		return
	}

	userID := c.Param("id")
	d, err := h.useCase.GetDashboard(c.Request.Context(), userID, opts)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.Header("Content-Type", h.useCase.ExportContentType())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, h.useCase.ExportFileName(userID)))
	c.Status(http.StatusOK)
	if err := h.useCase.WriteExport(c.Writer, d); err != nil {
		// Заголовки уже отправлены, остается только залогировать
		_ = c.Error(err)
		middleware.GetErrorMetrics().RecordError(apperrors.NewInternalError("export failed", err), c.FullPath(), middleware.GetRequestIDFromGin(c))
	}
}

// InvalidateCache сбрасывает кэш таблиц и загружает их заново
// @Summary Перезагрузка таблиц
// @Tags system
// @Produce json
// @Success 200 {object} dashboarddomain.LoadReport
// @Failure 503 {object} middleware.ErrorResponse
// @Router /cache/invalidate [post]
func (h *Handler) InvalidateCache(c *gin.Context) {
	report, err := h.useCase.InvalidateCache(c.Request.Context())
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Health возвращает состояние данных
// @Summary Состояние данных
// @Description ok, degraded (нет правил ассоциации) или unavailable
// @Tags system
// @Produce json
// @Success 200 {object} dashboardapp.HealthStatus
// @Failure 503 {object} dashboardapp.HealthStatus
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	health := h.useCase.Health(c.Request.Context())

	status := http.StatusOK
	if health.Status == dashboardapp.StatusUnavailable {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, health)
}

// parseOptions читает months и top_n; при ошибке ответ уже отправлен
func (h *Handler) parseOptions(c *gin.Context) (dashboardapp.Options, bool) {
	var opts dashboardapp.Options
	var err error

	if opts.Months, err = queryInt(c, "months", 0); err != nil {
		h.sendError(c, apperrors.NewValidationError("Parâmetro months inválido", err))
		return opts, false
	}
	if opts.TopN, err = queryInt(c, "top_n", 0); err != nil {
		h.sendError(c, apperrors.NewValidationError("Parâmetro top_n inválido", err))
		return opts, false
	}
	return opts, true
}

func queryInt(c *gin.Context, key string, defaultValue int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

// sendError отправляет ответ с ошибкой, статус выбирает apperrors.FromDashboardError
func (h *Handler) sendError(c *gin.Context, err error) {
	middleware.HandleGinError(c, apperrors.FromDashboardError(err).WithContext(c.FullPath()))
}
