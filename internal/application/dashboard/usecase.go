package dashboard

import (
	"context"
	"fmt"
	"io"
	"time"

	dashboarddomain "agrodashboard/internal/domain/dashboard"
)

// Статусы готовности данных
const (
	StatusOK          = "ok"
	StatusDegraded    = "degraded"
	StatusUnavailable = "unavailable"
)

// Exporter записывает сводку клиента в выходной формат
type Exporter interface {
	WriteDashboard(w io.Writer, d *dashboarddomain.Dashboard) error
	ContentType() string
	FileExtension() string
}

// Invalidator сбрасывает закэшированные таблицы
type Invalidator interface {
	Invalidate()
}

// Options параметры окна истории и числа рекомендаций; нули заменяются значениями по умолчанию
type Options struct {
	Months int
	TopN   int
}

// HealthStatus состояние загруженных данных
type HealthStatus struct {
	Status string                      `json:"status"`
	Report *dashboarddomain.LoadReport `json:"report,omitempty"`
	Error  string                      `json:"error,omitempty"`
}

// UseCase представляет use case дашборда клиента
// Координирует domain service, экспорт и кэш таблиц
type UseCase struct {
	service     dashboarddomain.Service
	exporter    Exporter
	invalidator Invalidator
	defaults    Options
	now         func() time.Time
}

// NewUseCase создает новый use case дашборда
func NewUseCase(
	service dashboarddomain.Service,
	exporter Exporter,
	invalidator Invalidator,
	defaults Options,
) *UseCase {
	if defaults.Months <= 0 {
		defaults.Months = dashboarddomain.DefaultHistoryMonths
	}
	if defaults.TopN <= 0 {
		defaults.TopN = dashboarddomain.DefaultTopN
	}
	return &UseCase{
		service:     service,
		exporter:    exporter,
		invalidator: invalidator,
		defaults:    defaults,
		now:         time.Now,
	}
}

// Defaults возвращает параметры по умолчанию
func (uc *UseCase) Defaults() Options {
	return uc.defaults
}

func (uc *UseCase) resolve(opts Options) Options {
	if opts.Months == 0 {
		opts.Months = uc.defaults.Months
	}
	if opts.TopN == 0 {
		opts.TopN = uc.defaults.TopN
	}
	return opts
}

// ListCustomers возвращает список клиентов
func (uc *UseCase) ListCustomers(ctx context.Context, filter dashboarddomain.CustomerFilter) ([]dashboarddomain.Customer, int, error) {
	return uc.service.ListCustomers(ctx, filter)
}

// GetCustomer возвращает клиента по user_id
func (uc *UseCase) GetCustomer(ctx context.Context, userID string) (*dashboarddomain.Customer, error) {
	return uc.service.GetCustomer(ctx, userID)
}

// GetHistory возвращает оконную историю
func (uc *UseCase) GetHistory(ctx context.Context, userID string, opts Options) ([]dashboarddomain.Transaction, error) {
	return uc.service.GetHistory(ctx, userID, uc.resolve(opts).Months)
}

// GetMetrics возвращает коммерческие метрики
func (uc *UseCase) GetMetrics(ctx context.Context, userID string, opts Options) (*dashboarddomain.Metrics, error) {
	return uc.service.GetMetrics(ctx, userID, uc.resolve(opts).Months)
}

// GetABC возвращает кривую ABC
func (uc *UseCase) GetABC(ctx context.Context, userID string, opts Options) ([]dashboarddomain.ABCEntry, error) {
	return uc.service.GetABC(ctx, userID, uc.resolve(opts).Months)
}

// GetMonthly возвращает помесячные суммы
func (uc *UseCase) GetMonthly(ctx context.Context, userID string, opts Options) ([]dashboarddomain.MonthlyTotal, error) {
	return uc.service.GetMonthly(ctx, userID, uc.resolve(opts).Months)
}

// GetRecommendations возвращает рекомендации
func (uc *UseCase) GetRecommendations(ctx context.Context, userID string, opts Options) ([]dashboarddomain.Recommendation, error) {
	return uc.service.GetRecommendations(ctx, userID, uc.resolve(opts).TopN)
}

// GetDashboard собирает полную сводку клиента
func (uc *UseCase) GetDashboard(ctx context.Context, userID string, opts Options) (*dashboarddomain.Dashboard, error) {
	opts = uc.resolve(opts)
	return uc.service.BuildDashboard(ctx, userID, opts.Months, opts.TopN)
}

// ExportDashboard пишет сводку клиента в w через настроенный экспортер
func (uc *UseCase) ExportDashboard(ctx context.Context, w io.Writer, userID string, opts Options) error {
	d, err := uc.GetDashboard(ctx, userID, opts)
	if err != nil {
		return err
	}
	return uc.WriteExport(w, d)
}

// WriteExport пишет уже собранную сводку в w
func (uc *UseCase) WriteExport(w io.Writer, d *dashboarddomain.Dashboard) error {
	if err := uc.exporter.WriteDashboard(w, d); err != nil {
		return fmt.Errorf("failed to export dashboard for %s: %w", d.Customer.UserID, err)
	}
	return nil
}

// ExportFileName имя файла выгрузки
func (uc *UseCase) ExportFileName(userID string) string {
	return fmt.Sprintf("dashboard_%s_%s%s", userID, uc.now().Format("20060102"), uc.exporter.FileExtension())
}

// ExportContentType MIME тип выгрузки
func (uc *UseCase) ExportContentType() string {
	return uc.exporter.ContentType()
}

// InvalidateCache сбрасывает таблицы и загружает их заново
func (uc *UseCase) InvalidateCache(ctx context.Context) (*dashboarddomain.LoadReport, error) {
	uc.invalidator.Invalidate()
	return uc.service.GetLoadReport(ctx)
}

// Health возвращает состояние данных; ошибка загрузки отражается в статусе
func (uc *UseCase) Health(ctx context.Context) *HealthStatus {
	report, err := uc.service.GetLoadReport(ctx)
	if err != nil {
		return &HealthStatus{Status: StatusUnavailable, Error: err.Error()}
	}

	status := StatusOK
	if report.Degraded() {
		status = StatusDegraded
	}
	return &HealthStatus{Status: status, Report: report}
}
