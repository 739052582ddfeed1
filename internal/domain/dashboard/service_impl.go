package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// service реализация domain service для дашборда
type service struct {
	tables TablesProvider
	rnd    RandomSource
	now    func() time.Time
}

// NewService создает новый domain service для дашборда
// now может быть nil, тогда используется time.Now
func NewService(tables TablesProvider, rnd RandomSource, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		tables: tables,
		rnd:    rnd,
		now:    now,
	}
}

func (s *service) load(ctx context.Context) (*Tables, error) {
	tables, err := s.tables.Tables(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTablesUnavailable, err)
	}
	return tables, nil
}

// customerTables загружает таблицы и проверяет, что клиент существует
func (s *service) customerTables(ctx context.Context, userID string) (*Tables, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidCustomerID
	}

	tables, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := FindCustomer(tables.Customers, userID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, userID)
	}
	return tables, nil
}

// ListCustomers возвращает страницу клиентов
func (s *service) ListCustomers(ctx context.Context, filter CustomerFilter) ([]Customer, int, error) {
	tables, err := s.load(ctx)
	if err != nil {
		return nil, 0, err
	}

	customers, total := FilterCustomers(tables.Customers, filter)
	return customers, total, nil
}

// GetCustomer возвращает клиента по user_id
func (s *service) GetCustomer(ctx context.Context, userID string) (*Customer, error) {
	tables, err := s.customerTables(ctx, userID)
	if err != nil {
		return nil, err
	}

	customer, _ := FindCustomer(tables.Customers, userID)
	return &customer, nil
}

// GetHistory возвращает оконную историю клиента
func (s *service) GetHistory(ctx context.Context, userID string, months int) ([]Transaction, error) {
	if err := validateMonths(months); err != nil {
		return nil, err
	}

	tables, err := s.customerTables(ctx, userID)
	if err != nil {
		return nil, err
	}

	return FilterHistory(tables.History, userID, months, s.now()), nil
}

// GetMetrics считает метрики по оконной истории
func (s *service) GetMetrics(ctx context.Context, userID string, months int) (*Metrics, error) {
	history, err := s.GetHistory(ctx, userID, months)
	if err != nil {
		return nil, err
	}

	metrics := CalculateMetrics(history, s.now())
	return &metrics, nil
}

// GetABC строит кривую ABC по оконной истории
func (s *service) GetABC(ctx context.Context, userID string, months int) ([]ABCEntry, error) {
	history, err := s.GetHistory(ctx, userID, months)
	if err != nil {
		return nil, err
	}

	return ClassifyABC(history), nil
}

// GetMonthly возвращает помесячные суммы по оконной истории
func (s *service) GetMonthly(ctx context.Context, userID string, months int) ([]MonthlyTotal, error) {
	history, err := s.GetHistory(ctx, userID, months)
	if err != nil {
		return nil, err
	}

	return MonthlyTotals(history), nil
}

// GetRecommendations возвращает рекомендации, упорядоченные по lift и без повторов описания
func (s *service) GetRecommendations(ctx context.Context, userID string, topN int) ([]Recommendation, error) {
	if topN < 1 || topN > 50 {
		return nil, ErrInvalidTopN
	}

	tables, err := s.customerTables(ctx, userID)
	if err != nil {
		return nil, err
	}

	resolved := ResolveRecommendations(tables.Candidates, tables.Rules, tables.Products, userID, topN, s.rnd)
	return RankRecommendations(resolved), nil
}

// BuildDashboard собирает сводку клиента. Таблицы загружаются один раз,
// окно истории строится один раз, все части используют один момент now.
func (s *service) BuildDashboard(ctx context.Context, userID string, months, topN int) (*Dashboard, error) {
	if err := validateMonths(months); err != nil {
		return nil, err
	}
	if topN < 1 || topN > 50 {
		return nil, ErrInvalidTopN
	}

	tables, err := s.customerTables(ctx, userID)
	if err != nil {
		return nil, err
	}
	customer, _ := FindCustomer(tables.Customers, userID)

	now := s.now()
	history := FilterHistory(tables.History, userID, months, now)
	resolved := ResolveRecommendations(tables.Candidates, tables.Rules, tables.Products, userID, topN, s.rnd)

	return &Dashboard{
		Customer:        customer,
		Months:          months,
		TopN:            topN,
		History:         history,
		Monthly:         MonthlyTotals(history),
		Recommendations: RankRecommendations(resolved),
		Metrics:         CalculateMetrics(history, now),
		ABC:             ClassifyABC(history),
		RulesAvailable:  tables.Report.RulesAvailable,
		GeneratedAt:     now,
	}, nil
}

// GetLoadReport возвращает сводку загрузки таблиц
func (s *service) GetLoadReport(ctx context.Context) (*LoadReport, error) {
	tables, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	report := tables.Report
	return &report, nil
}

func validateMonths(months int) error {
	if months < 1 || months > 60 {
		return ErrInvalidWindow
	}
	return nil
}
