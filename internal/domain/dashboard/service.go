package dashboard

import "context"

// TablesProvider отдает таблицы сессии (обычно кэш поверх загрузчика)
type TablesProvider interface {
	Tables(ctx context.Context) (*Tables, error)
}

// Service интерфейс бизнес-логики дашборда клиента
type Service interface {
	// Клиенты
	ListCustomers(ctx context.Context, filter CustomerFilter) ([]Customer, int, error)
	GetCustomer(ctx context.Context, userID string) (*Customer, error)

	// История и метрики
	GetHistory(ctx context.Context, userID string, months int) ([]Transaction, error)
	GetMetrics(ctx context.Context, userID string, months int) (*Metrics, error)
	GetABC(ctx context.Context, userID string, months int) ([]ABCEntry, error)
	GetMonthly(ctx context.Context, userID string, months int) ([]MonthlyTotal, error)

	// Рекомендации
	GetRecommendations(ctx context.Context, userID string, topN int) ([]Recommendation, error)

	// Полная сводка по одному снимку таблиц и одному моменту времени
	BuildDashboard(ctx context.Context, userID string, months, topN int) (*Dashboard, error)

	// Состояние загрузки
	GetLoadReport(ctx context.Context) (*LoadReport, error)
}
