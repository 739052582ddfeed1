package container

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/brianvoe/gofakeit/v6"

	"agrodashboard/database"
	"agrodashboard/internal/api/handlers/dashboard"
	dashboardapp "agrodashboard/internal/application/dashboard"
	"agrodashboard/internal/config"
	dashboarddomain "agrodashboard/internal/domain/dashboard"
	"agrodashboard/internal/infrastructure/cache"
	"agrodashboard/internal/infrastructure/export"
	"agrodashboard/internal/infrastructure/persistence"
)

// Container контейнер зависимостей приложения
// Управляет жизненным циклом всех компонентов
type Container struct {
	mu sync.RWMutex

	// Конфигурация
	Config *config.Config

	// Источники данных
	StagingDB *database.StagingDB
	Source    persistence.RawSource
	Loader    *persistence.TablesLoader
	Tables    *cache.TablesCache

	// Случайные значения для обогащения и запасных оценок
	Random *gofakeit.Faker

	// Бизнес-логика
	DashboardService dashboarddomain.Service
	DashboardUseCase *dashboardapp.UseCase

	// HTTP
	DashboardHandler *dashboard.Handler

	initialized bool
}

// NewContainer создает новый контейнер зависимостей
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &Container{Config: cfg}, nil
}

// Initialize инициализирует все зависимости контейнера в порядке их использования
func (c *Container) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return fmt.Errorf("container already initialized")
	}

	// Шаг 1: Источник таблиц
	if err := c.initSource(); err != nil {
		return fmt.Errorf("failed to initialize table source: %w", err)
	}

	// Шаг 2: Загрузчик и кэш
	// RANDOM_SEED=0 дает случайное зерно
	c.Random = gofakeit.New(c.Config.RandomSeed)
	c.Loader = persistence.NewTablesLoader(c.Source, c.Random)
	c.Tables = cache.NewTablesCache(c.Loader)

	// Шаг 3: Сервисы и обработчики
	c.DashboardService = dashboarddomain.NewService(c.Tables, c.Random, nil)
	c.DashboardUseCase = dashboardapp.NewUseCase(
		c.DashboardService,
		export.NewXLSXExporter(),
		c.Tables,
		dashboardapp.Options{Months: c.Config.HistoryMonths, TopN: c.Config.TopN},
	)
	c.DashboardHandler = dashboard.NewHandler(c.DashboardUseCase)

	c.initialized = true
	log.Println("Container initialized successfully")
	return nil
}

func (c *Container) initSource() error {
	switch c.Config.TableSource {
	case config.TableSourceSQLite:
		db, err := database.NewStagingDBWithConfig(c.Config.StagingDatabasePath, database.DBConfig{
			MaxOpenConns:    c.Config.MaxOpenConns,
			MaxIdleConns:    c.Config.MaxIdleConns,
			ConnMaxLifetime: c.Config.ConnMaxLifetime,
		})
		if err != nil {
			return err
		}
		c.StagingDB = db
		c.Source = persistence.NewStagingSource(db)
	default:
		c.Source = persistence.NewFileSource(c.Config.SourcePaths(), c.Config.SourceEncoding)
	}
	return nil
}

// Warmup загружает таблицы заранее; ошибка не мешает запуску сервера
func (c *Container) Warmup(ctx context.Context) error {
	c.mu.RLock()
	tables := c.Tables
	c.mu.RUnlock()

	if tables == nil {
		return fmt.Errorf("container is not initialized")
	}
	_, err := tables.Tables(ctx)
	return err
}

// Shutdown корректно завершает работу контейнера
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return nil
	}

	if c.StagingDB != nil {
		if err := c.StagingDB.Close(); err != nil {
			log.Printf("Error closing staging database: %v", err)
		}
	}

	c.initialized = false
	log.Println("Container shut down successfully")
	return nil
}

// IsInitialized проверяет, инициализирован ли контейнер
func (c *Container) IsInitialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}
