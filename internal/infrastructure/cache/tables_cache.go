package cache

import (
	"context"
	"sync"
	"time"

	"agrodashboard/internal/domain/dashboard"
)

// Loader загружает таблицы дашборда
type Loader interface {
	Load(ctx context.Context) (*dashboard.Tables, error)
}

// LoaderFunc адаптер функции к Loader
type LoaderFunc func(ctx context.Context) (*dashboard.Tables, error)

// Load вызывает f(ctx)
func (f LoaderFunc) Load(ctx context.Context) (*dashboard.Tables, error) {
	return f(ctx)
}

// TablesCache кэш таблиц на процесс: загрузка один раз, до явной инвалидации.
// Ошибки загрузки не кэшируются.
type TablesCache struct {
	mu       sync.Mutex
	loader   Loader
	tables   *dashboard.Tables
	loadedAt time.Time
	hits     int64
	misses   int64
	loads    int64
}

// CacheStats статистика кэша таблиц
type CacheStats struct {
	Loaded   bool      `json:"loaded"`
	LoadedAt time.Time `json:"loaded_at,omitempty"`
	Hits     int64     `json:"hits"`
	Misses   int64     `json:"misses"`
	Loads    int64     `json:"loads"`
}

// NewTablesCache создает кэш поверх загрузчика
func NewTablesCache(loader Loader) *TablesCache {
	return &TablesCache{loader: loader}
}

// Tables возвращает таблицы из кэша или загружает их.
// Параллельные вызовы при промахе ждут одну загрузку.
func (c *TablesCache) Tables(ctx context.Context) (*dashboard.Tables, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tables != nil {
		c.hits++
		return c.tables, nil
	}
	c.misses++

	tables, err := c.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	c.loads++
	c.tables = tables
	c.loadedAt = time.Now()
	return tables, nil
}

// Invalidate сбрасывает кэш; следующий вызов Tables перезагрузит данные
func (c *TablesCache) Invalidate() {
	c.mu.Lock()
	c.tables = nil
	c.loadedAt = time.Time{}
	c.mu.Unlock()
}

// Stats возвращает статистику кэша
func (c *TablesCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		Loaded:   c.tables != nil,
		LoadedAt: c.loadedAt,
		Hits:     c.hits,
		Misses:   c.misses,
		Loads:    c.loads,
	}
}
