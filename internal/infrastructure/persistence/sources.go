package persistence

import (
	"context"
	"fmt"

	"agrodashboard/database"
	"agrodashboard/importer"
)

// Имена семантических таблиц дашборда
const (
	TableCustomers       = "clientes"
	TableHistory         = "historico"
	TableRecommendations = "recomendacoes"
	TableProducts        = "produtos"
	TableRules           = "regras"
)

// TableNames все таблицы в порядке загрузки
var TableNames = []string{
	TableCustomers,
	TableHistory,
	TableRecommendations,
	TableProducts,
	TableRules,
}

// RawSource отдает сырую таблицу по семантическому имени.
// Отсутствие таблицы обозначается ошибкой importer.ErrTableNotFound.
type RawSource interface {
	ReadTable(ctx context.Context, name string) (*importer.Table, error)
	Describe() string
}

// FileSource читает таблицы из CSV/XLSX файлов
type FileSource struct {
	paths map[string]string
	opts  importer.ReadOptions
}

// NewFileSource создает файловый источник; paths сопоставляет имя таблицы и путь
func NewFileSource(paths map[string]string, encoding string) *FileSource {
	opts := importer.DefaultReadOptions()
	if encoding != "" {
		opts.Encoding = encoding
	}
	return &FileSource{paths: paths, opts: opts}
}

// ReadTable читает таблицу из файла
func (s *FileSource) ReadTable(ctx context.Context, name string) (*importer.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, ok := s.paths[name]
	if !ok || path == "" {
		return nil, fmt.Errorf("%w: %s (no path configured)", importer.ErrTableNotFound, name)
	}
	return importer.ReadFile(name, path, s.opts)
}

// Describe описание источника для отчета загрузки
func (s *FileSource) Describe() string {
	return "files"
}

// StagingSource читает таблицы из SQLite staging базы
type StagingSource struct {
	db *database.StagingDB
}

// NewStagingSource создает источник поверх staging базы
func NewStagingSource(db *database.StagingDB) *StagingSource {
	return &StagingSource{db: db}
}

// ReadTable читает таблицу из staging базы
func (s *StagingSource) ReadTable(ctx context.Context, name string) (*importer.Table, error) {
	return s.db.LoadTable(ctx, name)
}

// Describe описание источника для отчета загрузки
func (s *StagingSource) Describe() string {
	return "sqlite"
}
