package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"agrodashboard/importer"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// DBConfig конфигурация подключения к БД
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// StagingDB промежуточная SQLite база с сырыми таблицами дашборда
type StagingDB struct {
	conn *sql.DB
}

// TableInfo метаданные сохраненной таблицы
type TableInfo struct {
	Name       string    `json:"name"`
	ImportID   string    `json:"import_id"`
	Columns    []string  `json:"columns"`
	RowCount   int       `json:"row_count"`
	ImportedAt time.Time `json:"imported_at"`
}

var tableNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// NewStagingDB создает подключение к staging базе с настройками по умолчанию
func NewStagingDB(dbPath string) (*StagingDB, error) {
	config := DBConfig{}

	// Для in-memory SQLite нужно ровно одно соединение, иначе каждое получит пустую БД
	if isInMemory(dbPath) {
		config.MaxOpenConns = 1
		config.MaxIdleConns = 1
	}

	return NewStagingDBWithConfig(dbPath, config)
}

func isInMemory(dbPath string) bool {
	if dbPath == ":memory:" {
		return true
	}
	return strings.HasPrefix(dbPath, "file:") && strings.Contains(dbPath, "mode=memory")
}

// NewStagingDBWithConfig создает подключение к staging базе с конфигурацией пула
func NewStagingDBWithConfig(dbPath string, config DBConfig) (*StagingDB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open staging database: %w", err)
	}

	// Настройка connection pooling
	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	} else {
		conn.SetMaxOpenConns(10)
	}

	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	} else {
		conn.SetMaxIdleConns(3)
	}

	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	} else {
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping staging database: %w", err)
	}

	// WAL позволяет читать таблицы во время импорта
	if !isInMemory(dbPath) {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			log.Printf("[StagingDB] Warning: Failed to enable WAL mode: %v", err)
		}
	}

	if err := initStagingSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize staging schema: %w", err)
	}

	return &StagingDB{conn: conn}, nil
}

func initStagingSchema(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS staging_tables (
			name TEXT PRIMARY KEY,
			import_id TEXT NOT NULL,
			columns TEXT NOT NULL,
			row_count INTEGER NOT NULL DEFAULT 0,
			imported_at TIMESTAMP NOT NULL
		)
	`)
	return err
}

// Close закрывает подключение к staging базе
func (db *StagingDB) Close() error {
	return db.conn.Close()
}

// Ping проверяет подключение к базе данных
func (db *StagingDB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// SaveTable заменяет сохраненную таблицу целиком в одной транзакции
func (db *StagingDB) SaveTable(ctx context.Context, table *importer.Table) (*TableInfo, error) {
	if !tableNameRe.MatchString(table.Name) {
		return nil, fmt.Errorf("invalid staging table name: %q", table.Name)
	}
	if len(table.Columns) == 0 {
		return nil, fmt.Errorf("table %s has no columns", table.Name)
	}

	info := &TableInfo{
		Name:       table.Name,
		ImportID:   uuid.New().String(),
		Columns:    table.Columns,
		RowCount:   table.Len(),
		ImportedAt: time.Now().UTC(),
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	physical := quoteIdent(physicalName(table.Name))
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+physical); err != nil {
		return nil, fmt.Errorf("failed to drop table %s: %w", table.Name, err)
	}

	// Физические колонки c0..cN, исходные имена хранятся в staging_tables
	columnDefs := make([]string, len(table.Columns))
	placeholders := make([]string, len(table.Columns))
	for i := range table.Columns {
		columnDefs[i] = fmt.Sprintf("c%d TEXT", i)
		placeholders[i] = "?"
	}
	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", physical, strings.Join(columnDefs, ", "))
	if _, err := tx.ExecContext(ctx, createSQL); err != nil {
		return nil, fmt.Errorf("failed to create table %s: %w", table.Name, err)
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s VALUES (%s)", physical, strings.Join(placeholders, ", "))
	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]interface{}, len(table.Columns))
	for rowIdx, row := range table.Rows {
		for i := range args {
			args[i] = ""
			if i < len(row) {
				args[i] = row[i]
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return nil, fmt.Errorf("failed to insert row %d into %s: %w", rowIdx+1, table.Name, err)
		}
	}

	columnsJSON, err := json.Marshal(info.Columns)
	if err != nil {
		return nil, fmt.Errorf("failed to encode columns: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO staging_tables (name, import_id, columns, row_count, imported_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			import_id = excluded.import_id,
			columns = excluded.columns,
			row_count = excluded.row_count,
			imported_at = excluded.imported_at
	`, info.Name, info.ImportID, string(columnsJSON), info.RowCount, info.ImportedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record table metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit table %s: %w", table.Name, err)
	}
	return info, nil
}

// LoadTable читает сохраненную таблицу в порядке вставки строк
func (db *StagingDB) LoadTable(ctx context.Context, name string) (*importer.Table, error) {
	info, err := db.GetTableInfo(ctx, name)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY rowid", quoteIdent(physicalName(name)))
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", name, err)
	}
	defer rows.Close()

	table := importer.NewTable(name, info.Columns)
	for rows.Next() {
		values := make([]sql.NullString, len(info.Columns))
		dest := make([]interface{}, len(values))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", name, err)
		}

		row := make([]string, len(values))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			}
		}
		table.Append(row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate table %s: %w", name, err)
	}
	return table, nil
}

// GetTableInfo возвращает метаданные таблицы или importer.ErrTableNotFound
func (db *StagingDB) GetTableInfo(ctx context.Context, name string) (*TableInfo, error) {
	var info TableInfo
	var columns string
	err := db.conn.QueryRowContext(ctx, `
		SELECT name, import_id, columns, row_count, imported_at
		FROM staging_tables WHERE name = ?
	`, name).Scan(&info.Name, &info.ImportID, &columns, &info.RowCount, &info.ImportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", importer.ErrTableNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get table info %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(columns), &info.Columns); err != nil {
		return nil, fmt.Errorf("failed to decode columns of %s: %w", name, err)
	}
	return &info, nil
}

// ListTables возвращает метаданные всех сохраненных таблиц
func (db *StagingDB) ListTables(ctx context.Context) ([]TableInfo, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT name, import_id, columns, row_count, imported_at
		FROM staging_tables ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list staging tables: %w", err)
	}
	defer rows.Close()

	var tables []TableInfo
	for rows.Next() {
		var info TableInfo
		var columns string
		if err := rows.Scan(&info.Name, &info.ImportID, &columns, &info.RowCount, &info.ImportedAt); err != nil {
			return nil, fmt.Errorf("failed to scan staging table: %w", err)
		}
		if err := json.Unmarshal([]byte(columns), &info.Columns); err != nil {
			return nil, fmt.Errorf("failed to decode columns of %s: %w", info.Name, err)
		}
		tables = append(tables, info)
	}
	return tables, rows.Err()
}

func physicalName(name string) string {
	return "src_" + name
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
