package importer

import (
	"errors"
	"strings"
)

// ErrTableNotFound источник таблицы отсутствует
var ErrTableNotFound = errors.New("table not found")

// Table сырая таблица с заголовком; значения остаются строками
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
	index   map[string]int
}

// NewTable создает таблицу с нормализованными именами колонок
func NewTable(name string, columns []string) *Table {
	t := &Table{
		Name:    name,
		Columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for i, col := range columns {
		normalized := normalizeColumn(col)
		t.Columns[i] = normalized
		if _, exists := t.index[normalized]; !exists {
			t.index[normalized] = i
		}
	}
	return t
}

// Append добавляет строку; короткие строки дополняются пустыми значениями
func (t *Table) Append(row []string) {
	if len(row) < len(t.Columns) {
		padded := make([]string, len(t.Columns))
		copy(padded, row)
		row = padded
	}
	t.Rows = append(t.Rows, row)
}

// Has сообщает, есть ли колонка в таблице
func (t *Table) Has(column string) bool {
	_, ok := t.index[normalizeColumn(column)]
	return ok
}

// Value возвращает значение колонки в строке или пустую строку
func (t *Table) Value(row int, column string) string {
	col, ok := t.index[normalizeColumn(column)]
	if !ok || row < 0 || row >= len(t.Rows) || col >= len(t.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][col])
}

// Len количество строк данных
func (t *Table) Len() int {
	return len(t.Rows)
}

// RequireColumns проверяет наличие обязательных колонок
func (t *Table) RequireColumns(columns ...string) error {
	var missing []string
	for _, col := range columns {
		if !t.Has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Table: t.Name, Columns: missing}
	}
	return nil
}

// MissingColumnsError в таблице нет обязательных колонок
type MissingColumnsError struct {
	Table   string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "table " + e.Table + ": missing columns " + strings.Join(e.Columns, ", ")
}

func normalizeColumn(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.ToLower(strings.TrimSpace(name))
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
