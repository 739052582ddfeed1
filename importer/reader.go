package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadOptions параметры чтения файловых таблиц
type ReadOptions struct {
	// Encoding кодировка CSV: utf-8, latin1/iso-8859-1, windows-1252/cp1252
	Encoding string
	// Delimiter разделитель CSV, по умолчанию запятая
	Delimiter rune
}

// DefaultReadOptions возвращает параметры по умолчанию
func DefaultReadOptions() ReadOptions {
	return ReadOptions{
		Encoding:  "utf-8",
		Delimiter: ',',
	}
}

// ReadFile читает таблицу из CSV или XLSX, формат определяется по расширению.
// Отсутствующий файл возвращает ошибку, совместимую с ErrTableNotFound.
func ReadFile(name, path string, opts ReadOptions) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(name, path)
	default:
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s (%s)", ErrTableNotFound, name, path)
			}
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		return ReadCSV(name, f, opts)
	}
}

// ReadCSV читает CSV с заголовком в первой строке
func ReadCSV(name string, r io.Reader, opts ReadOptions) (*Table, error) {
	dec, err := decoderFor(opts.Encoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(transform.NewReader(r, dec))
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("table %s: empty file", name)
	}
	if err != nil {
		return nil, fmt.Errorf("table %s: failed to read CSV headers: %w", name, err)
	}

	table := NewTable(name, headers)
	line := 1
	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table %s: failed to read CSV row %d: %w", name, line, err)
		}
		if isEmptyRow(row) {
			continue
		}
		table.Append(row)
	}
	return table, nil
}

// ReadXLSX читает первый лист книги Excel
func ReadXLSX(name, path string) (*Table, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s (%s)", ErrTableNotFound, name, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("table %s: no sheets found in Excel file", name)
	}

	// Сырые значения: даты приходят серийными числами, а не текстом формата ячейки
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("table %s: failed to get rows: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("table %s: empty sheet %s", name, sheetName)
	}

	dates := newXLSXDates(f, sheetName)
	table := NewTable(name, rows[0])
	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		if err := dates.convert(row, i+2); err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		table.Append(row)
	}
	return table, nil
}

// xlsxDates переводит числовые ячейки с форматом даты в текст ParseTimestamp
type xlsxDates struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	styles   map[int]bool
}

func newXLSXDates(f *excelize.File, sheet string) *xlsxDates {
	d := &xlsxDates{f: f, sheet: sheet, styles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

// convert заменяет серийные номера дат в строке rowNum (нумерация Excel)
func (d *xlsxDates) convert(row []string, rowNum int) error {
	for col, value := range row {
		serial, ok := ParseFloat(value)
		if !ok {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		isDate, err := d.isDateCell(cell)
		if err != nil {
			return err
		}
		if !isDate {
			continue
		}
		t, err := excelize.ExcelDateToTime(serial, d.date1904)
		if err != nil {
			continue
		}
		row[col] = t.Round(time.Second).Format("2006-01-02 15:04:05")
	}
	return nil
}

func (d *xlsxDates) isDateCell(cell string) (bool, error) {
	styleID, err := d.f.GetCellStyle(d.sheet, cell)
	if err != nil {
		return false, fmt.Errorf("cell %s style: %w", cell, err)
	}
	if styleID == 0 {
		return false, nil
	}
	if isDate, ok := d.styles[styleID]; ok {
		return isDate, nil
	}

	style, err := d.f.GetStyle(styleID)
	if err != nil {
		return false, fmt.Errorf("style %d: %w", styleID, err)
	}
	isDate := isDateNumFmt(style.NumFmt)
	if style.CustomNumFmt != nil {
		isDate = isDateFormatCode(*style.CustomNumFmt)
	}
	d.styles[styleID] = isDate
	return isDate, nil
}

// isDateNumFmt встроенные форматы даты и времени Excel
func isDateNumFmt(id int) bool {
	return (id >= 14 && id <= 22) || (id >= 27 && id <= 36) || (id >= 45 && id <= 47) || (id >= 50 && id <= 58)
}

// isDateFormatCode пользовательский формат с токенами дня, года или часа
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuotes, inBrackets := false, false
	for _, r := range strings.ToLower(code) {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == '[' && !inQuotes:
			inBrackets = true
		case r == ']' && !inQuotes:
			inBrackets = false
		case !inQuotes && !inBrackets:
			b.WriteRune(r)
		}
	}
	return strings.ContainsAny(b.String(), "ydh")
}

// decoderFor возвращает декодер в UTF-8; BOM в UTF-8 отбрасывается
func decoderFor(name string) (transform.Transformer, error) {
	var enc encoding.Encoding
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case "latin1", "iso-8859-1":
		enc = charmap.ISO8859_1
	case "windows-1252", "cp1252":
		enc = charmap.Windows1252
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", name)
	}
	return enc.NewDecoder(), nil
}
