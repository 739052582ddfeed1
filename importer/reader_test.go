package importer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	data := "\ufeffuser_id, Nome ,cidade\nuser_1,Fazenda Boa Vista,Rio Verde\n\n,,\nuser_2,\"Sítio, Três Irmãos\"\n"

	table, err := ReadCSV("clientes", strings.NewReader(data), DefaultReadOptions())
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	if !table.Has("user_id") || !table.Has("NOME") {
		t.Errorf("columns not normalized: %v", table.Columns)
	}
	if got := table.Value(1, "nome"); got != "Sítio, Três Irmãos" {
		t.Errorf("Value(1, nome) = %q", got)
	}
	if got := table.Value(1, "cidade"); got != "" {
		t.Errorf("short row should be padded, got %q", got)
	}
	if got := table.Value(0, "missing"); got != "" {
		t.Errorf("unknown column should be empty, got %q", got)
	}
}

func TestReadCSVLatin1(t *testing.T) {
	// "Agropecuária" в ISO-8859-1
	data := []byte("user_id,nome\nuser_1,Agropecu\xe1ria\n")

	opts := DefaultReadOptions()
	opts.Encoding = "latin1"
	table, err := ReadCSV("clientes", strings.NewReader(string(data)), opts)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if got := table.Value(0, "nome"); got != "Agropecuária" {
		t.Errorf("Value(0, nome) = %q, want Agropecuária", got)
	}
}

func TestReadCSVErrors(t *testing.T) {
	if _, err := ReadCSV("x", strings.NewReader(""), DefaultReadOptions()); err == nil {
		t.Error("ReadCSV() should fail on empty input")
	}

	opts := DefaultReadOptions()
	opts.Encoding = "koi8-r"
	if _, err := ReadCSV("x", strings.NewReader("a\n1\n"), opts); err == nil {
		t.Error("ReadCSV() should fail on unsupported encoding")
	}
}

func TestReadFileMissing(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"regras_apriori.csv", "regras.xlsx"} {
		_, err := ReadFile("regras", filepath.Join(dir, name), DefaultReadOptions())
		if !errors.Is(err, ErrTableNotFound) {
			t.Errorf("ReadFile(%s) error = %v, want ErrTableNotFound", name, err)
		}
	}
}

func TestReadFileCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "produtos.csv")
	if err := os.WriteFile(path, []byte("item_id,item_desc,item_class\nitem_1,Semente Soja,Sementes\n"), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := ReadFile("produtos", path, DefaultReadOptions())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if err := table.RequireColumns("item_id", "item_desc", "item_class"); err != nil {
		t.Errorf("RequireColumns() error = %v", err)
	}
	if table.Name != "produtos" || table.Value(0, "item_class") != "Sementes" {
		t.Errorf("unexpected table: %+v", table)
	}
}

func TestReadFileXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recomendacoes.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"user_id", "rec_id"},
		{"user_1", "item_3"},
		{"user_1", "item_9"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	table, err := ReadFile("recomendacoes", path, DefaultReadOptions())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if table.Len() != 2 || table.Value(1, "rec_id") != "item_9" {
		t.Errorf("unexpected rows: %v", table.Rows)
	}
}

func TestReadFileXLSXDateCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cestas.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []interface{}{"user_id", "item_id", "price", "timestamp"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatal(err)
	}

	builtinDate, err := f.NewStyle(&excelize.Style{NumFmt: 22})
	if err != nil {
		t.Fatal(err)
	}
	customFmt := "dd/mm/yyyy"
	customDate, err := f.NewStyle(&excelize.Style{CustomNumFmt: &customFmt})
	if err != nil {
		t.Fatal(err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		t.Fatal(err)
	}

	cells := []struct {
		cell  string
		value interface{}
		style int
	}{
		{"A2", "user_1", 0},
		{"B2", "item_1", 0},
		{"C2", 1200.5, money},
		{"D2", time.Date(2025, 5, 10, 9, 15, 0, 0, time.UTC), builtinDate},
		{"A3", "user_1", 0},
		{"B3", "item_2", 0},
		{"C3", 300, 0},
		{"D3", time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC), customDate},
		{"A4", "user_1", 0},
		{"B4", "item_3", 0},
		{"C4", 45, 0},
		{"D4", "2025-05-12", 0},
	}
	for _, c := range cells {
		if err := f.SetCellValue(sheet, c.cell, c.value); err != nil {
			t.Fatal(err)
		}
		if c.style != 0 {
			if err := f.SetCellStyle(sheet, c.cell, c.cell, c.style); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	table, err := ReadFile("historico", path, DefaultReadOptions())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", table.Len())
	}

	tests := []struct {
		row  int
		col  string
		want string
	}{
		{0, "timestamp", "2025-05-10 09:15:00"},
		{0, "price", "1200.5"},
		{1, "timestamp", "2025-05-11 00:00:00"},
		{1, "price", "300"},
		{2, "timestamp", "2025-05-12"},
		{2, "price", "45"},
	}
	for _, tt := range tests {
		if got := table.Value(tt.row, tt.col); got != tt.want {
			t.Errorf("Value(%d, %q) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}

	ts, ok := ParseTimestamp(table.Value(0, "timestamp"))
	if !ok || !ts.Equal(time.Date(2025, 5, 10, 9, 15, 0, 0, time.UTC)) {
		t.Errorf("ParseTimestamp() = %v, %v", ts, ok)
	}
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"dd/mm/yyyy", true},
		{"yyyy-mm-dd hh:mm:ss", true},
		{"#,##0.00", false},
		{"0.00%", false},
		{`"R$" #,##0.00`, false},
		{"[Red]0.00", false},
		{"[$-416]d/m/yy", true},
	}

	for _, tt := range tests {
		if got := isDateFormatCode(tt.code); got != tt.want {
			t.Errorf("isDateFormatCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestRequireColumns(t *testing.T) {
	table := NewTable("regras", []string{"antecedents", "lift"})

	err := table.RequireColumns("antecedents", "consequents", "confidence")

	var missing *MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("RequireColumns() error = %v, want MissingColumnsError", err)
	}
	if len(missing.Columns) != 2 {
		t.Errorf("missing columns = %v", missing.Columns)
	}
}
