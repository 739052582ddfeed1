package export

import (
	"fmt"
	"io"

	"agrodashboard/internal/domain/dashboard"

	"github.com/xuri/excelize/v2"
)

// Листы книги выгрузки
const (
	SheetCustomer        = "Cliente"
	SheetHistory         = "Historico"
	SheetRecommendations = "Recomendacoes"
	SheetMetrics         = "Metricas"
	SheetABC             = "Curva ABC"
)

// XLSXExporter выгружает сводку клиента в книгу Excel
type XLSXExporter struct{}

// NewXLSXExporter создает экспортер XLSX
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// ContentType MIME тип книги Excel
func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExtension расширение файла выгрузки
func (e *XLSXExporter) FileExtension() string {
	return ".xlsx"
}

// WriteDashboard пишет книгу с листами клиента, истории, рекомендаций, метрик и кривой ABC
func (e *XLSXExporter) WriteDashboard(w io.Writer, d *dashboard.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	// Первый лист создается по умолчанию как Sheet1
	if err := f.SetSheetName(f.GetSheetName(0), SheetCustomer); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetHistory, SheetRecommendations, SheetMetrics, SheetABC} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2E7D32"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	sw := &sheetWriter{f: f, headerStyle: headerStyle}

	c := d.Customer
	area := interface{}("")
	if c.AreaTotal != nil {
		area = *c.AreaTotal
	}
	sw.table(SheetCustomer, []string{"Campo", "Valor"}, [][]interface{}{
		{"user_id", c.UserID},
		{"nome", c.Nome},
		{"responsavel", c.Responsavel},
		{"documento", c.Documento},
		{"cidade", c.Cidade},
		{"uf", c.UF},
		{"regiao", c.Regiao},
		{"culturas", c.Culturas},
		{"telefone", c.Telefone},
		{"email", c.Email},
		{"cluster", c.Cluster},
		{"area_total", area},
		{"tipo_solo", c.TipoSolo},
		{"praga_comum", c.PragaComum},
		{"safra_principal", c.SafraPrincipal},
	})

	historyRows := make([][]interface{}, 0, len(d.History))
	for _, tx := range d.History {
		var valor, ts interface{} = "", ""
		if tx.Valor != nil {
			valor = *tx.Valor
		}
		if tx.Timestamp != nil {
			ts = tx.Timestamp.Format("2006-01-02 15:04:05")
		}
		historyRows = append(historyRows, []interface{}{tx.Data, ts, tx.ItemID, tx.ItemDesc, tx.Categoria, valor})
	}
	sw.table(SheetHistory, []string{"data", "timestamp", "item_id", "item_desc", "categoria", "valor"}, historyRows)

	recRows := make([][]interface{}, 0, len(d.Recommendations))
	for _, r := range d.Recommendations {
		recRows = append(recRows, []interface{}{
			r.RecID, r.ItemDesc, r.ItemClass, r.Lift, r.Confianca, r.Razao, r.Categoria,
			string(r.LiftSource), string(r.ConfiancaSource),
		})
	}
	sw.table(SheetRecommendations, []string{
		"rec_id", "item_desc", "item_class", "lift", "confianca", "razao", "categoria",
		"lift_source", "confianca_source",
	}, recRows)

	m := d.Metrics
	sw.table(SheetMetrics, []string{"Metrica", "Valor"}, [][]interface{}{
		{"ticket_medio", m.TicketMedio},
		{"frequencia", m.Frequencia},
		{"valor_total", m.ValorTotal},
		{"categoria_top", m.CategoriaTop},
		{"ultimo_mes", m.UltimoMes},
		{"meses", d.Months},
	})

	abcRows := make([][]interface{}, 0, len(d.ABC))
	for _, entry := range d.ABC {
		abcRows = append(abcRows, []interface{}{entry.Categoria, entry.Valor, entry.Percentual, entry.Curva})
	}
	sw.table(SheetABC, []string{"categoria", "valor", "percentual", "curva"}, abcRows)

	if sw.err != nil {
		return sw.err
	}

	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

// sheetWriter запоминает первую ошибку записи
type sheetWriter struct {
	f           *excelize.File
	headerStyle int
	err         error
}

func (sw *sheetWriter) table(sheet string, headers []string, rows [][]interface{}) {
	if sw.err != nil {
		return
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := sw.f.SetCellValue(sheet, cell, header); err != nil {
			sw.err = fmt.Errorf("failed to write header %s!%s: %w", sheet, cell, err)
			return
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := sw.f.SetCellStyle(sheet, "A1", last, sw.headerStyle); err != nil {
		sw.err = fmt.Errorf("failed to style header of %s: %w", sheet, err)
		return
	}

	for rowIdx, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx+2)
		values := row
		if err := sw.f.SetSheetRow(sheet, cell, &values); err != nil {
			sw.err = fmt.Errorf("failed to write row %d of %s: %w", rowIdx+2, sheet, err)
			return
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := sw.f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		sw.err = fmt.Errorf("failed to set column width of %s: %w", sheet, err)
	}
}
