package export

import (
	"bytes"
	"testing"
	"time"

	"agrodashboard/internal/domain/dashboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDashboard() *dashboard.Dashboard {
	valor := 1500.0
	area := 850.0
	ts := time.Date(2025, 5, 10, 9, 15, 0, 0, time.UTC)
	return &dashboard.Dashboard{
		Customer: dashboard.Customer{UserID: "user_1", Nome: "Fazenda Boa Vista", AreaTotal: &area},
		Months:   6,
		TopN:     3,
		History: []dashboard.Transaction{
			{UserID: "user_1", ItemID: "item_1", Valor: &valor, Timestamp: &ts, Categoria: "Sementes", Data: "2025-05"},
		},
		Recommendations: []dashboard.Recommendation{
			{RecID: "item_2", ItemDesc: "Fungicida", Lift: 3.5, Confianca: 0.8, Razao: "Correlação Apriori real (3.5x) com base em item_1",
				Categoria: "Defensivos", LiftSource: dashboard.SourceReal, ConfiancaSource: dashboard.SourceReal},
		},
		Metrics: dashboard.Metrics{TicketMedio: 1500, Frequencia: 1, ValorTotal: 1500, CategoriaTop: "Sementes"},
		ABC:     []dashboard.ABCEntry{{Categoria: "Sementes", Valor: 1500, Percentual: 100, Curva: "C"}},
	}
}

func TestXLSXExporterWriteDashboard(t *testing.T) {
	var buf bytes.Buffer

	err := NewXLSXExporter().WriteDashboard(&buf, sampleDashboard())
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetCustomer, SheetHistory, SheetRecommendations, SheetMetrics, SheetABC}, f.GetSheetList())

	name, err := f.GetCellValue(SheetCustomer, "B2")
	require.NoError(t, err)
	assert.Equal(t, "user_1", name)

	rows, err := f.GetRows(SheetRecommendations)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "lift", rows[0][3])
	assert.Equal(t, "item_2", rows[1][0])
	assert.Equal(t, "real", rows[1][7])

	top, err := f.GetCellValue(SheetMetrics, "B5")
	require.NoError(t, err)
	assert.Equal(t, "Sementes", top)

	history, err := f.GetRows(SheetHistory)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2025-05", history[1][0])
}

func TestXLSXExporterEmptyDashboard(t *testing.T) {
	var buf bytes.Buffer

	err := NewXLSXExporter().WriteDashboard(&buf, &dashboard.Dashboard{Metrics: dashboard.Metrics{CategoriaTop: "N/A"}})
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
