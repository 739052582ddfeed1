package dashboard

import (
	"sort"
	"time"
)

// NotAvailable значение categoria_top, когда категорий нет
const NotAvailable = "N/A"

// lastDays окно для ultimo_mes
const lastDays = 30

// CalculateMetrics считает коммерческие метрики по (обычно оконной) истории клиента.
// frequencia считает все строки; суммы и среднее учитывают только распознанные valor.
func CalculateMetrics(history []Transaction, now time.Time) Metrics {
	metrics := Metrics{
		Frequencia:   len(history),
		CategoriaTop: NotAvailable,
	}

	recentStart := now.Add(-lastDays * 24 * time.Hour)
	valued := 0
	for _, tx := range history {
		if tx.Valor == nil {
			continue
		}
		valued++
		metrics.ValorTotal += *tx.Valor

		if tx.Timestamp != nil && !tx.Timestamp.Before(recentStart) && !tx.Timestamp.After(now) {
			metrics.UltimoMes += *tx.Valor
		}
	}

	if valued > 0 {
		metrics.TicketMedio = metrics.ValorTotal / float64(valued)
	}

	if totals := categoryTotals(history); len(totals) > 0 {
		metrics.CategoriaTop = totals[0].category
	}

	return metrics
}

type categoryTotal struct {
	category string
	value    float64
}

// categoryTotals суммирует valor по категориям и сортирует по убыванию суммы,
// при равенстве по имени категории. Строки без категории не группируются.
func categoryTotals(history []Transaction) []categoryTotal {
	sums := make(map[string]float64)
	for _, tx := range history {
		if tx.Categoria == "" {
			continue
		}
		if _, ok := sums[tx.Categoria]; !ok {
			sums[tx.Categoria] = 0
		}
		if tx.Valor != nil {
			sums[tx.Categoria] += *tx.Valor
		}
	}

	totals := make([]categoryTotal, 0, len(sums))
	for category, value := range sums {
		totals = append(totals, categoryTotal{category: category, value: value})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].value != totals[j].value {
			return totals[i].value > totals[j].value
		}
		return totals[i].category < totals[j].category
	})
	return totals
}

// MonthlyTotals группирует историю по метке месяца (data) в хронологическом порядке
func MonthlyTotals(history []Transaction) []MonthlyTotal {
	byMonth := make(map[string]*MonthlyTotal)
	for _, tx := range history {
		label := tx.Data
		if label == "" {
			if tx.Timestamp == nil {
				continue
			}
			label = tx.Timestamp.Format(MonthLabelLayout)
		}

		total, ok := byMonth[label]
		if !ok {
			total = &MonthlyTotal{Data: label}
			byMonth[label] = total
		}
		total.Compras++
		if tx.Valor != nil {
			total.Valor += *tx.Valor
		}
	}

	monthly := make([]MonthlyTotal, 0, len(byMonth))
	for _, total := range byMonth {
		monthly = append(monthly, *total)
	}
	sort.Slice(monthly, func(i, j int) bool {
		return monthly[i].Data < monthly[j].Data
	})
	return monthly
}
