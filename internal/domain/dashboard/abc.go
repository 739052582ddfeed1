package dashboard

// Классы кривой ABC и их пороги накопленной доли, в процентах
const (
	ClassA = "A"
	ClassB = "B"
	ClassC = "C"

	thresholdA = 80.0
	thresholdB = 95.0

	// Погрешность накопления float при сравнении с порогом
	percentEpsilon = 1e-9
)

// ClassifyABC строит кривую ABC по категориям: сумма valor по категории,
// сортировка по убыванию, накопленный процент от общей суммы.
// A пока накопленное ≤ 80%, B пока ≤ 95%, иначе C. Граница входит в младший класс.
// При нулевой общей сумме все категории получают C.
func ClassifyABC(history []Transaction) []ABCEntry {
	totals := categoryTotals(history)

	var grand float64
	for _, t := range totals {
		grand += t.value
	}

	entries := make([]ABCEntry, 0, len(totals))
	var cumulative float64
	for _, t := range totals {
		cumulative += t.value

		entry := ABCEntry{
			Categoria: t.category,
			Valor:     t.value,
			Curva:     ClassC,
		}
		if grand > 0 {
			entry.Percentual = cumulative / grand * 100
			entry.Curva = abcClass(entry.Percentual)
		}
		entries = append(entries, entry)
	}
	return entries
}

func abcClass(cumulativePercent float64) string {
	switch {
	case cumulativePercent <= thresholdA+percentEpsilon:
		return ClassA
	case cumulativePercent <= thresholdB+percentEpsilon:
		return ClassB
	default:
		return ClassC
	}
}
