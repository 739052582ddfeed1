package dashboard

import "time"

const (
	// DefaultHistoryMonths окно истории по умолчанию
	DefaultHistoryMonths = 6

	// daysPerMonth приближение месяца для окна истории (не календарное)
	daysPerMonth = 30

	// MonthLabelLayout формат метки месяца (колонка data)
	MonthLabelLayout = "2006-01"
)

// WindowStart возвращает начало окна истории: now - months*30 дней
func WindowStart(now time.Time, months int) time.Time {
	return now.Add(-time.Duration(months*daysPerMonth) * 24 * time.Hour)
}

// FilterHistory возвращает покупки клиента в окне [now - months*30д, now]
// с меткой месяца Data. Строки без распознанной даты не попадают в окно.
// Пустой результат не является ошибкой.
func FilterHistory(history []Transaction, userID string, months int, now time.Time) []Transaction {
	start := WindowStart(now, months)

	filtered := make([]Transaction, 0)
	for _, tx := range history {
		if tx.UserID != userID || tx.Timestamp == nil {
			continue
		}
		ts := *tx.Timestamp
		if ts.Before(start) || ts.After(now) {
			continue
		}
		tx.Data = ts.Format(MonthLabelLayout)
		filtered = append(filtered, tx)
	}
	return filtered
}
