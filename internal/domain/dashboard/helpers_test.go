package dashboard

import "time"

// fixedRandom возвращает заранее заданную последовательность значений
type fixedRandom struct {
	floats  []float64
	numbers []int
	calls   int
}

func (f *fixedRandom) Float64Range(min, max float64) float64 {
	f.calls++
	if len(f.floats) == 0 {
		return min
	}
	v := f.floats[0]
	f.floats = f.floats[1:]
	return v
}

func (f *fixedRandom) Number(min, max int) int {
	f.calls++
	if len(f.numbers) == 0 {
		return min
	}
	v := f.numbers[0]
	f.numbers = f.numbers[1:]
	return v
}

func (f *fixedRandom) RandomString(options []string) string {
	f.calls++
	return options[0]
}

func floatPtr(v float64) *float64 {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}

var testNow = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

func daysAgo(days int) *time.Time {
	return timePtr(testNow.Add(-time.Duration(days) * 24 * time.Hour))
}

func tx(userID, category string, value float64, ts *time.Time) Transaction {
	return Transaction{
		UserID:    userID,
		ItemID:    "item_1",
		Valor:     floatPtr(value),
		Timestamp: ts,
		Categoria: category,
	}
}
