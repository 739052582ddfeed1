package dashboard

// RandomSource источник случайных значений для заполнителей и запасных оценок
// *gofakeit.Faker удовлетворяет интерфейсу; в тестах подставляется фиксированная последовательность
type RandomSource interface {
	Float64Range(min, max float64) float64
	Number(min, max int) int
	RandomString(options []string) string
}
