package dashboard

// ScoreSource происхождение значения lift/confiança
type ScoreSource string

const (
	// SourceReal значение взято из правила ассоциации
	SourceReal ScoreSource = "real"
	// SourceFallback значение сгенерировано, правила нет
	SourceFallback ScoreSource = "fallback"
)

// Score значение с пометкой происхождения
type Score struct {
	Value  float64
	Source ScoreSource
}

// Real создает Score из правила ассоциации
func Real(value float64) Score {
	return Score{Value: value, Source: SourceReal}
}

// Fallback создает сгенерированный Score
func Fallback(value float64) Score {
	return Score{Value: value, Source: SourceFallback}
}

// IsReal сообщает, пришло ли значение из правила
func (s Score) IsReal() bool {
	return s.Source == SourceReal
}

// resolveScore возвращает реальное значение, если оно есть, иначе генерирует запасное
// fallback вызывается только при отсутствии реального значения
func resolveScore(value *float64, fallback func() float64) Score {
	if value != nil {
		return Real(*value)
	}
	return Fallback(fallback())
}
