package dashboard

import (
	"fmt"
	"sort"
)

const (
	// DefaultTopN количество рекомендаций по умолчанию
	DefaultTopN = 3

	// Диапазоны запасных оценок, когда правило не найдено
	FallbackLiftMin       = 2.0
	FallbackLiftMax       = 4.0
	FallbackConfidenceMin = 0.6
	FallbackConfidenceMax = 0.9

	// FallbackReason обоснование без реального правила
	FallbackReason = "Recomendado com base no seu histórico"

	// UncategorizedLabel категория, когда класс товара не найден
	UncategorizedLabel = "uncategorized"
)

// RealReason формирует обоснование по реальному правилу ассоциации
func RealReason(lift float64, antecedents string) string {
	return fmt.Sprintf("Correlação Apriori real (%.1fx) com base em %s", lift, antecedents)
}

// indexRules строит индекс правил по consequent
// При дубликатах побеждает первое правило в порядке таблицы
func indexRules(rules []AssociationRule) map[string]AssociationRule {
	index := make(map[string]AssociationRule, len(rules))
	for _, rule := range rules {
		if rule.Consequent == "" {
			continue
		}
		if _, exists := index[rule.Consequent]; exists {
			continue
		}
		index[rule.Consequent] = rule
	}
	return index
}

func indexProducts(products []Product) map[string]Product {
	index := make(map[string]Product, len(products))
	for _, p := range products {
		if _, exists := index[p.ItemID]; !exists {
			index[p.ItemID] = p
		}
	}
	return index
}

// ResolveRecommendations выбирает первые topN кандидатов клиента и присваивает
// каждому lift и confiança: из правила, чей consequent совпадает с rec_id,
// либо запасные значения из rnd. Отсутствие кандидатов дает пустой срез.
func ResolveRecommendations(
	candidates []RecommendationCandidate,
	rules []AssociationRule,
	products []Product,
	userID string,
	topN int,
	rnd RandomSource,
) []Recommendation {
	if topN <= 0 {
		return []Recommendation{}
	}

	selected := make([]RecommendationCandidate, 0, topN)
	for _, c := range candidates {
		if len(selected) >= topN {
			break
		}
		if c.UserID == userID {
			selected = append(selected, c)
		}
	}

	resolved := make([]Recommendation, 0, len(selected))
	if len(selected) == 0 {
		return resolved
	}

	ruleIndex := indexRules(rules)
	productIndex := indexProducts(products)

	for i, c := range selected {
		rule, matched := ruleIndex[c.RecID]

		var realLift, realConfidence *float64
		if matched {
			realLift = rule.Lift
			realConfidence = rule.Confidence
		}

		lift := resolveScore(realLift, func() float64 {
			return rnd.Float64Range(FallbackLiftMin, FallbackLiftMax)
		})
		confidence := resolveScore(realConfidence, func() float64 {
			return rnd.Float64Range(FallbackConfidenceMin, FallbackConfidenceMax)
		})

		rec := Recommendation{
			UserID:          c.UserID,
			RecID:           c.RecID,
			ItemDesc:        c.RecID,
			Lift:            lift.Value,
			Confianca:       confidence.Value,
			Razao:           FallbackReason,
			Categoria:       UncategorizedLabel,
			LiftSource:      lift.Source,
			ConfiancaSource: confidence.Source,
			Rank:            i + 1,
		}

		if product, ok := productIndex[c.RecID]; ok {
			if product.ItemDesc != "" {
				rec.ItemDesc = product.ItemDesc
			}
			rec.ItemClass = product.ItemClass
			if product.ItemClass != "" {
				rec.Categoria = product.ItemClass
			}
		}

		// Обоснование зависит только от происхождения lift
		if lift.IsReal() {
			rec.Razao = RealReason(lift.Value, rule.Antecedents)
			rec.Antecedents = rule.Antecedents
		}

		resolved = append(resolved, rec)
	}

	return resolved
}

// RankRecommendations упорядочивает рекомендации по lift по убыванию
// (при равенстве сохраняется исходный порядок кандидатов) и удаляет
// повторы item_desc, оставляя первую, то есть с наибольшим lift.
func RankRecommendations(recs []Recommendation) []Recommendation {
	ranked := make([]Recommendation, len(recs))
	copy(ranked, recs)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Lift > ranked[j].Lift
	})

	seen := make(map[string]struct{}, len(ranked))
	unique := make([]Recommendation, 0, len(ranked))
	for _, rec := range ranked {
		if _, dup := seen[rec.ItemDesc]; dup {
			continue
		}
		seen[rec.ItemDesc] = struct{}{}
		unique = append(unique, rec)
	}
	return unique
}
