package importer

import (
	"errors"
	"regexp"
)

var (
	// ErrMalformedConsequent значение не соответствует frozenset({'item_N'})
	ErrMalformedConsequent = errors.New("malformed consequent")
	// ErrMultiItemConsequent frozenset содержит больше одного элемента
	ErrMultiItemConsequent = errors.New("consequent has more than one item")
)

var (
	singleConsequentRe = regexp.MustCompile(`^\s*frozenset\(\{\s*'(item_\d+)'\s*\}\)\s*$`)
	multiConsequentRe  = regexp.MustCompile(`^\s*frozenset\(\{\s*'item_\d+'\s*(,\s*'item_\d+'\s*)+\}\)\s*$`)
)

// ExtractConsequent извлекает единственный item_id из текстового frozenset.
// Несколько элементов дают ErrMultiItemConsequent, прочее ErrMalformedConsequent.
func ExtractConsequent(raw string) (string, error) {
	if m := singleConsequentRe.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}
	if multiConsequentRe.MatchString(raw) {
		return "", ErrMultiItemConsequent
	}
	return "", ErrMalformedConsequent
}
