package extract

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/aalvaropc/recordemit/internal/domain"
)

// Apply resolves every rule against doc, in name order.
// A failing rule is reported and the others still run.
func Apply(doc *Document, rules domain.ExtractSpec) (map[string]string, []domain.ExtractResult) {
	values := make(map[string]string, len(rules))
	results := make([]domain.ExtractResult, 0, len(rules))

	for _, name := range slices.Sorted(maps.Keys(rules)) {
		s, err := resolve(doc, rules[name])
		if err != nil {
			results = append(results, domain.ExtractResult{
				Name:    name,
				Message: fmt.Sprintf("%s: %v", name, err),
			})
			continue
		}
		values[name] = s
		results = append(results, domain.ExtractResult{Name: name, Success: true, Message: s})
	}
	return values, results
}

func resolve(doc *Document, expr string) (string, error) {
	v, err := doc.Lookup(expr)
	if err != nil {
		return "", err
	}
	if v.Empty() {
		return "", errors.New("no value found")
	}
	return v.Text()
}
