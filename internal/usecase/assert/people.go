package assert

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/recordemit/internal/domain"
	"github.com/aalvaropc/recordemit/internal/usecase/extract"
)

// People checks that doc decodes back into exactly want: same count, same
// order, and every name, age and department intact.
func People(doc *extract.Document, want []domain.Person) []domain.AssertionResult {
	var got []domain.Person
	if err := doc.Decode(&got); err != nil {
		return []domain.AssertionResult{{
			Name:    "people",
			Message: fmt.Sprintf("document does not decode as people: %v", err),
		}}
	}

	out := []domain.AssertionResult{Count(len(want), doc)}
	for i, w := range want {
		r := domain.AssertionResult{Name: fmt.Sprintf("people[%d]", i)}
		if i >= len(got) {
			r.Message = fmt.Sprintf("missing %s", w.Name)
			out = append(out, r)
			continue
		}
		if diffs := personDiff(w, got[i]); len(diffs) > 0 {
			r.Message = strings.Join(diffs, ", ")
		} else {
			r.Passed = true
			r.Message = fmt.Sprintf("%s, %d, %s", w.Name, w.Age, w.Department)
		}
		out = append(out, r)
	}
	return out
}

func personDiff(want, got domain.Person) []string {
	var d []string
	if got.Name != want.Name {
		d = append(d, fmt.Sprintf("name %q, want %q", got.Name, want.Name))
	}
	if got.Age != want.Age {
		d = append(d, fmt.Sprintf("age %d, want %d", got.Age, want.Age))
	}
	if got.Department != want.Department {
		d = append(d, fmt.Sprintf("department %q, want %q", got.Department, want.Department))
	}
	return d
}
