package assert

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/aalvaropc/recordemit/internal/domain"
	"github.com/aalvaropc/recordemit/internal/usecase/extract"
)

// Count checks the number of records in the top-level array.
func Count(expected int, doc *extract.Document) domain.AssertionResult {
	r := domain.AssertionResult{Name: "count"}
	switch n := doc.Records(); {
	case n < 0:
		r.Message = "document is not a list of records"
	case n == expected:
		r.Passed = true
		r.Message = fmt.Sprintf("%d records", n)
	default:
		r.Message = fmt.Sprintf("expected %d records, got %d", expected, n)
	}
	return r
}

// Evaluate applies spec to doc. A nil count skips the record count check.
// The count comes first, then the checks of each expression in sorted order.
func Evaluate(spec domain.AssertionsSpec, count *int, doc *extract.Document) []domain.AssertionResult {
	var out []domain.AssertionResult
	if count != nil {
		out = append(out, Count(*count, doc))
	}

	for _, expr := range slices.Sorted(maps.Keys(spec.JSONPath)) {
		v, lookupErr := doc.Lookup(expr)
		for _, c := range checksFor(spec.JSONPath[expr]) {
			r := domain.AssertionResult{Name: "jsonpath." + c.name}
			var (
				detail string
				err    = lookupErr
			)
			if err == nil {
				r.Passed, detail, err = c.test(v)
			}
			if err != nil {
				detail = err.Error()
			}
			r.Message = fmt.Sprintf("%s %s", expr, detail)
			out = append(out, r)
		}
	}
	return out
}

// Failed counts the assertions that did not pass.
func Failed(results []domain.AssertionResult) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}

// check is one comparison against a resolved value. test returns whether it
// passed and a detail line; an error means the value could not be compared.
type check struct {
	name string
	test func(extract.Value) (bool, string, error)
}

func checksFor(a domain.JSONPathAssertion) []check {
	var cs []check
	if a.Exists {
		cs = append(cs, check{"exists", func(v extract.Value) (bool, string, error) {
			if v.Empty() {
				return false, "has no value", nil
			}
			return true, "exists", nil
		}})
	}
	if a.Eq != nil {
		want := *a.Eq
		cs = append(cs, textCheck("eq", func(s string) bool { return s == want },
			fmt.Sprintf("== %q", want)))
	}
	if a.Contains != nil {
		sub := *a.Contains
		cs = append(cs, textCheck("contains", func(s string) bool { return strings.Contains(s, sub) },
			fmt.Sprintf("contains %q", sub)))
	}
	if a.Matches != nil {
		pattern := *a.Matches
		re, err := regexp.Compile(pattern)
		if err != nil {
			cs = append(cs, check{"matches", func(extract.Value) (bool, string, error) {
				return false, "", fmt.Errorf("invalid regex %q: %v", pattern, err)
			}})
		} else {
			cs = append(cs, textCheck("matches", re.MatchString, fmt.Sprintf("matches %q", pattern)))
		}
	}
	if a.Gt != nil {
		limit := *a.Gt
		cs = append(cs, numberCheck("gt", func(f float64) bool { return f > limit }, fmt.Sprintf("> %v", limit)))
	}
	if a.Lt != nil {
		limit := *a.Lt
		cs = append(cs, numberCheck("lt", func(f float64) bool { return f < limit }, fmt.Sprintf("< %v", limit)))
	}
	return cs
}

func textCheck(name string, ok func(string) bool, want string) check {
	return check{name, func(v extract.Value) (bool, string, error) {
		s, err := v.Text()
		if err != nil {
			return false, "", err
		}
		if ok(s) {
			return true, want, nil
		}
		return false, fmt.Sprintf("is %q, want %s", s, want), nil
	}}
}

func numberCheck(name string, ok func(float64) bool, want string) check {
	return check{name, func(v extract.Value) (bool, string, error) {
		f, err := v.Number()
		if err != nil {
			return false, "", err
		}
		if ok(f) {
			return true, fmt.Sprintf("%v %s", f, want), nil
		}
		return false, fmt.Sprintf("is %v, want %s", f, want), nil
	}}
}
