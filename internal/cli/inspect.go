package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/recordemit/internal/domain"
	"github.com/aalvaropc/recordemit/internal/usecase/assert"
	"github.com/aalvaropc/recordemit/internal/usecase/extract"
)

func inspectCmd() *cobra.Command {
	var rules []string

	c := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Evaluate JSONPath expressions against an emitted JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := domain.ExtractSpec{}
			for _, r := range rules {
				name, expr, ok := strings.Cut(r, "=")
				name = strings.TrimSpace(name)
				if !ok || name == "" {
					return flagError("inspect", "--extract", r, "expected name=<jsonpath>")
				}
				spec[name] = expr
			}
			if len(spec) == 0 {
				return flagError("inspect", "--extract", "", "at least one rule is required")
			}

			doc, err := readDocument("inspect", args[0])
			if err != nil {
				return err
			}

			values, results := extract.Apply(doc, spec)
			rep := newReporter(cmd.OutOrStdout())
			failed := 0
			for _, r := range results {
				if !r.Success {
					failed++
					rep.Failure(r.Message)
					continue
				}
				rep.Info(fmt.Sprintf("%s = %s", r.Name, values[r.Name]))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d extract rules failed", failed, len(results))
			}
			return nil
		},
	}

	c.Flags().StringArrayVar(&rules, "extract", nil, "name=<jsonpath> (repeatable)")
	return c
}

func verifyCmd() *cobra.Command {
	var (
		count                                 int
		people                                bool
		exists, eq, contains, matches, gt, lt []string
	)

	c := &cobra.Command{
		Use:   "verify <file>",
		Short: "Check assertions against an emitted JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := domain.AssertionsSpec{JSONPath: map[string]domain.JSONPathAssertion{}}
			at := func(expr string) domain.JSONPathAssertion { return spec.JSONPath[expr] }

			for _, expr := range exists {
				a := at(expr)
				a.Exists = true
				spec.JSONPath[expr] = a
			}

			strs := []struct {
				flag   string
				values []string
				set    func(*domain.JSONPathAssertion, string)
			}{
				{"--eq", eq, func(a *domain.JSONPathAssertion, v string) { a.Eq = &v }},
				{"--contains", contains, func(a *domain.JSONPathAssertion, v string) { a.Contains = &v }},
				{"--matches", matches, func(a *domain.JSONPathAssertion, v string) { a.Matches = &v }},
			}
			for _, s := range strs {
				for _, raw := range s.values {
					expr, v, err := splitAssertion("verify", s.flag, raw)
					if err != nil {
						return err
					}
					a := at(expr)
					s.set(&a, v)
					spec.JSONPath[expr] = a
				}
			}

			nums := []struct {
				flag   string
				values []string
				set    func(*domain.JSONPathAssertion, float64)
			}{
				{"--gt", gt, func(a *domain.JSONPathAssertion, f float64) { a.Gt = &f }},
				{"--lt", lt, func(a *domain.JSONPathAssertion, f float64) { a.Lt = &f }},
			}
			for _, n := range nums {
				for _, raw := range n.values {
					expr, v, err := splitAssertion("verify", n.flag, raw)
					if err != nil {
						return err
					}
					f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
					if err != nil {
						return flagError("verify", n.flag, raw, "threshold is not a number")
					}
					a := at(expr)
					n.set(&a, f)
					spec.JSONPath[expr] = a
				}
			}

			var want *int
			if cmd.Flags().Changed("count") {
				want = &count
			}
			if want == nil && !people && len(spec.JSONPath) == 0 {
				return flagError("verify", "", "", "no assertions given")
			}

			doc, err := readDocument("verify", args[0])
			if err != nil {
				return err
			}

			var results []domain.AssertionResult
			if people {
				results = append(results, assert.People(doc, domain.DefaultPeople())...)
			}
			results = append(results, assert.Evaluate(spec, want, doc)...)
			rep := newReporter(cmd.OutOrStdout())
			for _, r := range results {
				line := fmt.Sprintf("%s: %s", r.Name, r.Message)
				if r.Passed {
					rep.Success(line)
				} else {
					rep.Failure(line)
				}
			}
			if n := assert.Failed(results); n > 0 {
				return fmt.Errorf("%d of %d assertions failed", n, len(results))
			}
			return nil
		},
	}

	f := c.Flags()
	f.IntVar(&count, "count", 0, "expected number of records in the top-level array")
	f.BoolVar(&people, "people", false, "the document must hold the sample people, in order and unchanged")
	f.StringArrayVar(&exists, "exists", nil, "<jsonpath> must resolve to a non-empty value")
	f.StringArrayVar(&eq, "eq", nil, "<jsonpath>=<value>")
	f.StringArrayVar(&contains, "contains", nil, "<jsonpath>=<substring>")
	f.StringArrayVar(&matches, "matches", nil, "<jsonpath>=<regex>")
	f.StringArrayVar(&gt, "gt", nil, "<jsonpath>=<number>")
	f.StringArrayVar(&lt, "lt", nil, "<jsonpath>=<number>")
	return c
}

// splitAssertion splits on the last '=' so expressions with filters keep theirs.
func splitAssertion(op, flag, raw string) (string, string, error) {
	i := strings.LastIndex(raw, "=")
	if i <= 0 {
		return "", "", flagError(op, flag, raw, "expected <jsonpath>=<value>")
	}
	expr := strings.TrimSpace(raw[:i])
	if expr == "" {
		return "", "", flagError(op, flag, raw, "empty jsonpath expression")
	}
	return expr, raw[i+1:], nil
}

func readDocument(op, path string) (*extract.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindInvalidInput
		if errors.Is(err, os.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{Op: op + ".read", Kind: kind, Path: path, Err: err}
	}
	doc, err := extract.Parse(b)
	if err != nil {
		return nil, &domain.OpError{Op: op + ".parse", Kind: domain.KindInvalidInput, Path: path, Err: err}
	}
	return doc, nil
}

func flagError(op, flag, value, msg string) error {
	err := errors.New(msg)
	if flag != "" {
		err = fmt.Errorf("%s %q: %s", flag, value, msg)
	}
	return &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: err}
}
