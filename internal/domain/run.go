package domain

// EmitResult describes one completed emitter run.
// AverageAge and Total are set only by the emitters that compute them.
type EmitResult struct {
	Emitter string
	Records int
	Path    string

	AverageAge float64
	Total      Cents
}

// AssertionResult is the output of a single assertion against an emitted document.
type AssertionResult struct {
	Name    string
	Passed  bool
	Message string
}

// ExtractResult is the output of a single extraction rule.
type ExtractResult struct {
	Name    string
	Success bool
	Message string
}

// ExtractSpec defines variable extraction from emitted documents.
// Map: variableName -> jsonpathExpression
type ExtractSpec map[string]string

// JSONPathAssertion defines the checks applied to one JSONPath expression.
// Nil fields are not checked.
type JSONPathAssertion struct {
	Exists   bool
	Eq       *string
	Contains *string
	Matches  *string
	Gt       *float64
	Lt       *float64
}

// AssertionsSpec maps JSONPath expressions to the checks applied to them.
type AssertionsSpec struct {
	JSONPath map[string]JSONPathAssertion
}
