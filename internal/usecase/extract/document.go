package extract

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/go-json-experiment/json"
)

// Document is an emitted JSON document, decoded once and queried many times.
type Document struct {
	raw  []byte
	root any
}

// Parse decodes b. Anything that is not a single JSON value is rejected.
func Parse(b []byte) (*Document, error) {
	var root any
	if err := json.Unmarshal(b, &root); err != nil {
		return nil, err
	}
	return &Document{raw: b, root: root}, nil
}

// Records is the length of the top-level array, or -1 when the document is not one.
func (d *Document) Records() int {
	arr, ok := d.root.([]any)
	if !ok {
		return -1
	}
	return len(arr)
}

// Decode unmarshals the document into v. Members v does not declare are an error.
func (d *Document) Decode(v any) error {
	return json.Unmarshal(d.raw, v, json.RejectUnknownMembers(true))
}

// Lookup evaluates a JSONPath expression. A single match is unwrapped;
// several matches stay a list.
func (d *Document) Lookup(expr string) (Value, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Value{}, errors.New("empty jsonpath expression")
	}
	v, err := jsonpath.Get(expr, d.root)
	if err != nil {
		return Value{}, fmt.Errorf("jsonpath %s: %w", expr, err)
	}
	if arr, ok := v.([]any); ok && len(arr) == 1 {
		v = arr[0]
	}
	return Value{v: v}, nil
}

// Value is what an expression resolved to.
type Value struct {
	v any
}

// Empty is true for null, "", and empty lists or objects.
func (v Value) Empty() bool {
	switch t := v.v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

// Text renders scalars as written in the document (30, not 30.000000) and
// lists or objects as compact JSON with sorted keys.
func (v Value) Text() (string, error) {
	switch t := v.v.(type) {
	case nil:
		return "", errors.New("value is null")
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	}
	b, err := json.Marshal(v.v, json.Deterministic(true))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Number accepts JSON numbers and numeric strings.
func (v Value) Number() (float64, error) {
	switch t := v.v.(type) {
	case float64:
		return t, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not numeric", t)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%T is not numeric", v.v)
}
