package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidInput  = errors.New("invalid input")
	ErrOutputWrite   = errors.New("output write failed")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindInvalidInput  ErrorKind = "invalid_input"
	KindOutputWrite   ErrorKind = "output_write"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel that corresponds to the error's kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case KindNotFound:
		return target == ErrNotFound
	case KindInvalidConfig:
		return target == ErrInvalidConfig
	case KindInvalidInput:
		return target == ErrInvalidInput
	case KindOutputWrite:
		return target == ErrOutputWrite
	}
	return false
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
