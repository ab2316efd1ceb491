package filter

import (
	"errors"
	"fmt"
)

// ErrEmptyExpression indicates a blank filter expression
var ErrEmptyExpression = errors.New("empty filter expression")

// CompileError wraps an expression compilation failure.
type CompileError struct {
	Expression string
	Err        error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile filter expression %q: %v", e.Expression, e.Err)
}

// Unwrap returns the underlying compile error
func (e *CompileError) Unwrap() error {
	return e.Err
}
