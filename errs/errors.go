// Package errs defines the sentinel errors and structured error values
// shared across the colfile module.
//
// Every failure surfaced by the module wraps exactly one of the sentinel
// errors below, so callers can classify failures with errors.Is:
//
//	if errors.Is(err, errs.ErrRange) { ... }
//
// Failures that originate from a specific cell additionally carry the
// column name and row index in a ValidationError, extractable with
// errors.As.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema indicates a malformed schema: empty, a column without a
	// name or type, or a duplicate column name.
	ErrSchema = errors.New("invalid schema")

	// ErrType indicates a value whose runtime kind does not match its
	// column's declared logical type.
	ErrType = errors.New("type mismatch")

	// ErrValue indicates a value of the right kind that is still not
	// encodable, such as a fractional number in an integer column.
	ErrValue = errors.New("invalid value")

	// ErrRange indicates a numeric value outside the representable bounds
	// of its declared type.
	ErrRange = errors.New("value out of range")

	// ErrMissingValue indicates a row that omits a value for a declared
	// column.
	ErrMissingValue = errors.New("missing value")

	// ErrUnsupportedFeature indicates a requested logical type or protocol
	// feature this writer does not implement.
	ErrUnsupportedFeature = errors.New("unsupported feature")

	// ErrInternal indicates an unexpected failure that does not fit any
	// other category.
	ErrInternal = errors.New("internal error")
)

// ValidationError reports a validation failure attributed to a specific
// column and, when row-scoped, a specific row.
//
// Kind is always one of the sentinel errors of this package; Unwrap
// returns it so errors.Is matches the sentinel through a ValidationError.
type ValidationError struct {
	// Kind is the sentinel classifying this failure.
	Kind error
	// Column is the column name the failure is attributed to.
	Column string
	// Row is the zero-based row index, or -1 when the failure is not
	// row-scoped (for example a schema-level problem).
	Row int
	// Detail describes the violation, including expected/actual kinds or
	// bounds where applicable.
	Detail string
}

// NewValidationError builds a ValidationError of the given kind.
// Pass row -1 for failures not attributable to a row.
func NewValidationError(kind error, column string, row int, detail string) *ValidationError {
	return &ValidationError{Kind: kind, Column: column, Row: row, Detail: detail}
}

func (e *ValidationError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%s: column %q: %s", e.Kind.Error(), e.Column, e.Detail)
	}

	return fmt.Sprintf("%s: column %q, row %d: %s", e.Kind.Error(), e.Column, e.Row, e.Detail)
}

// Unwrap returns the sentinel kind, enabling errors.Is classification.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}
