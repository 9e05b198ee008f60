// Package schema defines column schemas and the value validation rules of
// the colfile writer.
//
// A Schema is an ordered sequence of columns; the order is significant and
// defines both the physical column order inside each row group and the
// path-in-schema recorded in column metadata. Rows are flat maps from
// column name to value, valid only relative to a given Schema.
package schema

import (
	"fmt"

	"github.com/arloliu/colfile/errs"
	"github.com/arloliu/colfile/format"
	"github.com/arloliu/colfile/internal/hash"
)

// Column describes a single column: a name and a logical type.
type Column struct {
	// Name is the column name, unique within a schema.
	Name string
	// Type is the column's logical type.
	Type format.LogicalType
}

// Row maps column names to scalar values. Every declared column must be
// present; absence is an error in this format.
type Row = map[string]any

// Schema is an immutable, ordered sequence of columns.
type Schema struct {
	Columns []Column
}

// New creates a schema from the given columns, in order.
func New(cols ...Column) Schema {
	return Schema{Columns: cols}
}

// Len returns the number of columns.
func (s Schema) Len() int {
	return len(s.Columns)
}

// Validate checks that the schema is well formed: non-empty, every column
// named, every type supported, and no duplicate column names.
//
// Returns:
//   - error: wraps errs.ErrSchema for structural problems, or
//     errs.ErrUnsupportedFeature for an unknown logical type
func (s Schema) Validate() error {
	if len(s.Columns) == 0 {
		return fmt.Errorf("%w: schema has no columns", errs.ErrSchema)
	}

	seen := make(map[uint64]string, len(s.Columns))
	for i, col := range s.Columns {
		if col.Name == "" {
			return errs.NewValidationError(errs.ErrSchema, col.Name, -1,
				fmt.Sprintf("column %d has no name", i))
		}

		if !col.Type.Valid() {
			return errs.NewValidationError(errs.ErrUnsupportedFeature, col.Name, -1,
				fmt.Sprintf("logical type %d is not supported", int32(col.Type)))
		}

		id := hash.ID(col.Name)
		if prev, ok := seen[id]; ok && prev == col.Name {
			return errs.NewValidationError(errs.ErrSchema, col.Name, -1, "duplicate column name")
		}
		seen[id] = col.Name
	}

	return nil
}

// ValidateRow checks that row supplies exactly the schema's columns, each
// with a value of the declared type and range. rowIdx is attached to every
// failure for diagnostics.
func (s Schema) ValidateRow(row Row, rowIdx int) error {
	for _, col := range s.Columns {
		val, ok := row[col.Name]
		if !ok {
			return errs.NewValidationError(errs.ErrMissingValue, col.Name, rowIdx, "no value supplied")
		}

		if err := ValidateValue(val, col.Type, col.Name, rowIdx); err != nil {
			return err
		}
	}

	// Every declared column is present, so a larger row must carry a key
	// the schema does not declare.
	if len(row) > len(s.Columns) {
		declared := make(map[string]struct{}, len(s.Columns))
		for _, col := range s.Columns {
			declared[col.Name] = struct{}{}
		}
		for name := range row {
			if _, ok := declared[name]; !ok {
				return errs.NewValidationError(errs.ErrSchema, name, rowIdx, "column not declared in schema")
			}
		}
	}

	return nil
}
