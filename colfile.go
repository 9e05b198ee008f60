// Package colfile serializes flat, strictly-typed tabular data into a
// columnar, self-describing binary file.
//
// The output is delimited by 4-byte magic sequences and laid out as one
// data page per column per row group, followed by a footer holding the
// schema, row group and column chunk metadata, the footer's byte length
// and the closing magic. Every byte offset recorded in metadata equals the
// physical position of the corresponding page header in the output, so
// readers can seek directly to column data.
//
// # Core Features
//
//   - Six logical column types: INT32, INT64, FLOAT, DOUBLE, BOOLEAN, BYTE_ARRAY
//   - Plain encoding: fixed-width little-endian values, length-prefixed byte arrays
//   - Row group partitioning with a configurable row count per group
//   - Fail-fast validation with typed, cell-attributed errors
//   - Stateless encoding: concurrent encodes need no coordination
//
// # Basic Usage
//
// Encoding a small table:
//
//	import "github.com/arloliu/colfile"
//
//	s := colfile.NewSchema(
//	    colfile.Column{Name: "id", Type: colfile.TypeInt32},
//	    colfile.Column{Name: "name", Type: colfile.TypeByteArray},
//	)
//
//	rows := []colfile.Row{
//	    {"id": int32(1), "name": "Alice"},
//	    {"id": int32(2), "name": "Bob"},
//	}
//
//	data, err := colfile.Encode(s, rows, colfile.WithRowGroupSize(1000))
//	if err != nil {
//	    return err
//	}
//	_ = os.WriteFile("table.colfile", data, 0o644)
//
// Callers that already hold partitioned rows use EncodeGroups instead;
// each group becomes one row group as given.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the file
// package. For fine-grained control over a reusable writer, use the file
// package directly; the schema, encoding, meta and protocol packages hold
// the individual layers.
package colfile

import (
	"github.com/arloliu/colfile/file"
	"github.com/arloliu/colfile/format"
	"github.com/arloliu/colfile/internal/hash"
	"github.com/arloliu/colfile/schema"
)

// Re-exported schema types, so simple callers need only this package.
type (
	// Column describes a single column: a name and a logical type.
	Column = schema.Column
	// Row maps column names to scalar values.
	Row = schema.Row
	// Schema is an immutable, ordered sequence of columns.
	Schema = schema.Schema
)

// Re-exported logical types.
const (
	TypeBoolean   = format.TypeBoolean
	TypeInt32     = format.TypeInt32
	TypeInt64     = format.TypeInt64
	TypeFloat     = format.TypeFloat
	TypeDouble    = format.TypeDouble
	TypeByteArray = format.TypeByteArray
)

// Re-exported writer options.
var (
	// WithRowGroupSize sets the maximum number of rows per row group.
	WithRowGroupSize = file.WithRowGroupSize
	// WithCreatedBy sets the creator string recorded in the file metadata.
	WithCreatedBy = file.WithCreatedBy
)

// NewSchema creates a schema from the given columns, in order.
func NewSchema(cols ...Column) Schema {
	return schema.New(cols...)
}

// Encode validates schema and rows and returns the complete encoded file.
//
// Rows are partitioned into row groups per WithRowGroupSize; without it a
// single row group holds all rows. The first validation or encoding
// failure aborts the call and no partial output is returned.
func Encode(s Schema, rows []Row, opts ...file.Option) ([]byte, error) {
	w, err := file.NewWriter(s, opts...)
	if err != nil {
		return nil, err
	}

	return w.Encode(rows)
}

// EncodeGroups encodes pre-partitioned row groups; each group becomes one
// row group as given. Every group is validated independently and the
// WithRowGroupSize option does not apply.
func EncodeGroups(s Schema, groups [][]Row, opts ...file.Option) ([]byte, error) {
	w, err := file.NewWriter(s, opts...)
	if err != nil {
		return nil, err
	}

	return w.EncodeGroups(groups)
}

// Fingerprint returns the xxHash64 of an encoded file, suitable for cache
// keys and deduplication. Identical (schema, rows, options) inputs produce
// identical outputs, so fingerprints are stable across encodes.
func Fingerprint(data []byte) uint64 {
	return hash.Sum(data)
}
