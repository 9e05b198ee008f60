// Package encoding implements the plain on-disk encoding of column values.
//
// Plain encoding is the uncompressed, non-dictionary representation:
// fixed-width little-endian integers and IEEE-754 floats written back to
// back, booleans as single bytes, and byte arrays with a 4-byte
// little-endian length prefix.
package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/colfile/endian"
	"github.com/arloliu/colfile/errs"
	"github.com/arloliu/colfile/format"
	"github.com/arloliu/colfile/internal/pool"
	"github.com/arloliu/colfile/schema"
)

// PlainEncoder encodes an ordered sequence of one column's values into
// their plain representation, appending into a pooled byte buffer.
//
// The typed Write methods assume pre-validated input; EncodeColumn
// validates each value before writing and is what the file assembler uses.
//
// Panics on any Write after Finish, matching the buffer ownership rules of
// the pool package.
type PlainEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

// NewPlainEncoder creates a plain encoder using the specified endian engine.
func NewPlainEncoder(engine endian.EndianEngine) *PlainEncoder {
	return &PlainEncoder{
		engine: engine,
		buf:    pool.GetPageBuffer(),
	}
}

// WriteInt32 appends one INT32 value as 4 little-endian bytes.
func (e *PlainEncoder) WriteInt32(val int32) {
	e.checkOpen()
	e.count++
	e.buf.B = e.engine.AppendUint32(e.buf.B, uint32(val))
}

// WriteInt64 appends one INT64 value as 8 little-endian bytes.
func (e *PlainEncoder) WriteInt64(val int64) {
	e.checkOpen()
	e.count++
	e.buf.B = e.engine.AppendUint64(e.buf.B, uint64(val))
}

// WriteFloat appends one FLOAT value as IEEE-754 binary32 little-endian.
func (e *PlainEncoder) WriteFloat(val float32) {
	e.checkOpen()
	e.count++
	e.buf.B = e.engine.AppendUint32(e.buf.B, math.Float32bits(val))
}

// WriteDouble appends one DOUBLE value as IEEE-754 binary64 little-endian.
func (e *PlainEncoder) WriteDouble(val float64) {
	e.checkOpen()
	e.count++
	e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(val))
}

// WriteBoolean appends one BOOLEAN value as a single byte, 1 for true.
func (e *PlainEncoder) WriteBoolean(val bool) {
	e.checkOpen()
	e.count++
	if val {
		e.buf.B = append(e.buf.B, 1)
	} else {
		e.buf.B = append(e.buf.B, 0)
	}
}

// WriteByteArray appends one BYTE_ARRAY value: a 4-byte little-endian byte
// length followed by the raw bytes. The length counts bytes, not
// characters, and embedded zero bytes pass through unchanged.
func (e *PlainEncoder) WriteByteArray(val []byte) {
	e.checkOpen()
	e.count++
	e.buf.Grow(4 + len(val))
	e.buf.B = e.engine.AppendUint32(e.buf.B, uint32(len(val)))
	e.buf.B = append(e.buf.B, val...)
}

// EncodeColumn validates and appends every value in order. baseRow is the
// absolute index of the first value's row, used to attribute failures.
//
// Any invalid value aborts the encode immediately; the encoder's buffer
// then holds a partial column and must be discarded via Finish.
//
// An empty values slice is valid and writes nothing.
//
// Returns:
//   - error: the first *errs.ValidationError encountered, or nil
func (e *PlainEncoder) EncodeColumn(values []any, typ format.LogicalType, col string, baseRow int) error {
	e.checkOpen()

	for i, val := range values {
		canonical, err := schema.Canonical(val, typ, col, baseRow+i)
		if err != nil {
			return err
		}

		switch typ {
		case format.TypeInt32:
			e.WriteInt32(canonical.(int32))
		case format.TypeInt64:
			e.WriteInt64(canonical.(int64))
		case format.TypeFloat:
			e.WriteFloat(canonical.(float32))
		case format.TypeDouble:
			e.WriteDouble(canonical.(float64))
		case format.TypeBoolean:
			e.WriteBoolean(canonical.(bool))
		case format.TypeByteArray:
			e.WriteByteArray(canonical.([]byte))
		default:
			return errs.NewValidationError(errs.ErrUnsupportedFeature, col, baseRow+i,
				fmt.Sprintf("logical type %d is not supported", int32(typ)))
		}
	}

	return nil
}

// Count returns the number of values written since construction.
func (e *PlainEncoder) Count() int {
	return e.count
}

// Len returns the number of encoded bytes written so far.
func (e *PlainEncoder) Len() int {
	if e.buf == nil {
		return 0
	}

	return e.buf.Len()
}

// Bytes returns the encoded bytes. The returned slice references the
// internal buffer and is valid only until the next write or Finish.
func (e *PlainEncoder) Bytes() []byte {
	e.checkOpen()
	return e.buf.Bytes()
}

// Finish releases the internal buffer back to the pool. The encoder cannot
// be used afterwards. Callers that need the encoded bytes past Finish must
// copy them first.
func (e *PlainEncoder) Finish() {
	if e.buf == nil {
		return
	}

	pool.PutPageBuffer(e.buf)
	e.buf = nil
}

func (e *PlainEncoder) checkOpen() {
	if e.buf == nil {
		panic("encoding: encoder already finished")
	}
}
