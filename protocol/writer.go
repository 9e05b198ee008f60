package protocol

import (
	"fmt"
	"math"

	"github.com/arloliu/colfile/endian"
	"github.com/arloliu/colfile/internal/pool"
)

// StructWriter appends the fields of one struct into a pooled byte buffer.
//
// Fields must be written in the order the consuming format expects; the
// writer enforces no schema of its own, only structural framing. Field
// identifiers must be unique within one struct; writing a duplicate
// identifier panics, as does writing after Finish. Both are programmer
// errors, not data errors.
//
// Nested structs do not recurse through the writer: a child struct is
// serialized by its own StructWriter and attached to the parent as an
// opaque byte block via WriteStructField or WriteStructListField.
//
// Typical usage:
//
//	w := protocol.NewStructWriter(engine)
//	w.WriteI32Field(1, 42)
//	w.WriteStringField(6, "writer v1")
//	w.WriteStop()
//	block := w.Finish()
type StructWriter struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	ids    []int16
}

// NewStructWriter creates a StructWriter using the specified endian engine.
func NewStructWriter(engine endian.EndianEngine) *StructWriter {
	return &StructWriter{
		engine: engine,
		buf:    pool.GetPageBuffer(),
	}
}

// writeFieldHeader appends the tag byte and little-endian field identifier.
func (w *StructWriter) writeFieldHeader(tag Tag, fieldID int16) {
	if w.buf == nil {
		panic("protocol: write after Finish()")
	}

	for _, id := range w.ids {
		if id == fieldID {
			panic(fmt.Sprintf("protocol: duplicate field id %d", fieldID))
		}
	}
	w.ids = append(w.ids, fieldID)

	w.buf.B = append(w.buf.B, byte(tag))
	w.buf.B = w.engine.AppendUint16(w.buf.B, uint16(fieldID))
}

// WriteBoolField appends a BOOL field: one byte, 1 for true and 0 for false.
func (w *StructWriter) WriteBoolField(fieldID int16, val bool) {
	w.writeFieldHeader(TagBool, fieldID)
	if val {
		w.buf.B = append(w.buf.B, 1)
	} else {
		w.buf.B = append(w.buf.B, 0)
	}
}

// WriteI32Field appends an I32 field with a 4-byte little-endian payload.
func (w *StructWriter) WriteI32Field(fieldID int16, val int32) {
	w.writeFieldHeader(TagI32, fieldID)
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(val))
}

// WriteI64Field appends an I64 field with an 8-byte little-endian payload.
func (w *StructWriter) WriteI64Field(fieldID int16, val int64) {
	w.writeFieldHeader(TagI64, fieldID)
	w.buf.B = w.engine.AppendUint64(w.buf.B, uint64(val))
}

// WriteDoubleField appends a DOUBLE field as IEEE-754 binary64 little-endian.
func (w *StructWriter) WriteDoubleField(fieldID int16, val float64) {
	w.writeFieldHeader(TagDouble, fieldID)
	w.buf.B = w.engine.AppendUint64(w.buf.B, math.Float64bits(val))
}

// WriteStringField appends a STRING field: int32_le byte length, then the
// raw bytes. The length is a byte count, so embedded zero bytes and
// non-UTF-8 data pass through unchanged.
func (w *StructWriter) WriteStringField(fieldID int16, val string) {
	w.writeFieldHeader(TagString, fieldID)
	w.appendString(val)
}

// WriteStructField appends a pre-serialized child struct as an opaque byte
// block. The block must already be terminated by its own stop byte.
func (w *StructWriter) WriteStructField(fieldID int16, encoded []byte) {
	w.writeFieldHeader(TagStruct, fieldID)
	w.buf.MustWrite(encoded)
}

// WriteI32ListField appends a LIST field of I32 elements.
func (w *StructWriter) WriteI32ListField(fieldID int16, vals []int32) {
	w.writeListHeader(fieldID, TagI32, len(vals))
	for _, v := range vals {
		w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(v))
	}
}

// WriteStringListField appends a LIST field of STRING elements, each with
// its own int32_le length prefix.
func (w *StructWriter) WriteStringListField(fieldID int16, vals []string) {
	w.writeListHeader(fieldID, TagString, len(vals))
	for _, v := range vals {
		w.appendString(v)
	}
}

// WriteStructListField appends a LIST field of pre-serialized struct
// blocks, concatenated in order.
func (w *StructWriter) WriteStructListField(fieldID int16, blocks [][]byte) {
	w.writeListHeader(fieldID, TagStruct, len(blocks))
	for _, b := range blocks {
		w.buf.MustWrite(b)
	}
}

// WriteListField appends a LIST field whose count elements are produced by
// encodeElem, called once per element index in order. encodeElem must
// append exactly one element of elemTag's wire shape per call; the writer
// only frames the list, it cannot verify the elements.
func (w *StructWriter) WriteListField(fieldID int16, elemTag Tag, count int, encodeElem func(i int)) {
	w.writeListHeader(fieldID, elemTag, count)
	for i := 0; i < count; i++ {
		encodeElem(i)
	}
}

// AppendRaw appends pre-encoded bytes without any framing. Intended for
// element encoders passed to WriteListField.
func (w *StructWriter) AppendRaw(data []byte) {
	if w.buf == nil {
		panic("protocol: write after Finish()")
	}

	w.buf.MustWrite(data)
}

// WriteStop appends the single stop byte terminating this struct's fields.
func (w *StructWriter) WriteStop() {
	if w.buf == nil {
		panic("protocol: write after Finish()")
	}

	w.buf.B = append(w.buf.B, byte(TagStop))
}

// writeListHeader appends the list field framing: tag, field id, element
// tag and 4-byte little-endian element count.
func (w *StructWriter) writeListHeader(fieldID int16, elemTag Tag, count int) {
	w.writeFieldHeader(TagList, fieldID)
	w.buf.B = append(w.buf.B, byte(elemTag))
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(count))
}

func (w *StructWriter) appendString(val string) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(len(val)))
	w.buf.B = append(w.buf.B, val...)
}

// Len returns the number of bytes written so far.
func (w *StructWriter) Len() int {
	if w.buf == nil {
		return 0
	}

	return w.buf.Len()
}

// Bytes returns the bytes written so far. The returned slice references
// the internal buffer and is valid only until the next write or Finish.
func (w *StructWriter) Bytes() []byte {
	if w.buf == nil {
		panic("protocol: access after Finish()")
	}

	return w.buf.Bytes()
}

// Finish returns a detached copy of the encoded struct and releases the
// internal buffer back to the pool. The writer cannot be used afterwards.
func (w *StructWriter) Finish() []byte {
	if w.buf == nil {
		panic("protocol: Finish() called twice")
	}

	out := w.buf.CopyBytes()
	pool.PutPageBuffer(w.buf)
	w.buf = nil
	w.ids = nil

	return out
}
