// Package file assembles complete colfile outputs: it validates schema and
// rows, partitions rows into row groups, drives the plain column encoders
// and metadata builders in order while tracking byte offsets, and
// concatenates everything into the final magic-delimited byte sequence.
package file

import (
	"fmt"

	"github.com/arloliu/colfile/encoding"
	"github.com/arloliu/colfile/endian"
	"github.com/arloliu/colfile/format"
	"github.com/arloliu/colfile/internal/options"
	"github.com/arloliu/colfile/internal/pool"
	"github.com/arloliu/colfile/meta"
	"github.com/arloliu/colfile/schema"
)

// FooterLengthSize is the byte length of the little-endian footer length
// field preceding the trailing magic.
const FooterLengthSize = 4

// Writer encodes row data for one fixed schema into complete files.
//
// A Writer holds no state between encode calls: each Encode or
// EncodeGroups call is a pure function from rows to bytes, so one Writer
// may be used from multiple goroutines concurrently.
type Writer struct {
	schema       schema.Schema
	engine       endian.EndianEngine
	rowGroupSize int
	createdBy    string
}

// NewWriter creates a Writer for the given schema.
//
// The schema is validated once here: it must be non-empty, every column
// must carry a name and a supported logical type, and column names must be
// unique.
//
// Returns:
//   - *Writer: a writer ready for Encode / EncodeGroups calls
//   - error: schema validation or option errors
func NewWriter(s schema.Schema, opts ...Option) (*Writer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	w := &Writer{
		schema:    s,
		engine:    endian.GetLittleEndianEngine(),
		createdBy: DefaultCreatedBy,
	}

	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	return w, nil
}

// Schema returns the writer's schema.
func (w *Writer) Schema() schema.Schema {
	return w.schema
}

// Encode validates rows, partitions them into row groups per the
// configured row group size, and returns the complete encoded file.
//
// Partitioning: with a configured row group size k the writer produces
// ceil(len(rows)/k) groups of k rows each except the last; without one it
// produces a single group holding all rows, including the zero-row case,
// which yields a valid file with one empty row group.
//
// Any validation or encoding failure aborts the whole call; no partial
// output is returned.
func (w *Writer) Encode(rows []schema.Row) ([]byte, error) {
	for i, row := range rows {
		if err := w.schema.ValidateRow(row, i); err != nil {
			return nil, err
		}
	}

	return w.assemble(w.partition(rows))
}

// EncodeGroups encodes pre-partitioned row groups. Every group is
// independently validated; the configured row group size does not apply.
// Row indexes in error context are file-absolute, counted across groups.
func (w *Writer) EncodeGroups(groups [][]schema.Row) ([]byte, error) {
	rowIdx := 0
	for _, group := range groups {
		for _, row := range group {
			if err := w.schema.ValidateRow(row, rowIdx); err != nil {
				return nil, err
			}
			rowIdx++
		}
	}

	return w.assemble(groups)
}

// partition splits rows into row groups of the configured size. Without a
// configured size it returns one group holding all rows, even when empty.
func (w *Writer) partition(rows []schema.Row) [][]schema.Row {
	if w.rowGroupSize <= 0 {
		return [][]schema.Row{rows}
	}

	groups := make([][]schema.Row, 0, (len(rows)+w.rowGroupSize-1)/w.rowGroupSize)
	for start := 0; start < len(rows); start += w.rowGroupSize {
		end := start + w.rowGroupSize
		if end > len(rows) {
			end = len(rows)
		}
		groups = append(groups, rows[start:end])
	}

	return groups
}

// assemble performs the sequential encode: header magic, then per group
// and per column a page header plus plain data, then the footer metadata,
// its length and the trailing magic.
//
// The cumulative byte offset is recorded as each chunk's data page offset
// before the chunk's bytes are appended; this is the property format
// readers depend on to seek directly to column data.
func (w *Writer) assemble(groups [][]schema.Row) ([]byte, error) {
	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	buf.MustWrite([]byte(format.Magic))

	totalRows := int64(0)
	rowIdx := 0
	rowGroupBlocks := make([][]byte, 0, len(groups))

	for _, group := range groups {
		groupStart := buf.Len()
		chunkBlocks := make([][]byte, 0, w.schema.Len())

		for _, col := range w.schema.Columns {
			values := columnValues(group, col.Name)

			enc := encoding.NewPlainEncoder(w.engine)
			if err := enc.EncodeColumn(values, col.Type, col.Name, rowIdx); err != nil {
				enc.Finish()
				return nil, err
			}

			header, err := meta.PageHeader{
				UncompressedSize: int32(enc.Len()),
				CompressedSize:   int32(enc.Len()),
				NumValues:        int32(len(values)),
			}.Encode(w.engine)
			if err != nil {
				enc.Finish()
				return nil, err
			}

			// The chunk's offset is the file position of its page header's
			// first byte, captured before anything is appended.
			chunk := meta.ColumnChunk{
				Type:           col.Type,
				PathInSchema:   []string{col.Name},
				NumValues:      int64(len(values)),
				TotalSize:      int64(len(header) + enc.Len()),
				DataPageOffset: int64(buf.Len()),
			}
			block, err := chunk.Encode(w.engine)
			if err != nil {
				enc.Finish()
				return nil, err
			}
			chunkBlocks = append(chunkBlocks, block)

			buf.MustWrite(header)
			buf.MustWrite(enc.Bytes())
			enc.Finish()
		}

		rowGroupBlock, err := meta.RowGroup{
			Columns:       chunkBlocks,
			TotalByteSize: int64(buf.Len() - groupStart),
			NumRows:       int64(len(group)),
		}.Encode(w.engine)
		if err != nil {
			return nil, err
		}
		rowGroupBlocks = append(rowGroupBlocks, rowGroupBlock)

		totalRows += int64(len(group))
		rowIdx += len(group)
	}

	schemaBlocks, err := w.encodeSchemaElements()
	if err != nil {
		return nil, err
	}

	footer, err := meta.FileMetaData{
		Schema:    schemaBlocks,
		NumRows:   totalRows,
		RowGroups: rowGroupBlocks,
		CreatedBy: w.createdBy,
	}.Encode(w.engine)
	if err != nil {
		return nil, err
	}

	buf.MustWrite(footer)
	buf.B = w.engine.AppendUint32(buf.B, uint32(len(footer)))
	buf.MustWrite([]byte(format.Magic))

	return buf.CopyBytes(), nil
}

// encodeSchemaElements builds the flat schema element list: the unnamed
// root carrying the column count, then one REQUIRED leaf per column in
// schema order.
func (w *Writer) encodeSchemaElements() ([][]byte, error) {
	blocks := make([][]byte, 0, w.schema.Len()+1)

	root, err := meta.Root(int32(w.schema.Len())).Encode(w.engine)
	if err != nil {
		return nil, fmt.Errorf("encode root schema element: %w", err)
	}
	blocks = append(blocks, root)

	for _, col := range w.schema.Columns {
		leaf, err := meta.Leaf(col.Name, col.Type).Encode(w.engine)
		if err != nil {
			return nil, fmt.Errorf("encode schema element %q: %w", col.Name, err)
		}
		blocks = append(blocks, leaf)
	}

	return blocks, nil
}

// columnValues extracts one column's values across a group's rows, in row
// order. Rows are pre-validated by Encode and EncodeGroups, so lookups
// here always hit.
func columnValues(group []schema.Row, name string) []any {
	values := make([]any, 0, len(group))
	for _, row := range group {
		values = append(values, row[name])
	}

	return values
}
