// Package meta builds the serialized metadata structures of the colfile
// format: schema elements, page headers, column chunk metadata, row group
// metadata and the file metadata footer.
//
// Each builder produces an opaque, stop-terminated byte block through
// protocol.StructWriter. Blocks nest by value: a parent struct embeds a
// child's already-serialized bytes, so byte offsets recorded in metadata
// are stable the moment a block is produced.
//
// Field identifiers are wire-visible and fixed; fields are emitted in
// ascending identifier order.
package meta

import (
	"fmt"

	"github.com/arloliu/colfile/endian"
	"github.com/arloliu/colfile/errs"
	"github.com/arloliu/colfile/format"
	"github.com/arloliu/colfile/protocol"
)

// Field identifiers of the SchemaElement struct.
const (
	schemaElementTypeID        = 1
	schemaElementRepetitionID  = 3
	schemaElementNameID        = 4
	schemaElementNumChildrenID = 5
)

// Field identifiers of the PageHeader struct and its nested data page
// header.
const (
	pageHeaderTypeID             = 1
	pageHeaderUncompressedSizeID = 2
	pageHeaderCompressedSizeID   = 3
	pageHeaderDataHeaderID       = 5

	dataPageNumValuesID        = 1
	dataPageEncodingID         = 2
	dataPageDefLevelEncodingID = 3
	dataPageRepLevelEncodingID = 4
)

// Field identifiers of the column chunk metadata struct.
const (
	columnTypeID             = 1
	columnEncodingsID        = 2
	columnPathInSchemaID     = 3
	columnCodecID            = 4
	columnNumValuesID        = 5
	columnUncompressedSizeID = 6
	columnCompressedSizeID   = 7
	columnDataPageOffsetID   = 9
)

// Field identifiers of the RowGroup struct.
const (
	rowGroupColumnsID       = 1
	rowGroupTotalByteSizeID = 2
	rowGroupNumRowsID       = 3
)

// Field identifiers of the FileMetaData struct.
const (
	fileMetaVersionID   = 1
	fileMetaSchemaID    = 2
	fileMetaNumRowsID   = 3
	fileMetaRowGroupsID = 4
	fileMetaCreatedByID = 6
)

// SchemaElement describes one element of the flat schema tree: the unnamed
// root carrying the column count, or one leaf per column.
type SchemaElement struct {
	// Name is the column name; empty for the root element.
	Name string
	// Type is the leaf's logical type; ignored for the root.
	Type format.LogicalType
	// Repetition is the leaf's repetition kind; ignored for the root.
	Repetition format.Repetition
	// NumChildren is the column count for the root, 0 for leaves.
	NumChildren int32
	// Root marks the unnamed root element, which omits type and repetition.
	Root bool
}

// Root builds the root schema element for a schema of numColumns columns.
func Root(numColumns int32) SchemaElement {
	return SchemaElement{NumChildren: numColumns, Root: true}
}

// Leaf builds the schema element for one REQUIRED column.
func Leaf(name string, typ format.LogicalType) SchemaElement {
	return SchemaElement{Name: name, Type: typ, Repetition: format.RepetitionRequired}
}

// Encode serializes the schema element.
func (e SchemaElement) Encode(engine endian.EndianEngine) ([]byte, error) {
	if e.NumChildren < 0 {
		return nil, fmt.Errorf("%w: numChildren must be non-negative, got %d", errs.ErrValue, e.NumChildren)
	}
	if !e.Root && !e.Type.Valid() {
		return nil, fmt.Errorf("%w: schema element %q has unsupported type %d",
			errs.ErrUnsupportedFeature, e.Name, int32(e.Type))
	}

	w := protocol.NewStructWriter(engine)
	if !e.Root {
		w.WriteI32Field(schemaElementTypeID, int32(e.Type))
		w.WriteI32Field(schemaElementRepetitionID, int32(e.Repetition))
	}
	if e.Name != "" {
		w.WriteStringField(schemaElementNameID, e.Name)
	}
	w.WriteI32Field(schemaElementNumChildrenID, e.NumChildren)
	w.WriteStop()

	return w.Finish(), nil
}

// PageHeader describes one data page: its sizes and the value count and
// encodings declared by the nested data page header.
//
// The three encoding fields of the nested header (values, definition
// levels, repetition levels) are all fixed to PLAIN; the format requires
// the three fields structurally even though this writer never makes them
// differ.
type PageHeader struct {
	// UncompressedSize is the byte length of the page data.
	UncompressedSize int32
	// CompressedSize equals UncompressedSize; no compression is applied.
	CompressedSize int32
	// NumValues is the number of values in the page.
	NumValues int32
}

// Encode serializes the page header with its nested data page header.
func (h PageHeader) Encode(engine endian.EndianEngine) ([]byte, error) {
	if h.UncompressedSize < 0 {
		return nil, fmt.Errorf("%w: uncompressedSize must be non-negative, got %d", errs.ErrValue, h.UncompressedSize)
	}
	if h.CompressedSize < 0 {
		return nil, fmt.Errorf("%w: compressedSize must be non-negative, got %d", errs.ErrValue, h.CompressedSize)
	}
	if h.NumValues < 0 {
		return nil, fmt.Errorf("%w: numValues must be non-negative, got %d", errs.ErrValue, h.NumValues)
	}

	dw := protocol.NewStructWriter(engine)
	dw.WriteI32Field(dataPageNumValuesID, h.NumValues)
	dw.WriteI32Field(dataPageEncodingID, int32(format.EncodingPlain))
	dw.WriteI32Field(dataPageDefLevelEncodingID, int32(format.EncodingPlain))
	dw.WriteI32Field(dataPageRepLevelEncodingID, int32(format.EncodingPlain))
	dw.WriteStop()

	w := protocol.NewStructWriter(engine)
	w.WriteI32Field(pageHeaderTypeID, int32(format.PageTypeData))
	w.WriteI32Field(pageHeaderUncompressedSizeID, h.UncompressedSize)
	w.WriteI32Field(pageHeaderCompressedSizeID, h.CompressedSize)
	w.WriteStructField(pageHeaderDataHeaderID, dw.Finish())
	w.WriteStop()

	return w.Finish(), nil
}

// ColumnChunk describes one column's portion of a row group: its type,
// path, value count, sizes and the absolute byte offset of its page header
// in the assembled file.
type ColumnChunk struct {
	// Type is the column's logical type.
	Type format.LogicalType
	// PathInSchema is the column's path from the root; flat schemas carry
	// a single element, the column name.
	PathInSchema []string
	// NumValues is the number of values in the chunk.
	NumValues int64
	// TotalSize is the chunk's byte length; recorded as both the
	// uncompressed and the compressed size since no codec is applied.
	TotalSize int64
	// DataPageOffset is the absolute byte offset of the first byte of the
	// chunk's page header within the final output.
	DataPageOffset int64
}

// Encode serializes the column chunk metadata.
func (c ColumnChunk) Encode(engine endian.EndianEngine) ([]byte, error) {
	if !c.Type.Valid() {
		return nil, fmt.Errorf("%w: column chunk has unsupported type %d", errs.ErrUnsupportedFeature, int32(c.Type))
	}
	if len(c.PathInSchema) == 0 {
		return nil, fmt.Errorf("%w: pathInSchema must not be empty", errs.ErrSchema)
	}
	if c.NumValues < 0 {
		return nil, fmt.Errorf("%w: numValues must be non-negative, got %d", errs.ErrValue, c.NumValues)
	}
	if c.TotalSize < 0 {
		return nil, fmt.Errorf("%w: totalSize must be non-negative, got %d", errs.ErrValue, c.TotalSize)
	}
	if c.DataPageOffset < 0 {
		return nil, fmt.Errorf("%w: dataPageOffset must be non-negative, got %d", errs.ErrValue, c.DataPageOffset)
	}

	w := protocol.NewStructWriter(engine)
	w.WriteI32Field(columnTypeID, int32(c.Type))
	w.WriteI32ListField(columnEncodingsID, []int32{int32(format.EncodingPlain)})
	w.WriteStringListField(columnPathInSchemaID, c.PathInSchema)
	w.WriteI32Field(columnCodecID, int32(format.CodecUncompressed))
	w.WriteI64Field(columnNumValuesID, c.NumValues)
	w.WriteI64Field(columnUncompressedSizeID, c.TotalSize)
	w.WriteI64Field(columnCompressedSizeID, c.TotalSize)
	w.WriteI64Field(columnDataPageOffsetID, c.DataPageOffset)
	w.WriteStop()

	return w.Finish(), nil
}

// RowGroup describes one horizontal partition of rows: its column chunk
// blocks, total encoded byte size and row count.
type RowGroup struct {
	// Columns holds the serialized column chunk blocks, in schema order.
	Columns [][]byte
	// TotalByteSize is the total encoded size of the group's pages.
	TotalByteSize int64
	// NumRows is the number of rows in the group.
	NumRows int64
}

// Encode serializes the row group metadata.
func (g RowGroup) Encode(engine endian.EndianEngine) ([]byte, error) {
	if g.TotalByteSize < 0 {
		return nil, fmt.Errorf("%w: totalByteSize must be non-negative, got %d", errs.ErrValue, g.TotalByteSize)
	}
	if g.NumRows < 0 {
		return nil, fmt.Errorf("%w: numRows must be non-negative, got %d", errs.ErrValue, g.NumRows)
	}

	w := protocol.NewStructWriter(engine)
	w.WriteStructListField(rowGroupColumnsID, g.Columns)
	w.WriteI64Field(rowGroupTotalByteSizeID, g.TotalByteSize)
	w.WriteI64Field(rowGroupNumRowsID, g.NumRows)
	w.WriteStop()

	return w.Finish(), nil
}

// FileMetaData describes the whole file: format version, schema elements,
// total row count, row groups and the creator string.
type FileMetaData struct {
	// Schema holds the serialized schema element blocks, root first.
	Schema [][]byte
	// NumRows is the total row count across all row groups.
	NumRows int64
	// RowGroups holds the serialized row group blocks, in file order.
	RowGroups [][]byte
	// CreatedBy identifies the writer that produced the file.
	CreatedBy string
}

// Encode serializes the file metadata footer block.
func (m FileMetaData) Encode(engine endian.EndianEngine) ([]byte, error) {
	if len(m.Schema) == 0 {
		return nil, fmt.Errorf("%w: file metadata requires at least the root schema element", errs.ErrSchema)
	}
	if m.NumRows < 0 {
		return nil, fmt.Errorf("%w: numRows must be non-negative, got %d", errs.ErrValue, m.NumRows)
	}

	w := protocol.NewStructWriter(engine)
	w.WriteI32Field(fileMetaVersionID, format.Version)
	w.WriteStructListField(fileMetaSchemaID, m.Schema)
	w.WriteI64Field(fileMetaNumRowsID, m.NumRows)
	w.WriteStructListField(fileMetaRowGroupsID, m.RowGroups)
	w.WriteStringField(fileMetaCreatedByID, m.CreatedBy)
	w.WriteStop()

	return w.Finish(), nil
}
