package file

// Test-side reader for the structure protocol, used to verify the
// assembled output against the metadata it records. Parses one struct
// into a field-id map; nested structs and lists become nested maps and
// slices.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colfile/endian"
	"github.com/arloliu/colfile/format"
	"github.com/arloliu/colfile/protocol"
)

type structVal map[int16]any

type blockReader struct {
	t    *testing.T
	data []byte
	pos  int
}

func (r *blockReader) u8() byte {
	b := r.data[r.pos]
	r.pos++

	return b
}

func (r *blockReader) u16() uint16 {
	v := endian.GetLittleEndianEngine().Uint16(r.data[r.pos:])
	r.pos += 2

	return v
}

func (r *blockReader) u32() uint32 {
	v := endian.GetLittleEndianEngine().Uint32(r.data[r.pos:])
	r.pos += 4

	return v
}

func (r *blockReader) u64() uint64 {
	v := endian.GetLittleEndianEngine().Uint64(r.data[r.pos:])
	r.pos += 8

	return v
}

func (r *blockReader) readStruct() structVal {
	out := structVal{}
	for {
		tag := protocol.Tag(r.u8())
		if tag == protocol.TagStop {
			return out
		}

		id := int16(r.u16())
		out[id] = r.readValue(tag)
	}
}

func (r *blockReader) readValue(tag protocol.Tag) any {
	switch tag {
	case protocol.TagBool:
		return r.u8() == 1
	case protocol.TagI32:
		return int32(r.u32())
	case protocol.TagI64:
		return int64(r.u64())
	case protocol.TagDouble:
		return math.Float64frombits(r.u64())
	case protocol.TagString:
		n := int(r.u32())
		s := string(r.data[r.pos : r.pos+n])
		r.pos += n

		return s
	case protocol.TagStruct:
		return r.readStruct()
	case protocol.TagList:
		elemTag := protocol.Tag(r.u8())
		n := int(r.u32())
		items := make([]any, 0, n)
		for i := 0; i < n; i++ {
			items = append(items, r.readValue(elemTag))
		}

		return items
	default:
		r.t.Fatalf("unexpected tag %d at offset %d", tag, r.pos-3)
		return nil
	}
}

// parseFooter validates the magic delimiters and footer length field, then
// parses the file metadata struct.
func parseFooter(t *testing.T, data []byte) structVal {
	t.Helper()

	require.GreaterOrEqual(t, len(data), 2*len(format.Magic)+FooterLengthSize)
	require.Equal(t, []byte(format.Magic), data[:4])
	require.Equal(t, []byte(format.Magic), data[len(data)-4:])

	footerLen := int(endian.GetLittleEndianEngine().Uint32(data[len(data)-8 : len(data)-4]))
	start := len(data) - 8 - footerLen
	require.GreaterOrEqual(t, start, 4)

	r := &blockReader{t: t, data: data[start : start+footerLen]}
	fm := r.readStruct()
	require.Equal(t, footerLen, r.pos, "footer length must cover exactly the metadata struct")

	return fm
}

// rowGroups extracts the parsed row group structs from a parsed footer.
func rowGroups(t *testing.T, fm structVal) []structVal {
	t.Helper()

	raw, ok := fm[4].([]any)
	require.True(t, ok, "footer must carry a row group list")

	groups := make([]structVal, 0, len(raw))
	for _, g := range raw {
		groups = append(groups, g.(structVal))
	}

	return groups
}

// columnChunks extracts the parsed column chunk structs of one row group.
func columnChunks(t *testing.T, group structVal) []structVal {
	t.Helper()

	raw, ok := group[1].([]any)
	require.True(t, ok, "row group must carry a column chunk list")

	chunks := make([]structVal, 0, len(raw))
	for _, c := range raw {
		chunks = append(chunks, c.(structVal))
	}

	return chunks
}
