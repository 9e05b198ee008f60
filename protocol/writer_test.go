package protocol

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colfile/endian"
)

func newTestWriter() *StructWriter {
	return NewStructWriter(endian.GetLittleEndianEngine())
}

func TestStructWriterScalarFields(t *testing.T) {
	t.Run("I32Field", func(t *testing.T) {
		w := newTestWriter()
		w.WriteI32Field(1, 42)
		require.Equal(t, []byte{byte(TagI32), 1, 0, 42, 0, 0, 0}, w.Finish())
	})

	t.Run("I32FieldNegative", func(t *testing.T) {
		w := newTestWriter()
		w.WriteI32Field(2, -1)
		require.Equal(t, []byte{byte(TagI32), 2, 0, 0xFF, 0xFF, 0xFF, 0xFF}, w.Finish())
	})

	t.Run("I64Field", func(t *testing.T) {
		w := newTestWriter()
		w.WriteI64Field(9, int64(0x0102030405060708))
		require.Equal(t, []byte{byte(TagI64), 9, 0, 8, 7, 6, 5, 4, 3, 2, 1}, w.Finish())
	})

	t.Run("BoolField", func(t *testing.T) {
		w := newTestWriter()
		w.WriteBoolField(3, true)
		w.WriteBoolField(4, false)
		require.Equal(t, []byte{byte(TagBool), 3, 0, 1, byte(TagBool), 4, 0, 0}, w.Finish())
	})

	t.Run("DoubleField", func(t *testing.T) {
		w := newTestWriter()
		w.WriteDoubleField(7, 1.5)
		got := w.Finish()
		require.Equal(t, []byte{byte(TagDouble), 7, 0}, got[:3])
		require.Equal(t, math.Float64bits(1.5), endian.GetLittleEndianEngine().Uint64(got[3:]))
	})
}

func TestStructWriterStringField(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		w := newTestWriter()
		w.WriteStringField(6, "ab")
		require.Equal(t, []byte{byte(TagString), 6, 0, 2, 0, 0, 0, 'a', 'b'}, w.Finish())
	})

	t.Run("Empty", func(t *testing.T) {
		w := newTestWriter()
		w.WriteStringField(6, "")
		require.Equal(t, []byte{byte(TagString), 6, 0, 0, 0, 0, 0}, w.Finish())
	})

	t.Run("EmbeddedZeroBytes", func(t *testing.T) {
		w := newTestWriter()
		w.WriteStringField(1, "a\x00b")
		require.Equal(t, []byte{byte(TagString), 1, 0, 3, 0, 0, 0, 'a', 0, 'b'}, w.Finish())
	})
}

func TestStructWriterStructField(t *testing.T) {
	child := newTestWriter()
	child.WriteI32Field(1, 7)
	child.WriteStop()
	childBlock := child.Finish()

	parent := newTestWriter()
	parent.WriteStructField(5, childBlock)
	parent.WriteStop()

	want := append([]byte{byte(TagStruct), 5, 0}, childBlock...)
	want = append(want, byte(TagStop))
	require.Equal(t, want, parent.Finish())
}

func TestStructWriterListFields(t *testing.T) {
	t.Run("I32List", func(t *testing.T) {
		w := newTestWriter()
		w.WriteI32ListField(2, []int32{0})
		require.Equal(t, []byte{
			byte(TagList), 2, 0, // field header
			byte(TagI32), 1, 0, 0, 0, // element tag + count
			0, 0, 0, 0, // element
		}, w.Finish())
	})

	t.Run("StringList", func(t *testing.T) {
		w := newTestWriter()
		w.WriteStringListField(3, []string{"id", "x"})
		require.Equal(t, []byte{
			byte(TagList), 3, 0,
			byte(TagString), 2, 0, 0, 0,
			2, 0, 0, 0, 'i', 'd',
			1, 0, 0, 0, 'x',
		}, w.Finish())
	})

	t.Run("StructList", func(t *testing.T) {
		blockA := []byte{byte(TagI32), 1, 0, 1, 0, 0, 0, byte(TagStop)}
		blockB := []byte{byte(TagI32), 1, 0, 2, 0, 0, 0, byte(TagStop)}

		w := newTestWriter()
		w.WriteStructListField(1, [][]byte{blockA, blockB})

		want := []byte{byte(TagList), 1, 0, byte(TagStruct), 2, 0, 0, 0}
		want = append(want, blockA...)
		want = append(want, blockB...)
		require.Equal(t, want, w.Finish())
	})

	t.Run("ElementEncoderFunc", func(t *testing.T) {
		vals := []int32{7, 8}

		w := newTestWriter()
		w.WriteListField(2, TagI32, len(vals), func(i int) {
			w.AppendRaw([]byte{byte(vals[i]), 0, 0, 0})
		})

		require.Equal(t, []byte{
			byte(TagList), 2, 0,
			byte(TagI32), 2, 0, 0, 0,
			7, 0, 0, 0,
			8, 0, 0, 0,
		}, w.Finish())
	})

	t.Run("EmptyList", func(t *testing.T) {
		w := newTestWriter()
		w.WriteStructListField(4, nil)
		require.Equal(t, []byte{byte(TagList), 4, 0, byte(TagStruct), 0, 0, 0, 0}, w.Finish())
	})
}

func TestStructWriterStop(t *testing.T) {
	w := newTestWriter()
	w.WriteStop()
	require.Equal(t, []byte{0}, w.Finish())
}

func TestStructWriterDuplicateFieldID(t *testing.T) {
	w := newTestWriter()
	w.WriteI32Field(1, 1)
	require.Panics(t, func() {
		w.WriteI64Field(1, 2)
	})
	// Drain the buffer so the pool gets it back.
	w.Finish()
}

func TestStructWriterUseAfterFinish(t *testing.T) {
	w := newTestWriter()
	w.WriteI32Field(1, 1)
	w.WriteStop()
	w.Finish()

	require.Panics(t, func() { w.WriteI32Field(2, 2) })
	require.Panics(t, func() { w.WriteStop() })
	require.Panics(t, func() { w.Bytes() })
	require.Panics(t, func() { w.Finish() })
	require.Equal(t, 0, w.Len())
}

func TestStructWriterBytesAndLen(t *testing.T) {
	w := newTestWriter()
	require.Equal(t, 0, w.Len())

	w.WriteI32Field(1, 42)
	require.Equal(t, 7, w.Len())
	require.Equal(t, []byte{byte(TagI32), 1, 0, 42, 0, 0, 0}, w.Bytes())

	w.WriteStop()
	require.Equal(t, 8, w.Len())
	w.Finish()
}
