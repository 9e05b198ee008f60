package colfile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colfile/errs"
)

func testSchema() Schema {
	return NewSchema(
		Column{Name: "id", Type: TypeInt32},
		Column{Name: "name", Type: TypeByteArray},
	)
}

func testRows() []Row {
	return []Row{
		{"id": int32(1), "name": "Alice"},
		{"id": int32(2), "name": "Bob"},
		{"id": int32(3), "name": "Charlie"},
	}
}

func TestEncode(t *testing.T) {
	t.Run("MagicDelimited", func(t *testing.T) {
		data, err := Encode(testSchema(), testRows())
		require.NoError(t, err)
		require.Greater(t, len(data), 8)
		require.Equal(t, "PAR1", string(data[:4]))
		require.Equal(t, "PAR1", string(data[len(data)-4:]))
	})

	t.Run("WithOptions", func(t *testing.T) {
		data, err := Encode(testSchema(), testRows(),
			WithRowGroupSize(2),
			WithCreatedBy("example 1.0"))
		require.NoError(t, err)
		require.Contains(t, string(data), "example 1.0")
	})

	t.Run("EmptyRows", func(t *testing.T) {
		data, err := Encode(testSchema(), nil)
		require.NoError(t, err)
		require.Equal(t, "PAR1", string(data[:4]))
		require.Equal(t, "PAR1", string(data[len(data)-4:]))
	})

	t.Run("SchemaError", func(t *testing.T) {
		_, err := Encode(NewSchema(), testRows())
		require.ErrorIs(t, err, errs.ErrSchema)
	})

	t.Run("RowError", func(t *testing.T) {
		_, err := Encode(testSchema(), []Row{{"id": int32(1)}})
		require.ErrorIs(t, err, errs.ErrMissingValue)
	})
}

func TestEncodeGroups(t *testing.T) {
	rows := testRows()
	data, err := EncodeGroups(testSchema(), [][]Row{rows[:1], rows[1:]})
	require.NoError(t, err)
	require.Equal(t, "PAR1", string(data[:4]))
	require.Equal(t, "PAR1", string(data[len(data)-4:]))
}

func TestFingerprint(t *testing.T) {
	first, err := Encode(testSchema(), testRows())
	require.NoError(t, err)
	second, err := Encode(testSchema(), testRows())
	require.NoError(t, err)

	// Identical inputs produce identical outputs and fingerprints.
	require.Equal(t, Fingerprint(first), Fingerprint(second))

	other, err := Encode(testSchema(), testRows()[:2])
	require.NoError(t, err)
	require.NotEqual(t, Fingerprint(first), Fingerprint(other))
}
