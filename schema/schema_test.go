package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colfile/errs"
	"github.com/arloliu/colfile/format"
)

func testSchema() Schema {
	return New(
		Column{Name: "id", Type: format.TypeInt32},
		Column{Name: "name", Type: format.TypeByteArray},
	)
}

func TestSchemaValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		require.NoError(t, testSchema().Validate())
	})

	t.Run("AllTypes", func(t *testing.T) {
		s := New(
			Column{Name: "b", Type: format.TypeBoolean},
			Column{Name: "i32", Type: format.TypeInt32},
			Column{Name: "i64", Type: format.TypeInt64},
			Column{Name: "f", Type: format.TypeFloat},
			Column{Name: "d", Type: format.TypeDouble},
			Column{Name: "s", Type: format.TypeByteArray},
		)
		require.NoError(t, s.Validate())
		require.Equal(t, 6, s.Len())
	})

	t.Run("Empty", func(t *testing.T) {
		err := New().Validate()
		require.ErrorIs(t, err, errs.ErrSchema)
	})

	t.Run("UnnamedColumn", func(t *testing.T) {
		s := New(Column{Name: "", Type: format.TypeInt32})
		err := s.Validate()
		require.ErrorIs(t, err, errs.ErrSchema)
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		s := New(Column{Name: "x", Type: format.LogicalType(99)})
		err := s.Validate()
		require.ErrorIs(t, err, errs.ErrUnsupportedFeature)

		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "x", verr.Column)
		require.Equal(t, -1, verr.Row)
	})

	t.Run("DuplicateColumnName", func(t *testing.T) {
		s := New(
			Column{Name: "id", Type: format.TypeInt32},
			Column{Name: "id", Type: format.TypeInt64},
		)
		err := s.Validate()
		require.ErrorIs(t, err, errs.ErrSchema)
	})
}

func TestSchemaValidateRow(t *testing.T) {
	s := testSchema()

	t.Run("Valid", func(t *testing.T) {
		require.NoError(t, s.ValidateRow(Row{"id": int32(1), "name": "Alice"}, 0))
	})

	t.Run("MissingValue", func(t *testing.T) {
		err := s.ValidateRow(Row{"id": int32(1)}, 0)
		require.ErrorIs(t, err, errs.ErrMissingValue)

		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "name", verr.Column)
		require.Equal(t, 0, verr.Row)
	})

	t.Run("WrongType", func(t *testing.T) {
		err := s.ValidateRow(Row{"id": "one", "name": "Alice"}, 3)
		require.ErrorIs(t, err, errs.ErrType)

		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "id", verr.Column)
		require.Equal(t, 3, verr.Row)
	})

	t.Run("UndeclaredColumn", func(t *testing.T) {
		err := s.ValidateRow(Row{"id": int32(1), "name": "Alice", "extra": true}, 0)
		require.ErrorIs(t, err, errs.ErrSchema)

		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "extra", verr.Column)
	})
}
