// Package format defines the enumerated constants of the colfile physical
// format: logical column types, repetition kinds, value encodings,
// compression codecs and page types, together with the fixed magic bytes
// and format version.
//
// The numeric values of these constants are wire-visible. They are written
// verbatim into the file's metadata structures and must never be renumbered.
package format

// Magic is the fixed 4-byte sequence marking both the start and the end of
// an encoded file.
const Magic = "PAR1"

// Version is the format version recorded in the file metadata.
const Version = 1

type (
	// LogicalType identifies the physical representation of a column's values.
	LogicalType int32

	// Repetition declares how many times a schema element may occur.
	Repetition int32

	// Encoding identifies how column values are laid out inside a page.
	Encoding int32

	// Codec identifies the compression applied to a column chunk.
	Codec int32

	// PageType identifies the kind of a page.
	PageType int32
)

const (
	TypeBoolean   LogicalType = 0 // TypeBoolean is a single-byte true/false value.
	TypeInt32     LogicalType = 1 // TypeInt32 is a 32-bit signed little-endian integer.
	TypeInt64     LogicalType = 2 // TypeInt64 is a 64-bit signed little-endian integer.
	TypeFloat     LogicalType = 4 // TypeFloat is an IEEE-754 binary32 value.
	TypeDouble    LogicalType = 5 // TypeDouble is an IEEE-754 binary64 value.
	TypeByteArray LogicalType = 6 // TypeByteArray is a length-prefixed byte sequence.
)

const (
	RepetitionRequired Repetition = 0 // Exactly one value per row.
	RepetitionOptional Repetition = 1 // Zero or one value per row.
	RepetitionRepeated Repetition = 2 // Zero or more values per row.
)

// EncodingPlain is the only supported value encoding: fixed-width values
// written back to back, byte arrays with a 4-byte length prefix.
const EncodingPlain Encoding = 0

// CodecUncompressed is the only supported codec; compressed and
// uncompressed sizes are always equal.
const CodecUncompressed Codec = 0

// PageTypeData is the only page type this writer emits.
const PageTypeData PageType = 0

// Valid reports whether t is one of the supported logical types.
func (t LogicalType) Valid() bool {
	switch t {
	case TypeBoolean, TypeInt32, TypeInt64, TypeFloat, TypeDouble, TypeByteArray:
		return true
	default:
		return false
	}
}

func (t LogicalType) String() string {
	switch t {
	case TypeBoolean:
		return "BOOLEAN"
	case TypeInt32:
		return "INT32"
	case TypeInt64:
		return "INT64"
	case TypeFloat:
		return "FLOAT"
	case TypeDouble:
		return "DOUBLE"
	case TypeByteArray:
		return "BYTE_ARRAY"
	default:
		return "Unknown"
	}
}

func (r Repetition) String() string {
	switch r {
	case RepetitionRequired:
		return "REQUIRED"
	case RepetitionOptional:
		return "OPTIONAL"
	case RepetitionRepeated:
		return "REPEATED"
	default:
		return "Unknown"
	}
}

func (e Encoding) String() string {
	if e == EncodingPlain {
		return "PLAIN"
	}

	return "Unknown"
}

func (c Codec) String() string {
	if c == CodecUncompressed {
		return "UNCOMPRESSED"
	}

	return "Unknown"
}
