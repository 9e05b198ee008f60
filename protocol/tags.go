// Package protocol implements the binary structure protocol the colfile
// metadata is framed in: typed, numbered fields appended one after another
// and closed by a single stop byte.
//
// Wire layout per field:
//
//	byte(tag) ++ int16_le(fieldID) ++ payload
//
// List fields carry an element tag and a 4-byte little-endian count before
// their elements; string payloads are a 4-byte little-endian byte length
// followed by the raw bytes; nested structs are appended as pre-serialized
// opaque byte blocks. The protocol is self-describing through field
// identifiers, so readers do not depend on field order.
package protocol

// Tag identifies the payload type of a field. Tag values are wire-visible
// and must never be renumbered.
type Tag uint8

const (
	TagStop   Tag = 0  // end of a struct's fields
	TagBool   Tag = 2  // single byte, 1 or 0
	TagByte   Tag = 3  // single signed byte
	TagDouble Tag = 4  // IEEE-754 binary64, little-endian
	TagI16    Tag = 6  // int16, little-endian
	TagI32    Tag = 8  // int32, little-endian
	TagI64    Tag = 10 // int64, little-endian
	TagString Tag = 11 // int32_le length prefix + raw bytes
	TagStruct Tag = 12 // pre-serialized struct bytes, terminated by TagStop
	TagList   Tag = 15 // element tag + int32_le count + elements
)

func (t Tag) String() string {
	switch t {
	case TagStop:
		return "STOP"
	case TagBool:
		return "BOOL"
	case TagByte:
		return "BYTE"
	case TagDouble:
		return "DOUBLE"
	case TagI16:
		return "I16"
	case TagI32:
		return "I32"
	case TagI64:
		return "I64"
	case TagString:
		return "STRING"
	case TagStruct:
		return "STRUCT"
	case TagList:
		return "LIST"
	default:
		return "Unknown"
	}
}
