// Package endian provides byte order utilities for binary encoding.
//
// This package combines the ByteOrder and AppendByteOrder interfaces from
// Go's standard encoding/binary package into a unified EndianEngine
// interface, enabling both in-place and append-style encoding through a
// single value.
//
// The colfile output format is little-endian throughout, so most callers
// only ever need GetLittleEndianEngine():
//
//	import "github.com/arloliu/colfile/endian"
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, length)
//
// Using the append form avoids the temporary buffer and copy that the plain
// ByteOrder interface requires:
//
//	// Using EndianEngine (recommended)
//	buf = engine.AppendUint64(buf, value)
//
//	// Using ByteOrder only
//	tmp := make([]byte, 8)
//	engine.PutUint64(tmp, value)
//	buf = append(buf, tmp...) // extra allocation
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless, and safe
// for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian
// from the standard library, making it fully compatible with existing Go
// code while providing access to both put and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
//
// The colfile physical format mandates little-endian for every fixed-width
// integer and float it writes, so this is the engine used by all encoders
// in this module.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
