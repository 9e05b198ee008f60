package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given column path.
// Schema validation uses it to detect duplicate column names.
func ID(path string) uint64 {
	return xxhash.Sum64String(path)
}

// Sum computes the xxHash64 of raw encoded bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
