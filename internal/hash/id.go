// Package hash provides the xxHash64 primitive used to identify arena
// owners without allocating string keys.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// PointerID derives a stable identity for an arena owner from its address,
// used by internal/arena to tag allocations without comparing interface
// values of unknown dynamic type directly.
func PointerID(ptr uintptr) uint64 {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(ptr >> (8 * i))
	}
	return xxhash.Sum64(buf[:])
}
