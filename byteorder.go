package fixbin

import (
	"encoding/binary"
	"sync"
	"unsafe"
)

var (
	// LE composes and emits bytes least-significant-first.
	LE = binary.LittleEndian
	// BE composes and emits bytes most-significant-first.
	BE = binary.BigEndian
	// Order is the byte order used when no explicit order is given.
	Order binary.ByteOrder = LE
)

// Uint is the set of value types this codec works on. Each type fixes the
// byte width of every operation on it: 2, 4 or 8 bytes.
type Uint interface {
	uint16 | uint32 | uint64
}

// Width reports the encoded size of T in bytes.
func Width[T Uint]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

var nativeOrder = sync.OnceValue(func() binary.ByteOrder {
	// Store a sentinel through the platform layout and look at the low
	// address. 0x0102 starts with 0x02 on little-endian machines.
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 0x0102)
	if b[0] == 0x02 {
		return LE
	}
	return BE
})

// NativeOrder reports the byte order of the executing machine as one of LE or
// BE. The probe runs once; subsequent calls return the cached answer.
func NativeOrder() binary.ByteOrder {
	return nativeOrder()
}

// NativeIsLittle reports whether the executing machine is little-endian.
func NativeIsLittle() bool { return NativeOrder() == LE }

// NativeIsBig reports whether the executing machine is big-endian.
func NativeIsBig() bool { return NativeOrder() == BE }
