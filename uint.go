package fixbin

import "encoding/binary"

// RawUint composes the first Width[T] bytes of b into a value of T under the
// given order.
//
// Precondition: len(b) >= Width[T]. The caller is responsible for the length;
// no check is made here. Inside this package RawUint only ever runs on chunks
// whose size the chunker has already guaranteed, or on buffers filled by a
// completed io.ReadFull. Use DecodeUint for input of unknown length.
func RawUint[T Uint](order binary.ByteOrder, b []byte) T {
	switch Width[T]() {
	case 2:
		return T(order.Uint16(b))
	case 4:
		return T(order.Uint32(b))
	default:
		return T(order.Uint64(b))
	}
}

// DecodeUint reads a single value of T from the front of b. It returns
// (0, false) when b holds fewer than Width[T] bytes; short input is an
// expected condition, not a fault. Bytes past the value width are ignored.
// b is never modified.
func DecodeUint[T Uint](order binary.ByteOrder, b []byte) (T, bool) {
	if len(b) < Width[T]() {
		return 0, false
	}
	return RawUint[T](order, b), true
}

// PutUint writes v into the first Width[T] bytes of b under the given order.
//
// Precondition: len(b) >= Width[T], as for RawUint.
func PutUint[T Uint](order binary.ByteOrder, b []byte, v T) {
	switch Width[T]() {
	case 2:
		order.PutUint16(b, uint16(v))
	case 4:
		order.PutUint32(b, uint32(v))
	default:
		order.PutUint64(b, uint64(v))
	}
}

// AppendUint appends the Width[T]-byte encoding of v to dst and returns the
// extended buffer.
func AppendUint[T Uint](order binary.ByteOrder, dst []byte, v T) []byte {
	if ap, ok := order.(binary.AppendByteOrder); ok {
		switch Width[T]() {
		case 2:
			return ap.AppendUint16(dst, uint16(v))
		case 4:
			return ap.AppendUint32(dst, uint32(v))
		default:
			return ap.AppendUint64(dst, uint64(v))
		}
	}
	var buf [8]byte
	PutUint(order, buf[:], v)
	return append(dst, buf[:Width[T]()]...)
}

// EncodeUint returns the encoding of v as a fresh slice of exactly Width[T]
// bytes. It is total: every value has a defined representation.
func EncodeUint[T Uint](order binary.ByteOrder, v T) []byte {
	b := make([]byte, Width[T]())
	PutUint(order, b, v)
	return b
}
