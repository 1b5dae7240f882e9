package fixbin

import (
	"encoding"
	"io"
)

// Sizer reports the binary size of a value before it is encoded, letting
// callers allocate destination buffers exactly once.
type Sizer interface {
	// Size returns the encoded size in bytes.
	Size() int
}

// Marshaler is the encoding side of a codec: the standard allocating form,
// the streaming form, and a zero-allocation form into a caller buffer.
type Marshaler interface {
	encoding.BinaryMarshaler // MarshalBinary() ([]byte, error)
	io.WriterTo              // WriteTo(w io.Writer) (int64, error)

	// MarshalTo encodes into buf, returning io.ErrShortBuffer when buf
	// cannot hold the full encoding.
	MarshalTo(buf []byte) (int, error)
}

// Unmarshaler is the decoding side of a codec.
type Unmarshaler interface {
	encoding.BinaryUnmarshaler // UnmarshalBinary(data []byte) error
	io.ReaderFrom              // ReadFrom(r io.Reader) (int64, error)
}

// Codec is a complete, self-sizing binary encoder/decoder. Record implements
// it for any fixed-layout struct; callers can implement it for their own
// types and lean on the Via helpers for the boilerplate methods.
type Codec interface {
	Sizer
	Marshaler
	Unmarshaler
}
