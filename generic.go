package fixbin

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
)

// The Via helpers bridge between the slice-based and stream-based halves of
// Codec, so a type only has to implement one half honestly. Record uses them
// for its boilerplate; external Codec implementations can do the same.

// MarshalViaWriteTo derives MarshalBinary from Size and WriteTo.
func MarshalViaWriteTo[T interface {
	Sizer
	io.WriterTo
}](v T) ([]byte, error) {
	size := v.Size()
	w := NewBytesWriter(make([]byte, size))
	n, err := v.WriteTo(w)
	if err != nil {
		return nil, err
	}
	if n < int64(size) {
		return nil, fmt.Errorf("%w: wrote %d of %d bytes", ErrShortRecord, n, size)
	}
	return w.Bytes(), nil
}

// UnmarshalViaReadFrom derives UnmarshalBinary from ReadFrom and Size. It
// rejects input shorter than the full layout and, like Record, tolerates only
// zeroed bytes after it.
func UnmarshalViaReadFrom[T interface {
	Sizer
	io.ReaderFrom
}](v T, data []byte) error {
	r := NewBytesReader(data)
	n, err := v.ReadFrom(r)
	if err != nil {
		return err
	}
	if size := v.Size(); n < int64(size) {
		return fmt.Errorf("%w: read %d of %d bytes", ErrShortRecord, n, size)
	}
	if int64(len(data)) > n {
		return zeroTail(data[n:])
	}
	return nil
}

// ReadFromViaUnmarshal derives ReadFrom from UnmarshalBinary.
//
// Not a streaming implementation: the whole reader is drained into a pooled
// buffer first, so it is unsuitable for very large inputs.
func ReadFromViaUnmarshal[T encoding.BinaryUnmarshaler](v T, r io.Reader) (int64, error) {
	buf := bytesBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bytesBufPool.Put(buf)

	n, err := buf.ReadFrom(r)
	if err != nil {
		return n, err
	}
	return n, v.UnmarshalBinary(buf.Bytes())
}

// WriteToViaMarshal derives WriteTo from MarshalBinary.
func WriteToViaMarshal[T encoding.BinaryMarshaler](v T, w io.Writer) (int64, error) {
	buf, err := v.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	if err != nil {
		return int64(n), err
	}
	if n < len(buf) {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}

// MarshalToViaWriteTo derives MarshalTo from Size and WriteTo.
func MarshalToViaWriteTo[T interface {
	Sizer
	io.WriterTo
}](v T, p []byte) (int, error) {
	size := v.Size()
	if len(p) < size {
		return 0, io.ErrShortBuffer
	}
	w := NewBytesWriter(p)
	n, err := v.WriteTo(w)
	if err != nil {
		return int(n), err
	}
	if n < int64(size) {
		return int(n), io.ErrShortWrite
	}
	return int(n), nil
}
