package fixbin

import "io"

// BytesReader reads from a caller-provided byte slice. It is the in-memory
// source endpoint for Reader: NewReader recognizes it and skips bufio
// entirely, since the data is already resident.
//
// The zero value is an empty reader. BytesReader never copies or grows b;
// the caller keeps ownership of the slice.
type BytesReader struct {
	buf []byte
	off int
}

// NewBytesReader returns a BytesReader positioned at the start of b.
func NewBytesReader(b []byte) *BytesReader {
	return &BytesReader{buf: b}
}

// Read implements io.Reader.
func (r *BytesReader) Read(p []byte) (int, error) {
	if r.off >= len(r.buf) {
		return 0, io.EOF
	}
	n := copy(p, r.buf[r.off:])
	r.off += n
	return n, nil
}

// ReadByte implements io.ByteReader.
func (r *BytesReader) ReadByte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, io.EOF
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// WriteTo implements io.WriterTo, handing the unread remainder to w in a
// single write.
func (r *BytesReader) WriteTo(w io.Writer) (int64, error) {
	if r.off >= len(r.buf) {
		return 0, nil
	}
	b := r.buf[r.off:]
	n, err := w.Write(b)
	if n > len(b) {
		return int64(n), ErrInvalidWriteCount
	}
	r.off += n
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// Seek implements io.Seeker. Seeking past the end is allowed; the next read
// reports io.EOF.
func (r *BytesReader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(r.off) + offset
	case io.SeekEnd:
		abs = int64(len(r.buf)) + offset
	default:
		return 0, ErrInvalidWhence
	}
	if abs < 0 {
		return 0, ErrInvalidSeek
	}
	r.off = int(abs)
	return abs, nil
}

// Close implements io.Closer. It never fails and does not rewind the reader.
func (r *BytesReader) Close() error { return nil }

// Reset rewinds the reader to the start of the slice for reuse.
func (r *BytesReader) Reset() { r.off = 0 }

// Offset returns the current read position within the slice.
func (r *BytesReader) Offset() int { return r.off }

// Size returns the total length of the underlying slice.
func (r *BytesReader) Size() int { return len(r.buf) }

// Available returns the number of unread bytes.
func (r *BytesReader) Available() int {
	if n := len(r.buf) - r.off; n > 0 {
		return n
	}
	return 0
}
