package fixbin

import "io"

// BytesWriter writes into a caller-provided byte slice without ever growing
// it. A write that does not fit stores what it can and reports
// io.ErrShortWrite. It is the in-memory sink endpoint for Writer: NewWriter
// recognizes it and skips bufio entirely.
//
// The slice is used up to its full capacity, not just its length.
type BytesWriter struct {
	buf []byte
	off int
}

// NewBytesWriter returns a BytesWriter over p, extended to its capacity.
func NewBytesWriter(p []byte) *BytesWriter {
	return &BytesWriter{buf: p[:cap(p)]}
}

// Write implements io.Writer.
func (w *BytesWriter) Write(p []byte) (int, error) {
	if w.off >= len(w.buf) {
		return 0, io.ErrShortWrite
	}
	n := copy(w.buf[w.off:], p)
	w.off += n
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// WriteByte implements io.ByteWriter.
func (w *BytesWriter) WriteByte(c byte) error {
	if w.off >= len(w.buf) {
		return io.ErrShortWrite
	}
	w.buf[w.off] = c
	w.off++
	return nil
}

// WriteString implements io.StringWriter.
func (w *BytesWriter) WriteString(s string) (int, error) {
	if w.off >= len(w.buf) {
		return 0, io.ErrShortWrite
	}
	n := copy(w.buf[w.off:], s)
	w.off += n
	if n < len(s) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// ReadFrom implements io.ReaderFrom. It reads until the slice is full or r
// reports EOF, whichever comes first, and returns the number of bytes
// staged. Only a call on an already full writer reports io.ErrShortWrite.
func (w *BytesWriter) ReadFrom(r io.Reader) (int64, error) {
	if w.off >= len(w.buf) {
		return 0, io.ErrShortWrite
	}
	var total int64
	for w.off < len(w.buf) {
		n, err := r.Read(w.buf[w.off:])
		if n < 0 {
			return total, ErrInvalidReadCount
		}
		w.off += n
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Flush implements the sink interface; the data is already in place.
func (w *BytesWriter) Flush() error { return nil }

// Close implements io.Closer. It never fails and keeps the written data.
func (w *BytesWriter) Close() error { return nil }

// Reset rewinds the writer to the start of the slice for reuse.
func (w *BytesWriter) Reset() { w.off = 0 }

// Len returns the number of bytes written so far.
func (w *BytesWriter) Len() int { return w.off }

// Size returns the total capacity of the underlying slice.
func (w *BytesWriter) Size() int { return len(w.buf) }

// Available returns the space left for writing.
func (w *BytesWriter) Available() int { return len(w.buf) - w.off }

// Bytes returns the written prefix of the slice. It is shared with the
// writer and stays valid until the next write or Reset.
func (w *BytesWriter) Bytes() []byte { return w.buf[:w.off] }
