package fixbin

import (
	"bufio"
	"bytes"
	"io"
)

// The adapters below dress standard library readers and writers in the
// readSource and writeSink interfaces, so Reader and Writer can treat every
// supported stream the same way. Each adds only what its stdlib type lacks,
// usually a no-op Close and a position-aware Seek.

type bytesReaderAdapter struct{ *bytes.Reader }

func (r *bytesReaderAdapter) Close() error { return nil }
func (r *bytesReaderAdapter) Size() int    { return int(r.Reader.Size()) }

// bytesBufferReaderAdapter drains a bytes.Buffer while tracking the absolute
// position, which bytes.Buffer itself does not expose.
type bytesBufferReaderAdapter struct {
	*bytes.Buffer
	pos int64
}

func (r *bytesBufferReaderAdapter) Close() error { return nil }
func (r *bytesBufferReaderAdapter) Size() int    { return r.Len() }

func (r *bytesBufferReaderAdapter) Read(p []byte) (int, error) {
	n, err := r.Buffer.Read(p)
	r.pos += int64(n)
	return n, err
}

func (r *bytesBufferReaderAdapter) ReadByte() (byte, error) {
	b, err := r.Buffer.ReadByte()
	if err == nil {
		r.pos++
	}
	return b, err
}

func (r *bytesBufferReaderAdapter) WriteTo(w io.Writer) (int64, error) {
	n, err := r.Buffer.WriteTo(w)
	r.pos += n
	return n, err
}

// Seek is forward-only: a buffer consumes what it reads, so going back is
// impossible and io.SeekEnd is refused rather than guessed at. Seeking past
// the remaining data stops at the end.
func (r *bytesBufferReaderAdapter) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = r.pos + offset
	default:
		return r.pos, ErrInvalidWhence
	}
	skip := target - r.pos
	if skip < 0 {
		return r.pos, ErrNegativeSeek
	}
	if rem := int64(r.Buffer.Len()); skip > rem {
		skip = rem
	}
	r.Buffer.Next(int(skip))
	r.pos += skip
	return r.pos, nil
}

type bufioWriterAdapter struct{ *bufio.Writer }

func (w *bufioWriterAdapter) Close() error { return nil }

// bufioReaderAdapter gives a bufio.Reader a position and a Seek. seeker is
// the stream underneath the buffer; reads go through the buffer, and seeks
// outside the buffered window go to seeker and invalidate the buffer.
//
// For the seeks to land correctly the buffer must read from seeker itself,
// not from the raw stream, so that seeker's offset accounts for read-ahead.
// NewReaderSize wires it that way.
type bufioReaderAdapter struct {
	*bufio.Reader
	seeker io.ReadSeeker
	pos    int64
}

func (b *bufioReaderAdapter) Close() error { return nil }
func (b *bufioReaderAdapter) Size() int    { return b.Reader.Size() }

func (b *bufioReaderAdapter) Read(p []byte) (int, error) {
	n, err := b.Reader.Read(p)
	b.pos += int64(n)
	return n, err
}

func (b *bufioReaderAdapter) ReadByte() (byte, error) {
	c, err := b.Reader.ReadByte()
	if err == nil {
		b.pos++
	}
	return c, err
}

func (b *bufioReaderAdapter) WriteTo(w io.Writer) (int64, error) {
	n, err := b.Reader.WriteTo(w)
	b.pos += n
	return n, err
}

// Seek moves the logical read position. Targets inside the buffered window
// cost a discard; anything else seeks the underlying stream and drops the
// buffer. Without an underlying seeker only forward targets work.
func (b *bufioReaderAdapter) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = b.pos + offset
	case io.SeekEnd:
		if b.seeker == nil {
			return b.pos, ErrInvalidWhence
		}
		// End-relative targets always reposition the stream, so the
		// buffered window cannot go stale.
		pos, err := b.seeker.Seek(offset, io.SeekEnd)
		if err != nil {
			return b.pos, err
		}
		b.Reader.Reset(b.seeker)
		b.pos = pos
		return pos, nil
	default:
		return b.pos, ErrInvalidWhence
	}

	if target >= b.pos && target < b.pos+int64(b.Reader.Buffered()) {
		n, err := b.Reader.Discard(int(target - b.pos))
		b.pos += int64(n)
		return b.pos, err
	}

	if b.seeker != nil {
		pos, err := b.seeker.Seek(target, io.SeekStart)
		if err != nil {
			return b.pos, err
		}
		b.Reader.Reset(b.seeker)
		b.pos = pos
		return pos, nil
	}

	if target < b.pos {
		return b.pos, ErrNegativeSeek
	}
	_, err := Discard(b, target-b.pos)
	return b.pos, err
}

type bytesBufferWriterAdapter struct{ *bytes.Buffer }

func (w *bytesBufferWriterAdapter) Close() error { return nil }
func (w *bytesBufferWriterAdapter) Flush() error { return nil }
func (w *bytesBufferWriterAdapter) Size() int    { return w.Available() }
