package fixbin

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
)

// writeSink is what Writer needs from a stream: byte-level and bulk writes,
// filling from a reader, flushing, and a size for buffer-reuse decisions.
type writeSink interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
	io.ReaderFrom
	io.Closer
	Size() int
	Flush() error
}

// Writer encodes fixed-width binary data into a buffered stream. Like Reader
// it is error-sticky: after the first failure every call is a no-op and
// Result reports the original cause rather than whatever failed last.
type Writer struct {
	sink  writeSink
	count int64 // total bytes written
	err   error // first error; latches
	depth int   // >0 when the buffer is owned by someone else
	order binary.ByteOrder
}

var _ writeSink = (*Writer)(nil)

// NewWriterSize returns a Writer over w with an explicit buffer size.
// In-memory sinks (BytesWriter, bytes.Buffer) are used directly with no
// buffer at all. An existing Writer or bufio.Writer is reused when its
// buffer is at least size bytes and refused with ErrRebuffered otherwise.
// A reused buffer stays owned by whoever created it, so Flush on the new
// Writer is a no-op. size <= 0 means the default.
func NewWriterSize(w io.Writer, size int) (*Writer, error) {
	if w == nil {
		return nil, ErrNilStream
	}

	switch sink := w.(type) {
	case *Writer:
		if sink.sink.Size() < size {
			return nil, ErrRebuffered
		}
		return &Writer{sink: sink.sink, depth: sink.depth + 1, order: Order}, nil
	case *bufio.Writer:
		if sink.Size() < size {
			return nil, ErrRebuffered
		}
		return &Writer{sink: &bufioWriterAdapter{sink}, depth: 1, order: Order}, nil
	case *BytesWriter:
		return &Writer{sink: sink, order: Order}, nil
	case *bytes.Buffer:
		return &Writer{sink: &bytesBufferWriterAdapter{sink}, order: Order}, nil
	}

	if size <= 0 {
		size = BUFFER_SIZE
	}
	return &Writer{sink: &bufioWriterAdapter{bufio.NewWriterSize(w, size)}, order: Order}, nil
}

// NewWriter returns a Writer over w with the default buffer size.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterSize(w, 0)
}

// WithByteOrder sets the order used by this writer's encode calls and
// returns the writer for chaining.
func (w *Writer) WithByteOrder(order binary.ByteOrder) *Writer {
	w.order = order
	return w
}

// Close closes the underlying stream.
func (w *Writer) Close() error { return w.sink.Close() }

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 || w.err != nil {
		return 0, w.err
	}
	n, err := w.sink.Write(p)
	w.count += int64(n)
	w.setError(err)
	return n, w.err
}

// WriteString implements io.StringWriter.
func (w *Writer) WriteString(s string) (int, error) {
	if s == "" || w.err != nil {
		return 0, w.err
	}
	n, err := w.sink.WriteString(s)
	w.count += int64(n)
	w.setError(err)
	return n, w.err
}

// ReadFrom implements io.ReaderFrom, filling the stream from r.
func (w *Writer) ReadFrom(r io.Reader) (int64, error) {
	if r == nil || w.err != nil {
		return 0, w.err
	}
	n, err := w.sink.ReadFrom(r)
	w.count += n
	w.setError(err)
	return n, w.err
}

// Size returns the buffer size of the underlying sink.
func (w *Writer) Size() int { return w.sink.Size() }

// Count returns the total bytes written so far.
func (w *Writer) Count() int64 { return w.count }

// Err returns the latched error, or nil while all writes have succeeded.
func (w *Writer) Err() error { return w.err }

// setError records the first non-nil error.
func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Result flushes and returns the total bytes written and the final error
// state.
func (w *Writer) Result() (int64, error) {
	w.Flush()
	return w.count, w.err
}

// Flush pushes buffered data down to the underlying stream. Writers sharing
// a buffer they do not own do nothing; the owner flushes.
func (w *Writer) Flush() error {
	if w.depth > 0 || w.err != nil {
		return w.err
	}
	w.setError(w.sink.Flush())
	return w.err
}

// WriteFrom drains an io.WriterTo into the stream. A nil source writes
// nothing.
func (w *Writer) WriteFrom(wt io.WriterTo) {
	if wt == nil || w.err != nil {
		return
	}
	n, err := wt.WriteTo(w.sink)
	w.count += n
	w.setError(err)
}

// WriteBytes writes p, folding any failure into the latched error.
func (w *Writer) WriteBytes(p []byte) {
	if len(p) == 0 || w.err != nil {
		return
	}
	_, _ = w.Write(p)
}

// WriteZeros emits n zero bytes of padding without allocating.
func (w *Writer) WriteZeros(n int64) {
	if n <= 0 || w.err != nil {
		return
	}
	if n <= BUFFER_SIZE {
		_, _ = w.Write(empty[:n])
		return
	}
	// Zero never runs dry, so an EOF out of CopyN means the sink stopped
	// accepting bytes.
	_, err := io.CopyN(w, Zero, n)
	if err == io.EOF {
		err = io.ErrShortWrite
	}
	w.setError(err)
}

// Align pads with zeros until the stream position is a multiple of n.
func (w *Writer) Align(n int) {
	if n > 1 {
		w.WriteZeros(Roundup(w.count, int64(n)) - w.count)
	}
}

// --- Fixed-width writes ---

// WriteBool writes one byte: 1 for true, 0 for false.
func (w *Writer) WriteBool(v bool) {
	if w.err != nil {
		return
	}
	var b byte
	if v {
		b = 1
	}
	if err := w.sink.WriteByte(b); err != nil {
		w.err = err
		return
	}
	w.count++
}

// WriteByte implements io.ByteWriter.
func (w *Writer) WriteByte(v byte) error {
	if w.err != nil {
		return w.err
	}
	if err := w.sink.WriteByte(v); err != nil {
		w.err = err
		return err
	}
	w.count++
	return nil
}

func (w *Writer) WriteUint8(v uint8) {
	if w.err != nil {
		return
	}
	if err := w.sink.WriteByte(v); err != nil {
		w.err = err
		return
	}
	w.count++
}

func (w *Writer) WriteUint16(v uint16) {
	if w.err != nil {
		return
	}
	var buf [2]byte
	PutUint(w.order, buf[:], v)
	_, _ = w.Write(buf[:])
}

func (w *Writer) WriteUint32(v uint32) {
	if w.err != nil {
		return
	}
	var buf [4]byte
	PutUint(w.order, buf[:], v)
	_, _ = w.Write(buf[:])
}

func (w *Writer) WriteUint64(v uint64) {
	if w.err != nil {
		return
	}
	var buf [8]byte
	PutUint(w.order, buf[:], v)
	_, _ = w.Write(buf[:])
}

func (w *Writer) WriteInt8(v int8) {
	if w.err != nil {
		return
	}
	if err := w.sink.WriteByte(uint8(v)); err != nil {
		w.err = err
		return
	}
	w.count++
}

func (w *Writer) WriteInt16(v int16) {
	if w.err != nil {
		return
	}
	var buf [2]byte
	PutUint(w.order, buf[:], uint16(v))
	_, _ = w.Write(buf[:])
}

func (w *Writer) WriteInt32(v int32) {
	if w.err != nil {
		return
	}
	var buf [4]byte
	PutUint(w.order, buf[:], uint32(v))
	_, _ = w.Write(buf[:])
}

func (w *Writer) WriteInt64(v int64) {
	if w.err != nil {
		return
	}
	var buf [8]byte
	PutUint(w.order, buf[:], uint64(v))
	_, _ = w.Write(buf[:])
}
