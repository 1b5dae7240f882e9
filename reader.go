package fixbin

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// minReadBuffer mirrors the smallest buffer bufio.Reader will actually keep.
const minReadBuffer = 16

// readSource is what Reader needs from a stream: byte-level and bulk reads,
// draining, seeking, and a size for buffer-reuse decisions. The adapters in
// this package lift the common stdlib readers into it.
type readSource interface {
	io.Reader
	io.ByteReader
	io.WriterTo
	io.Seeker
	io.Closer
	Size() int
}

// Reader decodes fixed-width binary data from a buffered stream. It is
// error-sticky: the first failure latches and every later call is a no-op
// reporting that same error, so a run of reads can be checked once at the
// end via Err or Result instead of after every call.
//
// A stream that ends exactly on a value boundary latches io.EOF; one that
// ends inside a value latches io.ErrUnexpectedEOF. IsEOF distinguishes the
// clean case.
type Reader struct {
	src   readSource
	count int64 // total bytes consumed
	err   error // first error; latches
	order binary.ByteOrder
}

var _ readSource = (*Reader)(nil)

// NewReaderSize returns a Reader over r with an explicit buffer size.
// In-memory sources (BytesReader, bytes.Reader, bytes.Buffer) are used
// directly with no buffer at all. An existing Reader or bufio.Reader is
// reused when its buffer is at least size bytes and refused with
// ErrRebuffered otherwise, since stacking a second buffer makes positions
// and seeks unpredictable. size <= 0 means the default.
func NewReaderSize(r io.Reader, size int) (*Reader, error) {
	if r == nil {
		return nil, ErrNilStream
	}

	switch src := r.(type) {
	case *Reader:
		if src.src.Size() < size {
			return nil, ErrRebuffered
		}
		return &Reader{src: src.src, order: Order}, nil
	case *bufio.Reader:
		if src.Size() < size {
			return nil, ErrRebuffered
		}
		return &Reader{src: &bufioReaderAdapter{Reader: src}, order: Order}, nil
	case *BytesReader:
		return &Reader{src: src, order: Order}, nil
	case *bytes.Reader:
		return &Reader{src: &bytesReaderAdapter{src}, order: Order}, nil
	case *bytes.Buffer:
		return &Reader{src: &bytesBufferReaderAdapter{Buffer: src}, order: Order}, nil
	}

	if size <= 0 {
		size = BUFFER_SIZE
	} else if size < minReadBuffer {
		return nil, ErrBufferTooSmall
	}

	// The buffer reads through the forward seeker, so the seeker's offset
	// accounts for read-ahead and out-of-window seeks land where they
	// should.
	fs := ForwardSeeker(r)
	return &Reader{
		src:   &bufioReaderAdapter{Reader: bufio.NewReaderSize(fs, size), seeker: fs},
		order: Order,
	}, nil
}

// NewReader returns a Reader over r with the default buffer size.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderSize(r, 0)
}

// WithByteOrder sets the order used by this reader's decode calls and
// returns the reader for chaining.
func (r *Reader) WithByteOrder(order binary.ByteOrder) *Reader {
	r.order = order
	return r
}

// Close closes the underlying stream.
func (r *Reader) Close() error { return r.src.Close() }

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err := r.src.Read(p)
	r.count += int64(n)
	r.setError(err)
	return n, r.err
}

// Seek moves the read position and resets Count to it. Whether backward
// targets work depends on the stream; forward-only sources report
// ErrNegativeSeek. A failed seek latches like any other error.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	if r.err != nil {
		return r.count, r.err
	}
	pos, err := r.src.Seek(offset, whence)
	if err != nil {
		r.setError(err)
		return r.count, err
	}
	r.count = pos
	return pos, nil
}

// WriteTo implements io.WriterTo, draining the stream into w.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	if w == nil {
		r.setError(ErrWriteToNil)
		return 0, r.err
	}
	n, err := r.src.WriteTo(w)
	r.count += n
	r.setError(err)
	return n, r.err
}

// ReadTo hands the stream to w's ReadFrom, counting what it consumed.
func (r *Reader) ReadTo(w io.ReaderFrom) {
	if r.err != nil {
		return
	}
	if w == nil {
		r.setError(ErrReadToNil)
		return
	}
	n, err := w.ReadFrom(r.src)
	r.count += n
	r.setError(err)
}

// Size returns the buffer size of the underlying source.
func (r *Reader) Size() int { return r.src.Size() }

// Count returns the total bytes consumed so far. A successful Seek resets
// it to the new absolute position.
func (r *Reader) Count() int64 { return r.count }

// Err returns the latched error, or nil while all reads have succeeded.
func (r *Reader) Err() error { return r.err }

// IsEOF reports whether the reader stopped at a clean end of stream, as
// opposed to a mid-value truncation or a real fault.
func (r *Reader) IsEOF() bool { return errors.Is(r.err, io.EOF) }

// setError records the first non-nil error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// Result returns the total bytes consumed and the final error state.
func (r *Reader) Result() (int64, error) {
	return r.count, r.err
}

// readFixed fills buf completely or latches why it could not. io.ReadFull
// keeps the boundary cases apart: io.EOF with nothing read, or
// io.ErrUnexpectedEOF when the stream died inside the value.
func (r *Reader) readFixed(buf []byte) bool {
	if r.err != nil {
		return false
	}
	n, err := io.ReadFull(r.src, buf)
	r.count += int64(n)
	if err != nil {
		r.err = err
		return false
	}
	return true
}

// ReadBytes reads exactly n bytes into a fresh slice, or nil when n <= 0 or
// an error has latched.
func (r *Reader) ReadBytes(n int) []byte {
	if n <= 0 || r.err != nil {
		return nil
	}
	buf := make([]byte, n)
	if !r.readFixed(buf) {
		return nil
	}
	return buf
}

// ReadBytesTo fills dest exactly, avoiding the allocation in ReadBytes.
func (r *Reader) ReadBytesTo(dest []byte) {
	if len(dest) == 0 {
		return
	}
	r.readFixed(dest)
}

// Align consumes padding until the stream position is a multiple of n.
// Running out of stream inside the padding latches io.ErrUnexpectedEOF.
func (r *Reader) Align(n int) {
	if n <= 1 || r.err != nil {
		return
	}
	skip := Roundup(r.count, int64(n)) - r.count
	if skip == 0 {
		return
	}
	m, err := Discard(r.src, skip)
	r.count += m
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	r.setError(err)
}

// --- Fixed-width reads ---

// ReadBool reads one byte, interpreting any non-zero value as true.
func (r *Reader) ReadBool(dest *bool) {
	if r.err != nil {
		return
	}
	b, err := r.src.ReadByte()
	if err != nil {
		r.err = err
		return
	}
	r.count++
	*dest = b != 0
}

// ReadByte implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	if r.err != nil {
		return 0, r.err
	}
	b, err := r.src.ReadByte()
	if err != nil {
		r.err = err
		return 0, err
	}
	r.count++
	return b, nil
}

func (r *Reader) ReadUint8(dest *uint8) {
	if r.err != nil {
		return
	}
	b, err := r.src.ReadByte()
	if err != nil {
		r.err = err
		return
	}
	r.count++
	*dest = b
}

func (r *Reader) ReadUint16(dest *uint16) {
	var buf [2]byte
	if r.readFixed(buf[:]) {
		*dest = RawUint[uint16](r.order, buf[:])
	}
}

func (r *Reader) ReadUint32(dest *uint32) {
	var buf [4]byte
	if r.readFixed(buf[:]) {
		*dest = RawUint[uint32](r.order, buf[:])
	}
}

func (r *Reader) ReadUint64(dest *uint64) {
	var buf [8]byte
	if r.readFixed(buf[:]) {
		*dest = RawUint[uint64](r.order, buf[:])
	}
}

func (r *Reader) ReadInt8(dest *int8) {
	if r.err != nil {
		return
	}
	b, err := r.src.ReadByte()
	if err != nil {
		r.err = err
		return
	}
	r.count++
	*dest = int8(b)
}

func (r *Reader) ReadInt16(dest *int16) {
	var buf [2]byte
	if r.readFixed(buf[:]) {
		*dest = int16(RawUint[uint16](r.order, buf[:]))
	}
}

func (r *Reader) ReadInt32(dest *int32) {
	var buf [4]byte
	if r.readFixed(buf[:]) {
		*dest = int32(RawUint[uint32](r.order, buf[:]))
	}
}

func (r *Reader) ReadInt64(dest *int64) {
	var buf [8]byte
	if r.readFixed(buf[:]) {
		*dest = int64(RawUint[uint64](r.order, buf[:]))
	}
}
