package fixbin

import (
	"errors"
	"fmt"
)

var (
	// ErrNilStream indicates that NewReader/NewWriter was called with a nil
	// io.Reader/io.Writer interface.
	ErrNilStream = errors.New("fixbin: NewReader/NewWriter called with a nil stream")

	// ErrBufferTooSmall indicates a requested buffer size below the bufio minimum.
	ErrBufferTooSmall = errors.New("fixbin: buffer size conflicts with the bufio minimum")

	// ErrRebuffered indicates that NewReader/NewWriter was handed a stream that
	// is already buffered with a smaller buffer, which would stack two buffers
	// with unpredictable results.
	ErrRebuffered = errors.New("fixbin: stream is already buffered")

	// ErrWriteToNil indicates a WriteTo operation was attempted on a nil io.Writer.
	ErrWriteToNil = errors.New("fixbin: WriteTo called with a nil io.Writer")

	// ErrReadToNil indicates a ReadTo operation was attempted on a nil io.ReaderFrom.
	ErrReadToNil = errors.New("fixbin: ReadTo called with a nil io.ReaderFrom")

	// ErrInvalidSeek indicates a seek to a position before the start of the data.
	ErrInvalidSeek = errors.New("fixbin: seek to a negative position")

	// ErrNegativeSeek indicates a backward seek on a forward-only stream.
	ErrNegativeSeek = errors.New("fixbin: backward seek on a forward-only stream")

	// ErrInvalidWhence indicates an unsupported 'whence' value passed to Seek.
	ErrInvalidWhence = errors.New("fixbin: unsupported whence for this stream")

	// ErrInvalidWriteCount indicates that an io.Writer reported an impossible
	// (negative or out-of-range) count from Write.
	ErrInvalidWriteCount = errors.New("fixbin: writer reported an invalid count")

	// ErrInvalidReadCount indicates that an io.Reader reported an impossible
	// (negative or out-of-range) count from Read.
	ErrInvalidReadCount = errors.New("fixbin: reader reported an invalid count")

	// ErrNegativeDiscard indicates a Discard with a negative byte count.
	ErrNegativeDiscard = errors.New("fixbin: cannot discard a negative number of bytes")

	// ErrShortRecord indicates that a record decode ran out of bytes before the
	// record's full fixed layout was read.
	ErrShortRecord = errors.New("fixbin: record truncated")

	// ErrTrailingBytes is returned when non-zero bytes follow the end of a
	// decoded record. Zeroed trailing bytes are tolerated as padding.
	ErrTrailingBytes = errors.New("fixbin: non-zero bytes after record")

	// ErrNotFixedSize indicates that a record type contains variable-size
	// fields (slices, maps, strings) and has no fixed binary layout.
	ErrNotFixedSize = errors.New("fixbin: record layout is not fixed-size")
)

// IncompleteError reports an exact batch decode over a buffer whose length is
// not a whole multiple of the value width. Remaining is the number of trailing
// bytes that could not form a value; for chunked input it is always in
// [1, Width-1].
type IncompleteError struct {
	Width     int // byte width of the value type being decoded
	Remaining int // undecoded trailing bytes
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("fixbin: %d trailing byte(s) do not form a whole %d-byte value", e.Remaining, e.Width)
}
