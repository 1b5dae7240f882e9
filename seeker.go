package fixbin

import (
	"fmt"
	"io"
)

// forwardSeeker simulates seeking on a plain io.Reader by reading and
// discarding. Backward movement is impossible and reports ErrNegativeSeek.
type forwardSeeker struct {
	r      io.Reader
	offset int64
}

// ForwardSeeker adapts r into a forward-only io.ReadSeeker. A reader that
// already seeks is returned as-is. NewReader routes unseekable streams
// through this, so Align and absolute skips work on pipes and sockets too.
func ForwardSeeker(r io.Reader) io.ReadSeeker {
	if r == nil {
		panic("fixbin: ForwardSeeker called with a nil io.Reader")
	}
	if s, ok := r.(io.ReadSeeker); ok {
		return s
	}
	return &forwardSeeker{r: r}
}

// Read implements io.Reader, tracking the absolute offset.
func (s *forwardSeeker) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	s.offset += int64(n)
	return n, err
}

// Seek accepts io.SeekStart and io.SeekCurrent targets at or past the
// current offset. io.SeekEnd has no meaning on an unbounded stream.
func (s *forwardSeeker) Seek(offset int64, whence int) (int64, error) {
	var skip int64
	switch whence {
	case io.SeekCurrent:
		skip = offset
	case io.SeekStart:
		skip = offset - s.offset
	default:
		return s.offset, fmt.Errorf("%w: whence %d", ErrInvalidWhence, whence)
	}
	if skip < 0 {
		return s.offset, fmt.Errorf("%w: target is %d byte(s) behind the current offset", ErrNegativeSeek, -skip)
	}
	if skip == 0 {
		return s.offset, nil
	}
	n, err := Discard(s.r, skip)
	s.offset += n
	return s.offset, err
}
