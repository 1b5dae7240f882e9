package fixbin

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

const BUFFER_SIZE = 4096

var empty [BUFFER_SIZE]byte

// Zero is an io.Reader that reads an endless stream of zero bytes.
var Zero io.Reader = zero{}

type zero struct{}

func (zero) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

// Discard reads and drops n bytes from r, reporting how many were dropped.
// It holds no shared scratch state, so independent readers can discard
// concurrently. Running out of input surfaces as io.EOF with the partial
// count.
func Discard(r io.Reader, n int64) (int64, error) {
	switch {
	case n == 0:
		return 0, nil
	case n < 0:
		return 0, ErrNegativeDiscard
	}
	return io.CopyN(io.Discard, r, n)
}

// Roundup rounds n up to the nearest multiple of align.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }

// zeroTail verifies that every byte of b is zero. Record decodes tolerate
// zeroed padding after the fixed layout but refuse anything else, which would
// otherwise hide truncation bugs or smuggled data.
func zeroTail(b []byte) error {
	for i, c := range b {
		if c != 0 {
			return fmt.Errorf("%w: 0x%s at offset %d", ErrTrailingBytes, HexByte(c), i)
		}
	}
	return nil
}
