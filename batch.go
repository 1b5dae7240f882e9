package fixbin

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Outcome is the result of decoding one chunk during a batch decode: either a
// whole value, or the raw bytes of a chunk too short to form one. A short
// chunk's bytes are carried verbatim so nothing the input contained is lost.
type Outcome[T Uint] struct {
	value T
	rest  []byte
}

// Decoded returns the chunk's value and true when the chunk was whole.
func (o Outcome[T]) Decoded() (T, bool) {
	if o.rest != nil {
		return 0, false
	}
	return o.value, true
}

// Leftover returns the undecoded chunk bytes and true when the chunk was
// short. The slice is owned by the outcome; callers may keep it.
func (o Outcome[T]) Leftover() ([]byte, bool) {
	return o.rest, o.rest != nil
}

// DecodeEach chunks b at Width[T] and decodes every chunk, reporting one
// Outcome per chunk in input order. Whole chunks always decode; only a final
// short chunk comes back as leftover bytes. Empty input yields nil.
func DecodeEach[T Uint](order binary.ByteOrder, b []byte) []Outcome[T] {
	w := Width[T]()
	chunks := ChunkBytes(b, w)
	if chunks == nil {
		return nil
	}
	outs := make([]Outcome[T], 0, len(chunks))
	for _, chunk := range chunks {
		if len(chunk) == w {
			// Chunk size is guaranteed here, so the raw path is safe.
			outs = append(outs, Outcome[T]{value: RawUint[T](order, chunk)})
		} else {
			outs = append(outs, Outcome[T]{rest: chunk})
		}
	}
	return outs
}

// DecodeUints decodes as many whole values of T from b as it holds, in input
// order, and reports how many trailing bytes did not form a value. A ragged
// tail is data, not a fault: the count is the summed length of every leftover
// outcome, which for contiguous input is at most Width[T]-1.
func DecodeUints[T Uint](order binary.ByteOrder, b []byte) ([]T, int) {
	outs := DecodeEach[T](order, b)
	vals := make([]T, 0, len(outs))
	remaining := 0
	for _, out := range outs {
		if v, ok := out.Decoded(); ok {
			vals = append(vals, v)
			continue
		}
		rest, _ := out.Leftover()
		remaining += len(rest)
	}
	return vals, remaining
}

// DecodeUintsExact decodes b as a packed array of T. It succeeds only when
// len(b) is a whole multiple of Width[T]; otherwise it returns a nil slice
// and an *IncompleteError carrying the trailing byte count, discarding any
// partially decoded values.
func DecodeUintsExact[T Uint](order binary.ByteOrder, b []byte) ([]T, error) {
	vals, remaining := DecodeUints[T](order, b)
	if remaining != 0 {
		return nil, &IncompleteError{Width: Width[T](), Remaining: remaining}
	}
	return vals, nil
}

// ReadUints drains r and batch-decodes everything it produced, returning the
// decoded values, the trailing byte count, and any read error. It is the
// stream-side twin of DecodeUints.
func ReadUints[T Uint](r io.Reader, order binary.ByteOrder) ([]T, int, error) {
	buf := bytesBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bytesBufPool.Put(buf)

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, 0, err
	}
	vals, remaining := DecodeUints[T](order, buf.Bytes())
	return vals, remaining, nil
}

// EncodeUints encodes every value of vs as its own fresh Width[T]-byte slice,
// in input order. The result is deliberately unflattened; use AppendUints for
// a single contiguous buffer.
func EncodeUints[T Uint](order binary.ByteOrder, vs []T) [][]byte {
	if len(vs) == 0 {
		return nil
	}
	out := make([][]byte, len(vs))
	for i, v := range vs {
		out[i] = EncodeUint(order, v)
	}
	return out
}

// AppendUints appends the packed encodings of vs to dst and returns the
// extended buffer.
func AppendUints[T Uint](order binary.ByteOrder, dst []byte, vs []T) []byte {
	for _, v := range vs {
		dst = AppendUint(order, dst, v)
	}
	return dst
}
