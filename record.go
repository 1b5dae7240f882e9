package fixbin

import (
	"encoding/binary"
	"fmt"
	"io"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// recordSizes caches the reflected layout size per record type, so the
// reflection in binary.Size runs once per type instead of once per call.
var recordSizes = xsync.NewMap[reflect.Type, int]()

// recordSize reports the fixed layout size of T in bytes, or a value <= 0
// when T contains variable-size fields and has no fixed layout.
func recordSize[T any]() int {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if size, ok := recordSizes.Load(t); ok {
		return size
	}
	var v T
	size := binary.Size(&v)
	recordSizes.Store(t, size)
	return size
}

// Record is a Codec for any struct Body made up solely of fixed-width fields
// (unsigned/signed integers, bools, floats, and arrays of those). It turns a
// declarative layout such as a header struct with uint16/uint32/uint64 fields
// into a full encoder/decoder with no per-type code.
//
// Body must not contain slices, maps, or strings; such layouts have no fixed
// size and every operation on them fails with ErrNotFixedSize.
type Record[T any] struct {
	Body T

	order binary.ByteOrder // nil means the package default Order
}

var _ Codec = (*Record[struct{}])(nil)

// WithByteOrder sets the order used by this record's encode and decode calls
// and returns the record for chaining.
func (r *Record[T]) WithByteOrder(order binary.ByteOrder) *Record[T] {
	r.order = order
	return r
}

func (r *Record[T]) byteOrder() binary.ByteOrder {
	if r.order != nil {
		return r.order
	}
	return Order
}

// Size returns the fixed layout size of Body in bytes. The reflection cost is
// paid once per Body type and cached for every Record after that.
func (r *Record[T]) Size() int {
	return recordSize[T]()
}

// MarshalBinary implements encoding.BinaryMarshaler. It allocates; prefer
// MarshalTo or WriteTo on hot paths.
func (r *Record[T]) MarshalBinary() ([]byte, error) {
	if r.Size() <= 0 {
		return nil, ErrNotFixedSize
	}
	return MarshalViaWriteTo(r)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Input shorter than
// the layout fails with ErrShortRecord; bytes after the layout must be zero
// padding or the decode fails with ErrTrailingBytes.
func (r *Record[T]) UnmarshalBinary(data []byte) error {
	if r.Size() <= 0 {
		return ErrNotFixedSize
	}
	n, err := binary.Decode(data, r.byteOrder(), &r.Body)
	if err != nil {
		return fmt.Errorf("%w: %d byte(s) for a %d-byte layout", ErrShortRecord, len(data), r.Size())
	}
	if len(data) > n {
		return zeroTail(data[n:])
	}
	return nil
}

// ReadFrom implements io.ReaderFrom, decoding exactly one record from r.
func (r *Record[T]) ReadFrom(src io.Reader) (int64, error) {
	if r.Size() <= 0 {
		return 0, ErrNotFixedSize
	}
	if err := binary.Read(src, r.byteOrder(), &r.Body); err != nil {
		return 0, err
	}
	return int64(r.Size()), nil
}

// WriteTo implements io.WriterTo, encoding the record straight into a stream
// without an intermediate allocation.
func (r *Record[T]) WriteTo(w io.Writer) (int64, error) {
	if r.Size() <= 0 {
		return 0, ErrNotFixedSize
	}
	if err := binary.Write(w, r.byteOrder(), &r.Body); err != nil {
		return 0, err
	}
	return int64(r.Size()), nil
}

// MarshalTo encodes the record into p without allocating. It fails with
// io.ErrShortBuffer when p cannot hold the layout.
func (r *Record[T]) MarshalTo(p []byte) (int, error) {
	if r.Size() <= 0 {
		return 0, ErrNotFixedSize
	}
	return MarshalToViaWriteTo(r, p)
}

// DecodeRecords decodes b as a packed array of T layouts, the record analogue
// of DecodeUints: values in input order plus the length of the ragged tail.
// The tail bytes are never guessed at or zero-padded into a value.
func DecodeRecords[T any](order binary.ByteOrder, b []byte) ([]T, int, error) {
	w := recordSize[T]()
	if w <= 0 {
		return nil, 0, ErrNotFixedSize
	}
	count := len(b) / w
	vals := make([]T, 0, count)
	for i := range count {
		var v T
		if _, err := binary.Decode(b[i*w:(i+1)*w], order, &v); err != nil {
			return nil, 0, fmt.Errorf("fixbin: record %d: %w", i, err)
		}
		vals = append(vals, v)
	}
	return vals, len(b) % w, nil
}
