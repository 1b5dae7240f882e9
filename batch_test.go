package fixbin

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestDecodeEach(t *testing.T) {
	outs := DecodeEach[uint16](LE, []byte{0x01, 0x00, 0x02, 0x00, 0xFF})
	require.Len(t, outs, 3)

	v, ok := outs[0].Decoded()
	require.True(t, ok)
	assert.Equal(t, uint16(1), v)

	v, ok = outs[1].Decoded()
	require.True(t, ok)
	assert.Equal(t, uint16(2), v)

	_, ok = outs[2].Decoded()
	assert.False(t, ok)
	rest, short := outs[2].Leftover()
	require.True(t, short)
	assert.Equal(t, []byte{0xFF}, rest, "short chunk bytes are carried verbatim")

	assert.Nil(t, DecodeEach[uint16](LE, nil))
}

func TestDecodeUints(t *testing.T) {
	vals, rem := DecodeUints[uint16](LE, []byte{0x01, 0x00, 0x02, 0x00, 0xFF})
	assert.Equal(t, []uint16{1, 2}, vals)
	assert.Equal(t, 1, rem)

	vals, rem = DecodeUints[uint16](LE, []byte{0x01, 0x00})
	assert.Equal(t, []uint16{1}, vals)
	assert.Zero(t, rem)

	vals, rem = DecodeUints[uint16](LE, nil)
	assert.Empty(t, vals)
	assert.Zero(t, rem)
}

func TestDecodeUintsExact(t *testing.T) {
	vals, err := DecodeUintsExact[uint16](LE, []byte{0x01, 0x00, 0x02, 0x00})
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 2}, vals)

	vals, err = DecodeUintsExact[uint16](LE, []byte{0x01, 0x00, 0x02, 0x00, 0xFF})
	require.Error(t, err)
	assert.Nil(t, vals)

	var inc *IncompleteError
	require.ErrorAs(t, err, &inc)
	assert.Equal(t, 2, inc.Width)
	assert.Equal(t, 1, inc.Remaining)
	assert.Contains(t, err.Error(), "1 trailing byte")
}

func TestReadUints(t *testing.T) {
	payload := AppendUints(LE, nil, []uint32{10, 20, 30})
	payload = append(payload, 0xAB, 0xCD)

	vals, rem, err := ReadUints[uint32](bytes.NewReader(payload), LE)
	require.NoError(t, err)
	assert.Equal(t, []uint32{10, 20, 30}, vals)
	assert.Equal(t, 2, rem)

	vals, rem, err = ReadUints[uint32](bytes.NewReader(nil), LE)
	require.NoError(t, err)
	assert.Empty(t, vals)
	assert.Zero(t, rem)
}

func TestEncodeUints(t *testing.T) {
	chunks := EncodeUints(BE, []uint16{0x0102, 0x0304})
	assert.Equal(t, [][]byte{{0x01, 0x02}, {0x03, 0x04}}, chunks)
	assert.Nil(t, EncodeUints[uint16](BE, nil))

	packed := AppendUints(BE, []byte{0xEE}, []uint16{0x0102, 0x0304})
	assert.Equal(t, []byte{0xEE, 0x01, 0x02, 0x03, 0x04}, packed)
}

func TestDecodeUintsConcurrent(t *testing.T) {
	want := make([]uint64, 256)
	for i := range want {
		want[i] = uint64(i) * 0x9E3779B97F4A7C15
	}
	payload := AppendUints(LE, nil, want)

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			for range 50 {
				vals, rem := DecodeUints[uint64](LE, payload)
				if rem != 0 {
					return fmt.Errorf("unexpected %d leftover byte(s)", rem)
				}
				if len(vals) != len(want) {
					return fmt.Errorf("decoded %d of %d values", len(vals), len(want))
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
