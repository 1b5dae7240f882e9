package fixbin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkBytes(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	chunks := ChunkBytes(b, 2)
	require.Len(t, chunks, 3)
	assert.Equal(t, []byte{1, 2}, chunks[0])
	assert.Equal(t, []byte{3, 4}, chunks[1])
	assert.Equal(t, []byte{5}, chunks[2])

	assert.Equal(t, b, bytes.Join(chunks, nil), "concatenating the chunks reconstructs the input")

	assert.Nil(t, ChunkBytes(nil, 4))
	assert.Equal(t, [][]byte{{1, 2, 3}}, ChunkBytes([]byte{1, 2, 3}, 8))
}

func TestChunkBytesCopies(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	chunks := ChunkBytes(src, 2)
	src[0] = 0xEE
	assert.Equal(t, []byte{1, 2}, chunks[0], "chunks stay valid after the source mutates")
}
