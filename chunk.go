package fixbin

import "bytes"

// ChunkBytes splits b into consecutive chunks of the given width. Every chunk
// is a fresh copy of its region of b, so the result stays valid after the
// caller reuses or mutates b. All chunks have exactly `width` bytes except the
// last, which holds the remainder when len(b) is not a whole multiple.
// Empty input yields nil. Concatenating the chunks reconstructs b.
//
// Precondition: width > 0.
func ChunkBytes(b []byte, width int) [][]byte {
	if len(b) == 0 {
		return nil
	}
	chunks := make([][]byte, 0, (len(b)+width-1)/width)
	for start := 0; start < len(b); start += width {
		end := min(start+width, len(b))
		chunks = append(chunks, bytes.Clone(b[start:end]))
	}
	return chunks
}
