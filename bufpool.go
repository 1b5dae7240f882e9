package fixbin

import (
	"bytes"
	"sync"
)

// bytesBufPool reuses scratch buffers for operations that must drain a stream
// before decoding. Pooling keeps repeated batch decodes from re-allocating;
// 4KB covers the common case without a grow.
var bytesBufPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, BUFFER_SIZE))
	},
}
