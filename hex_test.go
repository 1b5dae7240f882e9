package fixbin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexByte(t *testing.T) {
	assert.Equal(t, "00", HexByte(0x00))
	assert.Equal(t, "0F", HexByte(0x0F))
	assert.Equal(t, "A5", HexByte(0xA5))
	assert.Equal(t, "FF", HexByte(0xFF))
}

func TestHexBytes(t *testing.T) {
	assert.Equal(t, "", HexBytes(nil))
	assert.Equal(t, "7B", HexBytes([]byte{0x7B}))
	assert.Equal(t, "00 FF", HexBytes([]byte{0x00, 0xFF}))
	assert.Equal(t, "DE AD BE EF", HexBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF}))
}
