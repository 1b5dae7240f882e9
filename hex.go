package fixbin

import "strings"

const hexDigits = "0123456789ABCDEF"

// HexByte renders b as exactly two uppercase hex characters.
func HexByte(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0x0F]})
}

// HexBytes renders b as two-character hex groups joined by single spaces, in
// input order: [0x00, 0xFF] -> "00 FF". Empty input yields "".
func HexBytes(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(b)*3 - 1)
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(hexDigits[c>>4])
		sb.WriteByte(hexDigits[c&0x0F])
	}
	return sb.String()
}
