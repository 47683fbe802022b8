package hexdump

// Sanitize maps a byte to a safe-to-print ASCII character.
//
// Any printable ASCII character is returned verbatim, including space;
// every other byte value becomes an ASCII dot.
func Sanitize(b byte) byte {
	if 0x20 <= b && b < 0x7f {
		return b
	}
	return '.'
}
