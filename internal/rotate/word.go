// Package rotate implements the RotWord step of the AES key schedule
// on hex-encoded words.
package rotate

import "rotword/internal/rot"

// WordSize is the number of bytes in a key-schedule word.
const WordSize = 4

// Word rotates w left by one byte, so 01 02 03 04 becomes 02 03 04 01.
// A single-byte word rotates to a single zero byte.
// The result is a new slice; w is left untouched.
func Word(w []byte) []byte {
	if len(w) == 1 {
		return []byte{0}
	}
	return rot.Left(w, 1)
}
